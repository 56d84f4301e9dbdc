package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Field names used as keys of ValidationErrors.
const (
	FieldType        = "transactionType"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldDate        = "date"
	FieldID          = "id"
)

// Validation messages shown to the user.
const (
	MsgTypeInvalid         = "Transaction type must be Expense or Income"
	MsgDescriptionRequired = "Description is required"
	MsgAmountRequired      = "Amount is required"
	MsgAmountPositive      = "Amount must be greater than 0"
	MsgAmountNumber        = "Amount must be a number"
	MsgCategoryRequired    = "Category is required"
	MsgCategoryNotInVocab  = "Category %q is not valid for %s"
	MsgDateRequired        = "Date is required"
	MsgDateInvalid         = "Date must be a valid date (YYYY-MM-DD)"
	MsgIDRequired          = "ID is required"
)

// ValidationErrors maps a field name to a human readable message. A non-empty
// map is returned as an error before any mutation takes place.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, f := range v.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing field names in sorted order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Has reports whether field failed validation.
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// orNil converts an empty map to a nil error.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsValidationErrors extracts ValidationErrors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
