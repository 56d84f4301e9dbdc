package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Draft holds user input for a new or edited transaction. An invalid Amount
// means the user left the amount empty; a zero Date means "today".
type Draft struct {
	Type        TransactionType
	Description string
	Amount      decimal.NullDecimal
	Category    string
	Date        Date
}

// DraftFrom returns a draft pre-filled with the fields of t.
func DraftFrom(t Transaction) Draft {
	return Draft{
		Type:        t.Type,
		Description: t.Description,
		Amount:      decimal.NewNullDecimal(t.Amount),
		Category:    t.Category,
		Date:        t.Date,
	}
}

// WithType switches the draft to typ. The category is cleared when it does
// not belong to the vocabulary of the new type.
func (d Draft) WithType(typ TransactionType) Draft {
	if d.Type != typ && !IsValidCategory(typ, d.Category) {
		d.Category = ""
	}
	d.Type = typ
	return d
}

// Validate returns ValidationErrors describing every invalid field, or nil.
func (d Draft) Validate() error {
	errs := ValidationErrors{}
	if !d.Type.IsValid() {
		errs[FieldType] = MsgTypeInvalid
	}
	if strings.TrimSpace(d.Description) == "" {
		errs[FieldDescription] = MsgDescriptionRequired
	}
	switch {
	case !d.Amount.Valid:
		errs[FieldAmount] = MsgAmountRequired
	case !d.Amount.Decimal.IsPositive():
		errs[FieldAmount] = MsgAmountPositive
	}
	switch {
	case d.Category == "":
		errs[FieldCategory] = MsgCategoryRequired
	case d.Type.IsValid() && !IsValidCategory(d.Type, d.Category):
		errs[FieldCategory] = fmt.Sprintf(MsgCategoryNotInVocab, d.Category, d.Type)
	}
	return errs.orNil()
}

// Build turns a validated draft into a transaction. A zero draft date is
// replaced by defaultDate.
func (d Draft) Build(id ID, defaultDate Date) Transaction {
	date := d.Date
	if date.IsZero() {
		date = defaultDate
	}
	return Transaction{
		ID:          id,
		Type:        d.Type,
		Description: strings.TrimSpace(d.Description),
		Amount:      d.Amount.Decimal,
		Category:    d.Category,
		Date:        date,
	}
}
