// Package models defines the transaction record, its category vocabulary and
// the validation rules applied before a record enters the collection.
package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is one recorded income or expense. Amount is always a
// magnitude; the direction comes from Type.
type Transaction struct {
	ID          ID              `json:"id" yaml:"id"`
	Type        TransactionType `json:"transactionType" yaml:"transaction_type"`
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
	Date        Date            `json:"date" yaml:"date"`
}

func (t Transaction) IsExpense() bool { return t.Type == TypeExpense }
func (t Transaction) IsIncome() bool  { return t.Type == TypeIncome }

// Signed returns the amount negated for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks that a stored record is complete. Unlike Draft.Validate it
// does not enforce the category vocabulary, so records created with
// categories that were later retired still load.
func (t Transaction) Validate() error {
	errs := ValidationErrors{}
	if t.ID == "" {
		errs[FieldID] = MsgIDRequired
	}
	if !t.Type.IsValid() {
		errs[FieldType] = MsgTypeInvalid
	}
	if strings.TrimSpace(t.Description) == "" {
		errs[FieldDescription] = MsgDescriptionRequired
	}
	if t.Amount.IsNegative() {
		errs[FieldAmount] = MsgAmountPositive
	}
	if t.Category == "" {
		errs[FieldCategory] = MsgCategoryRequired
	}
	if t.Date.IsZero() {
		errs[FieldDate] = MsgDateRequired
	}
	return errs.orNil()
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s (%s)", t.Date, t.Type, t.Amount.StringFixed(2), t.Description, t.Category)
}

// UnmarshalJSON also accepts the "expenseType" key written by earlier versions
// in place of "transactionType".
func (t *Transaction) UnmarshalJSON(b []byte) error {
	type plain Transaction
	var aux struct {
		plain
		LegacyType TransactionType `json:"expenseType"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*t = Transaction(aux.plain)
	if t.Type == "" {
		t.Type = aux.LegacyType
	}
	return nil
}
