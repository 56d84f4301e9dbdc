package models

import (
	"errors"
	"fmt"
	"strings"
)

// TransactionType tells whether an amount flows in or out.
type TransactionType string

const (
	TypeExpense TransactionType = "Expense"
	TypeIncome  TransactionType = "Income"
)

// ErrInvalidTransactionType is returned for anything but Expense or Income.
var ErrInvalidTransactionType = errors.New("transaction type must be Expense or Income")

// TransactionTypes lists the valid types in display order.
var TransactionTypes = []TransactionType{TypeExpense, TypeIncome}

// ParseTransactionType parses a type name case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense":
		return TypeExpense, nil
	case "income":
		return TypeIncome, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
}

func (t TransactionType) IsValid() bool {
	return t == TypeExpense || t == TypeIncome
}

func (t TransactionType) String() string {
	return string(t)
}
