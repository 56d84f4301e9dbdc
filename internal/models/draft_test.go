package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name   string
		draft  Draft
		fields map[string]string
	}{
		{
			name:  "valid expense",
			draft: Draft{Type: TypeExpense, Description: "Lunch", Amount: amount("12.50"), Category: "Food & Drinks"},
		},
		{
			name:  "everything missing",
			draft: Draft{},
			fields: map[string]string{
				FieldType:        MsgTypeInvalid,
				FieldDescription: MsgDescriptionRequired,
				FieldAmount:      MsgAmountRequired,
				FieldCategory:    MsgCategoryRequired,
			},
		},
		{
			name:   "blank description",
			draft:  Draft{Type: TypeIncome, Description: "   ", Amount: amount("1"), Category: "Salary"},
			fields: map[string]string{FieldDescription: MsgDescriptionRequired},
		},
		{
			name:   "zero amount",
			draft:  Draft{Type: TypeIncome, Description: "Pay", Amount: amount("0"), Category: "Salary"},
			fields: map[string]string{FieldAmount: MsgAmountPositive},
		},
		{
			name:   "negative amount",
			draft:  Draft{Type: TypeIncome, Description: "Pay", Amount: amount("-3"), Category: "Salary"},
			fields: map[string]string{FieldAmount: MsgAmountPositive},
		},
		{
			name:   "category from the other vocabulary",
			draft:  Draft{Type: TypeExpense, Description: "Pay", Amount: amount("3"), Category: "Salary"},
			fields: map[string]string{FieldCategory: `Category "Salary" is not valid for Expense`},
		},
		{
			name:   "category match is case sensitive",
			draft:  Draft{Type: TypeExpense, Description: "Bus", Amount: amount("3"), Category: "transport"},
			fields: map[string]string{FieldCategory: `Category "transport" is not valid for Expense`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			v, ok := AsValidationErrors(err)
			require.True(t, ok)
			assert.Equal(t, ValidationErrors(tt.fields), v)
		})
	}
}

func TestDraft_WithTypeClearsForeignCategory(t *testing.T) {
	d := Draft{Type: TypeExpense, Category: "Transport"}

	switched := d.WithType(TypeIncome)
	assert.Equal(t, TypeIncome, switched.Type)
	assert.Empty(t, switched.Category)

	shared := Draft{Type: TypeExpense, Category: "Investments"}.WithType(TypeIncome)
	assert.Equal(t, "Investments", shared.Category, "category present in both vocabularies survives")

	same := d.WithType(TypeExpense)
	assert.Equal(t, "Transport", same.Category)
}

func TestDraft_Build(t *testing.T) {
	today := NewDate(2024, time.October, 5)

	tx := Draft{Type: TypeExpense, Description: "  Bus ticket ", Amount: amount("2.80"), Category: "Transport"}.
		Build("id-1", today)

	assert.Equal(t, ID("id-1"), tx.ID)
	assert.Equal(t, "Bus ticket", tx.Description)
	assert.Equal(t, "2024-10-05", tx.Date.String())
	assert.NoError(t, tx.Validate())

	dated := Draft{Type: TypeExpense, Description: "x", Amount: amount("1"), Category: "General", Date: NewDate(2024, 1, 2)}.
		Build("id-2", today)
	assert.Equal(t, "2024-01-02", dated.Date.String())

	back := DraftFrom(tx)
	assert.True(t, back.Amount.Valid)
	assert.Equal(t, tx.Category, back.Category)
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{FieldCategory: MsgCategoryRequired, FieldAmount: MsgAmountRequired}
	assert.Equal(t, "validation failed: amount: Amount is required; category: Category is required", err.Error())
	assert.True(t, err.Has(FieldAmount))
	assert.False(t, err.Has(FieldDate))
}

func TestVocabulary(t *testing.T) {
	assert.True(t, IsValidCategory(TypeIncome, "Salary"))
	assert.False(t, IsValidCategory(TypeExpense, "Salary"))
	assert.Nil(t, CategoriesFor("Transfer"))

	color, ok := CategoryColor("Transport")
	assert.True(t, ok)
	assert.Equal(t, "#4285F4", color)

	names := AllCategoryNames()
	assert.Len(t, names, len(ExpenseCategories)+len(IncomeCategories)-1, "Investments appears once")
	assert.Equal(t, "Food & Drinks", names[0])

	cats := CategoriesFor(TypeExpense)
	cats[0].Name = "mutated"
	assert.Equal(t, "Food & Drinks", ExpenseCategories[0].Name)
}
