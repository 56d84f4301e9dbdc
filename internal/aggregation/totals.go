package aggregation

import (
	"time"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Totals are exact sums; round only when displaying them.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ComputeTotals sums income and expense amounts. Balance is Income - Expense.
func ComputeTotals(txs []models.Transaction) Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			income = income.Add(tx.Amount)
		case models.TypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return Totals{Income: income, Expense: expense, Balance: income.Sub(expense)}
}

// HeadlineBalance is the balance over the whole history, independent of any
// selected timeframe.
func HeadlineBalance(all []models.Transaction) decimal.Decimal {
	return ComputeTotals(all).Balance
}

// WindowTotals computes totals over the transactions inside tf.
func WindowTotals(all []models.Transaction, tf Timeframe, now time.Time) Totals {
	return ComputeTotals(FilterByTimeframe(all, tf, now))
}

// TypeTotal returns the income or expense total of t.
func (t Totals) TypeTotal(typ models.TransactionType) decimal.Decimal {
	if typ == models.TypeIncome {
		return t.Income
	}
	return t.Expense
}
