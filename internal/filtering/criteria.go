// Package filtering implements the list view: multi-criteria filtering of
// the collection, newest-first ordering and page slicing.
package filtering

import (
	"sort"
	"strings"

	"fjacquet/fintrack/internal/models"
)

// AnyCategory disables the category criterion.
const AnyCategory = "All"

// TypeFilter restricts the list to one transaction type, or to none.
type TypeFilter string

const (
	AnyType     TypeFilter = "All"
	ExpenseOnly TypeFilter = TypeFilter(models.TypeExpense)
	IncomeOnly  TypeFilter = TypeFilter(models.TypeIncome)
)

// ParseTypeFilter accepts "all", "expense" or "income" in any case. Empty
// input means AnyType.
func ParseTypeFilter(s string) (TypeFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(AnyType)) {
		return AnyType, nil
	}
	typ, err := models.ParseTransactionType(s)
	if err != nil {
		return "", err
	}
	return TypeFilter(typ), nil
}

// Criteria is the set of list filters. A nil date bound is not applied.
type Criteria struct {
	Category   string
	Type       TypeFilter
	SearchTerm string
	StartDate  *models.Date
	EndDate    *models.Date
}

// DefaultCriteria matches every transaction.
func DefaultCriteria() Criteria {
	return Criteria{Category: AnyCategory, Type: AnyType}
}

// IsEmpty reports whether the criteria match every transaction.
func (c Criteria) IsEmpty() bool {
	return c.categoryIsAny() && c.typeIsAny() && c.SearchTerm == "" && c.StartDate == nil && c.EndDate == nil
}

// An empty category or type is treated like "All".
func (c Criteria) categoryIsAny() bool { return c.Category == "" || c.Category == AnyCategory }
func (c Criteria) typeIsAny() bool     { return c.Type == "" || c.Type == AnyType }

// Matches reports whether tx satisfies every criterion. Category matching is
// exact; the search term is a case-insensitive substring of the description;
// date bounds are inclusive.
func (c Criteria) Matches(tx models.Transaction) bool {
	if !c.categoryIsAny() && tx.Category != c.Category {
		return false
	}
	if !c.typeIsAny() && string(tx.Type) != string(c.Type) {
		return false
	}
	if c.SearchTerm != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(c.SearchTerm)) {
		return false
	}
	if c.StartDate != nil && tx.Date.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && tx.Date.After(*c.EndDate) {
		return false
	}
	return true
}

// SortByDateDesc returns a copy of txs ordered newest first. Transactions
// sharing a date keep their relative order.
func SortByDateDesc(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ApplyFilters sorts txs newest first, then keeps the transactions matching c.
// The input slice is not modified.
func ApplyFilters(txs []models.Transaction, c Criteria) []models.Transaction {
	sorted := SortByDateDesc(txs)
	out := sorted[:0]
	for _, tx := range sorted {
		if c.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}
