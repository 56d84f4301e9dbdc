package aggregation

import (
	"sort"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// GroupByCategory sums amounts of typ per category. Groups appear in the order
// their category is first encountered; categories summing to zero are left out.
func GroupByCategory(txs []models.Transaction, typ models.TransactionType) []CategoryTotal {
	index := make(map[string]int)
	var groups []CategoryTotal
	for _, tx := range txs {
		if tx.Type != typ {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(groups)
			index[tx.Category] = i
			groups = append(groups, CategoryTotal{Category: tx.Category, Amount: decimal.Zero})
		}
		groups[i].Amount = groups[i].Amount.Add(tx.Amount)
	}

	out := groups[:0]
	for _, g := range groups {
		if !g.Amount.IsZero() {
			out = append(out, g)
		}
	}
	return out
}

// SortByMagnitude returns a copy of groups ordered by amount, largest first.
// Equal amounts keep their relative order.
func SortByMagnitude(groups []CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, len(groups))
	copy(out, groups)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// SumGroups adds up the amounts of all groups.
func SumGroups(groups []CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, g := range groups {
		sum = sum.Add(g.Amount)
	}
	return sum
}

// Share returns the group's fraction of total as a percentage with two
// decimals, or zero when total is zero.
func (g CategoryTotal) Share(total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return g.Amount.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
}
