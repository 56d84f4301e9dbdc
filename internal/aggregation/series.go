package aggregation

import (
	"sort"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// TrendPoint is one point of a time series.
type TrendPoint struct {
	Date   models.Date     `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// BuildTrendSeries returns one point per transaction of typ, oldest first.
// Transactions sharing a date keep their collection order.
func BuildTrendSeries(txs []models.Transaction, typ models.TransactionType) []TrendPoint {
	points := make([]TrendPoint, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == typ {
			points = append(points, TrendPoint{Date: tx.Date, Amount: tx.Amount})
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// DailyTrend merges consecutive points sharing a date into a single point.
// The input is expected in ascending date order, as BuildTrendSeries returns it.
func DailyTrend(points []TrendPoint) []TrendPoint {
	var out []TrendPoint
	for _, p := range points {
		if n := len(out); n > 0 && out[n-1].Date.Equal(p.Date) {
			out[n-1].Amount = out[n-1].Amount.Add(p.Amount)
			continue
		}
		out = append(out, p)
	}
	return out
}

// RecentTransactions returns at most limit transactions of typ, newest first.
// Transactions sharing a date keep their collection order. A non-positive
// limit yields an empty result.
func RecentTransactions(txs []models.Transaction, typ models.TransactionType, limit int) []models.Transaction {
	if limit <= 0 {
		return []models.Transaction{}
	}
	matched := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == typ {
			matched = append(matched, tx)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}
