package aggregation

import (
	"time"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Dashboard is everything the summary view shows for one timeframe.
type Dashboard struct {
	Timeframe         Timeframe
	WindowStart       models.Date // zero for All
	Balance           decimal.Decimal
	Window            Totals
	ExpenseByCategory []CategoryTotal
	IncomeByCategory  []CategoryTotal
	ExpenseTrend      []TrendPoint
	RecentExpenses    []models.Transaction
	RecentIncome      []models.Transaction
	TransactionCount  int
}

// Aggregator builds dashboards and logs what it computed.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates an Aggregator. A nil logger disables logging.
func NewAggregator(logger logging.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Dashboard computes the summary of all for tf. The headline balance covers
// the whole history while every other figure covers the window only.
func (a *Aggregator) Dashboard(all []models.Transaction, tf Timeframe, now time.Time, recentLimit int) Dashboard {
	window := FilterByTimeframe(all, tf, now)
	start, _ := tf.WindowStart(now)

	d := Dashboard{
		Timeframe:         tf,
		WindowStart:       start,
		Balance:           HeadlineBalance(all),
		Window:            ComputeTotals(window),
		ExpenseByCategory: SortByMagnitude(GroupByCategory(window, models.TypeExpense)),
		IncomeByCategory:  SortByMagnitude(GroupByCategory(window, models.TypeIncome)),
		ExpenseTrend:      BuildTrendSeries(window, models.TypeExpense),
		RecentExpenses:    RecentTransactions(window, models.TypeExpense, recentLimit),
		RecentIncome:      RecentTransactions(window, models.TypeIncome, recentLimit),
		TransactionCount:  len(window),
	}

	if a.logger != nil {
		a.logger.Debug("Built dashboard",
			logging.Field{Key: logging.FieldTimeframe, Value: string(tf)},
			logging.Field{Key: logging.FieldCount, Value: d.TransactionCount},
			logging.Field{Key: "categories", Value: len(d.ExpenseByCategory) + len(d.IncomeByCategory)})
	}
	return d
}

// IsEmpty reports whether the window contains no transactions.
func (d Dashboard) IsEmpty() bool {
	return d.TransactionCount == 0
}
