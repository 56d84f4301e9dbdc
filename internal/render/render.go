// Package render formats transactions, dashboards and messages for the
// terminal. Amounts are rounded to two fractional digits here and nowhere else.
package render

import (
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/aggregation"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/filtering"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/notify"
	"fjacquet/fintrack/internal/palette"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// EmptyState is shown in place of a list with no transactions.
const EmptyState = "No transactions yet"

const barWidth = 20

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Renderer renders domain values with category colors from a palette.
type Renderer struct {
	palette *palette.Palette
	symbol  string
}

// New creates a Renderer. symbol prefixes every amount.
func New(p *palette.Palette, currencySymbol string) *Renderer {
	if p == nil {
		p = palette.New(0)
	}
	return &Renderer{palette: p, symbol: currencySymbol}
}

// Amount formats amount with the currency symbol.
func (r *Renderer) Amount(amount decimal.Decimal) string {
	return currencyutils.FormatAmount(amount, r.symbol)
}

// Chip renders a category name in its palette color.
func (r *Renderer) Chip(category string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(r.palette.Color(category))).Render("● " + category)
}

// Transaction renders a single transaction on one line.
func (r *Renderer) Transaction(tx models.Transaction) string {
	return fmt.Sprintf("%s  %s  %s  %s  %s  %s",
		mutedStyle.Render(string(tx.ID)), tx.Date, tx.Type, tx.Description, r.Chip(tx.Category), r.Amount(tx.Amount))
}

// Transactions renders one page of the filtered list followed by the page
// position.
func (r *Renderer) Transactions(page filtering.PageResult) string {
	if page.Total == 0 {
		return mutedStyle.Render(EmptyState)
	}

	rows := make([][]string, 0, len(page.Items))
	for _, tx := range page.Items {
		rows = append(rows, []string{
			string(tx.ID), tx.Date.String(), tx.Type.String(), tx.Description, r.Chip(tx.Category), r.Amount(tx.Amount),
		})
	}

	var b strings.Builder
	b.WriteString(table([]string{"ID", "Date", "Type", "Description", "Category", "Amount"}, rows, 5))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Page %d of %d (%d transactions)", page.Page, page.PageCount, page.Total)))
	return b.String()
}

// Categories renders the vocabulary of typ with colors.
func (r *Renderer) Categories(typ models.TransactionType) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(typ.String() + " categories"))
	for _, c := range models.CategoriesFor(typ) {
		b.WriteString("\n  ")
		b.WriteString(r.Chip(c.Name))
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(c.Color))
	}
	return b.String()
}

// Dashboard renders the summary view.
func (r *Renderer) Dashboard(d aggregation.Dashboard) string {
	var sections []string

	heading := "Summary: " + d.Timeframe.Label()
	if !d.WindowStart.IsZero() {
		heading += fmt.Sprintf(" (since %s)", d.WindowStart)
	}
	sections = append(sections, titleStyle.Render(heading))

	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render("Balance\n"+r.Amount(d.Balance)),
		cardStyle.Render("Income\n"+successStyle.Render(r.Amount(d.Window.Income))),
		cardStyle.Render("Expenses\n"+errorStyle.Render(r.Amount(d.Window.Expense))),
	))

	if d.IsEmpty() {
		sections = append(sections, mutedStyle.Render(EmptyState))
		return strings.Join(sections, "\n")
	}

	sections = append(sections,
		r.breakdown("Expenses by category", d.ExpenseByCategory),
		r.breakdown("Income by category", d.IncomeByCategory),
		r.trend("Expense trend", aggregation.DailyTrend(d.ExpenseTrend)),
		r.recent("Recent expenses", d.RecentExpenses),
		r.recent("Recent income", d.RecentIncome),
	)
	return strings.Join(sections, "\n\n")
}

func (r *Renderer) breakdown(title string, groups []aggregation.CategoryTotal) string {
	if len(groups) == 0 {
		return headerStyle.Render(title) + "\n" + mutedStyle.Render("none")
	}
	total := aggregation.SumGroups(groups)
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		share := g.Share(total)
		rows = append(rows, []string{
			r.Chip(g.Category),
			r.Amount(g.Amount),
			share.StringFixed(2) + "%",
			bar(share, r.palette.Color(g.Category)),
		})
	}
	return headerStyle.Render(title) + "\n" + table(nil, rows, 1, 2)
}

func (r *Renderer) trend(title string, points []aggregation.TrendPoint) string {
	if len(points) == 0 {
		return headerStyle.Render(title) + "\n" + mutedStyle.Render("none")
	}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Date.String(), r.Amount(p.Amount)})
	}
	return headerStyle.Render(title) + "\n" + table(nil, rows, 1)
}

func (r *Renderer) recent(title string, txs []models.Transaction) string {
	if len(txs) == 0 {
		return headerStyle.Render(title) + "\n" + mutedStyle.Render("none")
	}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{tx.Date.String(), tx.Description, r.Chip(tx.Category), r.Amount(tx.Amount)})
	}
	return headerStyle.Render(title) + "\n" + table(nil, rows, 3)
}

// ValidationErrors renders one "field: message" line per failing field.
func ValidationErrors(v models.ValidationErrors) string {
	lines := make([]string, 0, len(v))
	for _, f := range v.Fields() {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("%s: %s", f, v[f])))
	}
	return strings.Join(lines, "\n")
}

// Notifications renders notifications one per line, colored by level.
func Notifications(ns []notify.Notification) string {
	lines := make([]string, 0, len(ns))
	for _, n := range ns {
		style := successStyle
		switch n.Level {
		case notify.Warning:
			style = warningStyle
		case notify.Error:
			style = errorStyle
		case notify.Info:
			style = mutedStyle
		}
		lines = append(lines, style.Render(n.Message))
	}
	return strings.Join(lines, "\n")
}

// bar draws share percent of barWidth cells.
func bar(share decimal.Decimal, color string) string {
	n := int(share.Mul(decimal.NewFromInt(barWidth)).Div(decimal.NewFromInt(100)).Round(0).IntPart())
	if n < 1 && share.IsPositive() {
		n = 1
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", n))
}

// table aligns cells in columns two spaces apart. Columns listed in right are
// right aligned. A nil header omits the header row.
func table(header []string, rows [][]string, right ...int) string {
	cols := len(header)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := make([]int, cols)
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	alignRight := make(map[int]bool, len(right))
	for _, i := range right {
		alignRight[i] = true
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			s := style.Width(widths[i])
			if alignRight[i] {
				s = s.Align(lipgloss.Right)
			}
			parts[i] = s.Render(cell)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var lines []string
	if header != nil {
		lines = append(lines, line(header, headerStyle))
	}
	for _, row := range rows {
		lines = append(lines, line(row, lipgloss.NewStyle()))
	}
	return strings.Join(lines, "\n")
}
