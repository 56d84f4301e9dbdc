// Package list implements the list command
package list

import (
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/filtering"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/spf13/cobra"
)

// Options are the list flags.
type Options struct {
	Category string
	Type     string
	Search   string
	From     string
	To       string
	Page     int
	PageSize int // 0 uses view.page_size
}

var opts Options

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	Long: `List transactions sorted by date, newest first, filtered by category, type,
description and an inclusive date range, one page at a time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		return Run(app, opts, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.Category, "category", "c", filtering.AnyCategory, "Only this category")
	Cmd.Flags().StringVarP(&opts.Type, "type", "t", string(filtering.AnyType), "Only this type (All, Expense or Income)")
	Cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Case-insensitive description search")
	Cmd.Flags().StringVar(&opts.From, "from", "", "First date to include")
	Cmd.Flags().StringVar(&opts.To, "to", "", "Last date to include")
	Cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "Page number, starting at 1")
	Cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Transactions per page (default from config)")
}

// Criteria converts the flags to filter criteria.
func (o Options) Criteria() (filtering.Criteria, error) {
	typ, err := filtering.ParseTypeFilter(o.Type)
	if err != nil {
		return filtering.Criteria{}, err
	}
	c := filtering.Criteria{Category: o.Category, Type: typ, SearchTerm: o.Search}
	if c.StartDate, err = parseBound(o.From); err != nil {
		return filtering.Criteria{}, fmt.Errorf("invalid --from: %w", err)
	}
	if c.EndDate, err = parseBound(o.To); err != nil {
		return filtering.Criteria{}, fmt.Errorf("invalid --to: %w", err)
	}
	return c, nil
}

func parseBound(s string) (*models.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Run prints the requested page of the filtered list.
func Run(app *container.Container, o Options, out io.Writer) error {
	criteria, err := o.Criteria()
	if err != nil {
		return err
	}

	pageSize := o.PageSize
	if pageSize == 0 {
		pageSize = app.GetConfig().View.PageSize
	}
	state := filtering.NewListState(pageSize)
	state.SetFilters(criteria)
	state.SetPage(o.Page)

	result := state.Apply(app.GetRepository().All())
	app.GetLogger().Debug("Listed transactions",
		logging.Field{Key: logging.FieldOperation, Value: logging.OpQuery},
		logging.Field{Key: logging.FieldPage, Value: result.Page},
		logging.Field{Key: logging.FieldCount, Value: result.Total})

	fmt.Fprintln(out, app.GetRenderer().Transactions(result))
	return nil
}
