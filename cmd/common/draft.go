// Package common contains helpers shared by the transaction commands.
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/notify"
	"fjacquet/fintrack/internal/render"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// DraftFlags holds the raw values of the add and edit flags.
type DraftFlags struct {
	Type        string
	Description string
	Amount      string
	Category    string
	Date        string
}

// Bind registers the draft flags on cmd.
func (f *DraftFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Type, "type", "t", "", "Transaction type (Expense or Income)")
	cmd.Flags().StringVarP(&f.Description, "description", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&f.Amount, "amount", "a", "", "Transaction amount, greater than 0")
	cmd.Flags().StringVarP(&f.Category, "category", "c", "", "Category from the vocabulary of the type")
	cmd.Flags().StringVarP(&f.Date, "date", "D", "", "Transaction date (default today)")
}

// Apply overlays every flag for which changed returns true onto base and
// validates the result. Unparseable values and draft validation failures are
// reported together as models.ValidationErrors.
func (f *DraftFlags) Apply(base models.Draft, changed func(name string) bool) (models.Draft, error) {
	d := base
	errs := models.ValidationErrors{}

	if changed("type") {
		typ, err := models.ParseTransactionType(f.Type)
		if err != nil {
			errs[models.FieldType] = models.MsgTypeInvalid
		}
		d = d.WithType(typ)
	}
	if changed("description") {
		d.Description = f.Description
	}
	if changed("amount") {
		d.Amount = decimal.NullDecimal{}
		amount, err := currencyutils.ParseAmount(f.Amount)
		switch {
		case errors.Is(err, currencyutils.ErrEmptyAmount):
		case err != nil:
			errs[models.FieldAmount] = models.MsgAmountNumber
		default:
			d.Amount = decimal.NewNullDecimal(amount)
		}
	}
	if changed("category") {
		d.Category = f.Category
	}
	if changed("date") {
		d.Date = models.Date{}
		if f.Date != "" {
			date, err := models.ParseDate(f.Date)
			if err != nil {
				errs[models.FieldDate] = models.MsgDateInvalid
			}
			d.Date = date
		}
	}

	if v, ok := models.AsValidationErrors(d.Validate()); ok {
		for field, msg := range v {
			if !errs.Has(field) {
				errs[field] = msg
			}
		}
	}
	if len(errs) > 0 {
		return d, errs
	}
	return d, nil
}

// Report writes the outcome of a mutation to out. Validation failures are
// listed field by field; otherwise the pending notifications are printed.
// The error is returned unchanged.
func Report(out io.Writer, err error, recorder *notify.Recorder) error {
	if v, ok := models.AsValidationErrors(err); ok {
		fmt.Fprintln(out, render.ValidationErrors(v))
		return err
	}
	if ns := recorder.Drain(); len(ns) > 0 {
		fmt.Fprintln(out, render.Notifications(ns))
	}
	return err
}
