// Package categories implements the categories command
package categories

import (
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/render"

	"github.com/spf13/cobra"
)

var typeName string

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories of each transaction type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		return Run(app.GetRenderer(), typeName, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&typeName, "type", "t", "", "Only this type (Expense or Income)")
}

// Run prints the vocabulary of typeName, or of both types when it is empty.
func Run(r *render.Renderer, typeName string, out io.Writer) error {
	types := models.TransactionTypes
	if typeName != "" {
		typ, err := models.ParseTransactionType(typeName)
		if err != nil {
			return err
		}
		types = []models.TransactionType{typ}
	}
	for i, typ := range types {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, r.Categories(typ))
	}
	return nil
}
