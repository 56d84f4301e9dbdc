// Package add implements the add command
package add

import (
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/models"

	"github.com/spf13/cobra"
)

var flags common.DraftFlags

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense or income",
	Long: `Add a transaction. The type defaults to Expense and the date to today.
The category must belong to the vocabulary of the type, see "fintrack categories".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		return Run(app, &flags, cmd.Flags().Changed, cmd.OutOrStdout())
	},
}

func init() {
	flags.Bind(Cmd)
}

// Run adds the transaction described by the flags marked as changed.
func Run(app *container.Container, f *common.DraftFlags, changed func(string) bool, out io.Writer) error {
	draft, err := f.Apply(models.Draft{Type: models.TypeExpense}, changed)
	if err != nil {
		return common.Report(out, err, app.GetNotifications())
	}

	tx, err := app.GetRepository().Add(draft)
	if err == nil {
		fmt.Fprintln(out, app.GetRenderer().Transaction(tx))
	}
	return common.Report(out, err, app.GetNotifications())
}
