// Package edit implements the edit command
package edit

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

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction",
	Long: `Edit the transaction with the given id. Fields without a flag keep their
current value; an empty --date resets the date to today. Switching --type
clears a category that does not exist for the new type.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		return Run(app, models.ID(args[0]), &flags, cmd.Flags().Changed, cmd.OutOrStdout())
	},
}

func init() {
	flags.Bind(Cmd)
}

// Run replaces the transaction id with its current values overlaid by the
// changed flags.
func Run(app *container.Container, id models.ID, f *common.DraftFlags, changed func(string) bool, out io.Writer) error {
	repo := app.GetRepository()
	current, err := repo.Get(id)
	if err != nil {
		return err
	}

	draft, err := f.Apply(models.DraftFrom(current), changed)
	if err != nil {
		return common.Report(out, err, app.GetNotifications())
	}

	tx, err := repo.Edit(id, draft)
	if err == nil {
		fmt.Fprintln(out, app.GetRenderer().Transaction(tx))
	}
	return common.Report(out, err, app.GetNotifications())
}
