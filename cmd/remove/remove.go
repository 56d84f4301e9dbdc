// Package remove implements the delete command
package remove

import (
	"io"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a transaction",
	Long:    `Delete the transaction with the given id. Deleted ids are never reused.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		return Run(app, models.ID(args[0]), cmd.OutOrStdout())
	},
}

// Run deletes the transaction id.
func Run(app *container.Container, id models.ID, out io.Writer) error {
	err := app.GetRepository().Delete(id)
	return common.Report(out, err, app.GetNotifications())
}
