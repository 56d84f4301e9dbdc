package main

import (
	"fmt"
	"os"

	"fjacquet/fintrack/cmd/add"
	"fjacquet/fintrack/cmd/categories"
	"fjacquet/fintrack/cmd/edit"
	"fjacquet/fintrack/cmd/list"
	"fjacquet/fintrack/cmd/remove"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/cmd/summary"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

func init() {
	// .env first so FINTRACK_LOG_LEVEL can come from it
	config.LoadEnv()

	// Set the global level before any logger is created
	logging.SetAllLogLevels(logging.ParseLevel(config.GetEnv("FINTRACK_LOG_LEVEL", "info")))

	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		// validation failures were already listed field by field
		if _, ok := models.AsValidationErrors(err); !ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
