// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile   string
	LogLevel     string
	StoreBackend string
	StorePath    string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A CLI tool to record personal expenses and income.",
		Long: `fintrack records expenses and income, lists them with filters and pagination,
and summarizes them per category and timeframe.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app == nil {
				return
			}
			if err := app.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close application")
			}
			app = nil
		},
	}

	// SharedFlags are bound to the root persistent flags by Init.
	SharedFlags = GlobalFlags{}

	app *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default $HOME/.fintrack/config.yaml)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.StoreBackend, "store", "", "Store backend (file, sqlite or memory)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.StorePath, "store-path", "", "Store location (default under $HOME/.fintrack)")
}

// App returns the container built for the running command.
func App() (*container.Container, error) {
	if app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}

func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.Load(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	SharedFlags.apply(cfg)

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	app = c
	Log = c.GetLogger()
	Log.Debug("Command started", logging.Field{Key: logging.FieldOperation, Value: cmd.Name()})
	return nil
}

// apply lets command line flags win over every other configuration source.
func (f GlobalFlags) apply(cfg *config.Config) {
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.StoreBackend != "" {
		cfg.Store.Backend = f.StoreBackend
	}
	if f.StorePath != "" {
		cfg.Store.Path = f.StorePath
	}
}
