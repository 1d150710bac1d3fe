// Package root contains the root command for the application
package root

import (
	"suica-csv/internal/config"
	"suica-csv/internal/converter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input       string
	Output      string
	ExpenseOnly bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "suica-csv",
		Short: "A CLI tool to convert Suica statement files into importable CSV.",
		Long: `suica-csv converts the tab-separated transaction history exported for
Suica cards into CSV files a personal-finance tool can import. It infers
the missing year of each record, staggers same-day timestamps, and splits
the output at the per-file line ceiling.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to suica-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()
			converter.SetLogger(Log)
		},
	}

	// SharedFlags are the flag values common to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags. Flag defaults come
// from the hierarchical configuration.
func Init() {
	cfg, err := config.InitializeConfig()
	if err != nil {
		Log.Fatalf("Failed to initialize configuration: %v", err)
	}
	Cfg = cfg

	Cmd.PersistentFlags().StringVar(&SharedFlags.Input, "in", cfg.Input.Path, "Input statement file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Output, "out", cfg.Output.Path, "Output CSV file (numbered per split file)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.ExpenseOnly, "expense-only", cfg.Convert.ExpenseOnly, "Drop deposit (positive amount) records")
}
