// Package root contains the root command for the application
package root

import (
	"os"

	"finledger/statement-parser/internal/config"
	"finledger/statement-parser/internal/export"
	"finledger/statement-parser/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "statement-parser",
		Short: "A CLI tool to parse bank statement PDFs and categorize transactions.",
		Long: `statement-parser extracts transactions from bank statement PDFs,
classifies them into spending categories and flags recurring charges.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-parser!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				export.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific categorize command flags
	Description string
	Amount      string
	IsCredit    bool
)

// GetLogrusAdapter wraps the shared logger in the logging.Logger interface
// used by the internal packages.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "csv", "Output format: csv or json")
}
