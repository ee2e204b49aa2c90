package attackmap

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attackmap/attackmap/internal/logging"
)

var (
	flagDebug bool
	flagTable bool
)

// rootCmd is the base Cobra command for the attackmap CLI.
var rootCmd = &cobra.Command{
	Use:           "attackmap",
	Short:         "Generate ATT&CK Navigator coverage layers from detection rules",
	Long:          "attackmap scans a repository of detection rule YAML files, aggregates MITRE ATT&CK technique and severity coverage, and writes a Navigator layer JSON.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return logging.Init(flagDebug)
	},
}

// Execute runs the attackmap CLI. It should be called by the main package.
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "print the technique entries as a table after the summary")
}
