package attackmap

import (
	"github.com/spf13/cobra"

	"github.com/attackmap/attackmap/internal/engine"
)

var (
	flagNetOut  string
	flagNetName string
)

func init() {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Generate a coverage layer restricted to network platforms",
		Long:  "Same pipeline as generate, restricted to the built-in network platform folders (Cloudflare, Netcraft, Datadog).",
		RunE:  runNetwork,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagRepo, "repo", "r", "", "path to the detections directory (required)")
	cmd.Flags().StringVarP(&flagNetOut, "out", "o", "out/layers/coverage_network.json", "output layer JSON path")
	cmd.Flags().StringVarP(&flagNetName, "name", "n", "Coverage - Network", "layer display name")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip rule files larger than this (0 = no limit)")
	_ = cmd.MarkFlagRequired("repo")
}

func runNetwork(cmd *cobra.Command, _ []string) error {
	return generate(cmd, flagNetOut, flagNetName, engine.NetworkPlatforms)
}
