package attackmap

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attackmap/attackmap/internal/config"
	"github.com/attackmap/attackmap/internal/engine"
	"github.com/attackmap/attackmap/internal/layer"
	"github.com/attackmap/attackmap/internal/report"
)

var (
	flagRepo      string
	flagOut       string
	flagName      string
	flagPlatforms string
	flagInclude   string
	flagExclude   string
	flagMaxBytes  int64
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a coverage layer from detection rules",
		RunE:  runGenerate,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagRepo, "repo", "r", "", "path to the detections directory (required)")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "out/layers/coverage_all.json", "output layer JSON path")
	cmd.Flags().StringVarP(&flagName, "name", "n", "Coverage - All", "layer display name")
	cmd.Flags().StringVar(&flagPlatforms, "platforms", "", "comma-separated platform folders to include (empty = all)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip rule files larger than this (0 = no limit)")
	_ = cmd.MarkFlagRequired("repo")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	return generate(cmd, flagOut, flagName, splitList(flagPlatforms))
}

// generate runs the pipeline shared by the generate and network commands;
// the two differ only in their platform filter and defaults.
func generate(cmd *cobra.Command, outPath, name string, platforms []string) error {
	abs, _ := filepath.Abs(flagRepo)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	if len(platforms) == 0 {
		platforms = pickList(nil, lcfg.Platforms, gcfg.Platforms)
	}

	cfg := engine.Config{
		Root:             abs,
		Platforms:        platforms,
		IncludeGlobs:     pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:     pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:         pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		ExtraExcludeDirs: pickList(nil, lcfg.ExcludeDirs, gcfg.ExcludeDirs),
	}

	summaries, stats, err := engine.Run(cfg)
	if err != nil {
		return err
	}

	l := layer.Build(name, summaries)
	if err := report.WriteLayer(outPath, l); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.PrintSummary(out, stats, outPath, l)
	if flagTable || pickBool(false, lcfg.Table, gcfg.Table) {
		report.PrintTable(out, l)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
