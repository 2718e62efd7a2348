package cmd

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fluxbase-eu/fluxpack/internal/bundler"
	"github.com/fluxbase-eu/fluxpack/internal/config"
)

var (
	buildOutDir  string
	buildOutFile string
)

var buildCmd = &cobra.Command{
	Use:   "build [entry]",
	Short: "Bundle an entry module and its dependencies into one file",
	Long: `Build discovers every module statically reachable from the entry file,
transforms each one to the require/module/exports idiom, and writes a single
self-contained artifact to the configured destination.

The entry can be given as an argument, in fluxpack.yaml, or via FLUXPACK_ENTRY.
The build is all-or-nothing: any unreadable, unparsable, or unresolvable module
aborts it before anything is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildOutDir, "out-dir", "",
		"destination directory (overrides output.path)")
	buildCmd.Flags().StringVar(&buildOutFile, "out-file", "",
		"destination file name (overrides output.filename)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadBuildConfig(args)
	if err != nil {
		return err
	}

	start := time.Now()
	log.Debug().Str("entry", cfg.Entry).Msg("Building dependency graph")

	graph, err := bundler.BuildGraph(cfg.Entry)
	if err != nil {
		return err
	}
	log.Debug().
		Int("modules", graph.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Dependency graph complete")

	text, err := bundler.Emit(graph)
	if err != nil {
		return err
	}

	path, err := bundler.Write(text, cfg.Output.Path, cfg.Output.Filename)
	if err != nil {
		return err
	}

	log.Info().
		Str("artifact", path).
		Int("modules", graph.Len()).
		Int("bytes", len(text)).
		Dur("elapsed", time.Since(start)).
		Msg("Bundle written")

	formatter.Success("Bundled %d modules into %s", graph.Len(), path)
	return nil
}

// loadBuildConfig merges the config file, environment, and command-line
// overrides, then validates the result.
func loadBuildConfig(args []string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Entry = args[0]
	}
	if buildOutDir != "" {
		cfg.Output.Path = buildOutDir
	}
	if buildOutFile != "" {
		cfg.Output.Filename = buildOutFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
