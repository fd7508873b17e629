// SPDX-License-Identifier: MIT

// Package cli implements the graphkit command tree.
package cli

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/graphkit/config"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds a fresh command tree with its own flag state.
func NewRootCommand(version string) *cobra.Command {
	input := new(Input)
	rootCmd := &cobra.Command{
		Use:               "graphkit",
		Short:             "Build, analyse and lay out graphs stored as DOT or .gk files",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup(input),
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&input.storePath, "store", "", "graph database (overrides store.path)")

	rootCmd.AddCommand(
		newConvertCommand(input),
		newInfoCommand(input),
		newMatchCommand(input),
		newComponentsCommand(input),
		newCutVerticesCommand(input),
		newBlocksCommand(input),
		newBridgesCommand(input),
		newCliquesCommand(input),
		newPathCommand(input),
		newTopoSortCommand(input),
		newMSTCommand(input),
		newLayoutCommand(input),
		newGenerateCommand(input),
		newStoreCommand(input),
	)
	return rootCmd
}

func setup(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		input.cfg = config.Default()
		if input.configPath != "" {
			cfg, err := config.Load(input.configPath)
			if err != nil {
				return err
			}
			input.cfg = cfg
		}
		log.SetOutput(cmd.ErrOrStderr())
		if err := input.cfg.Log.Apply(log.StandardLogger()); err != nil {
			return err
		}
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}
		log.Debugf("config %+v", input.cfg)
		return nil
	}
}

// addOutputFlag registers -o on commands that emit a graph.
func addOutputFlag(fs *pflag.FlagSet, input *Input) {
	fs.StringVarP(&input.output, "output", "o", "", "write the graph to this file (.gk or DOT); stdout when empty")
}
