// Root command for the tome CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomebase/tome/pkg/tome"
	"github.com/tomebase/tome/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDBFile    string
	flagDebug     bool
)

// cfg and logger are loaded by PersistentPreRunE so all subcommands
// can use them.
var (
	cfg    types.Config
	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:     "tome",
	Short:   "Tome is a personal wiki backed by an embedded SQLite store",
	Version: tome.Version,
	Long: `Tome is a personal wiki. Pages are markdown with a small front matter
block, stored in a single SQLite file, and served over HTTP with wikilink
rewriting, tagging, and full-text search.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.tome)")
	rootCmd.PersistentFlags().StringVar(&flagDBFile, "db", "", "path to the wiki database file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(userAddCmd)
}

// initRuntime loads the configuration and builds the logger. Flag values
// override the config file.
func initRuntime(cmd *cobra.Command, args []string) error {
	// Skip for commands that need no store access.
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	loaded, err := loadConfig(resolveConfigDir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flagDBFile != "" {
		loaded.DBFile = flagDBFile
	}
	if flagDebug {
		loaded.Debug = true
	}

	cfg = loaded.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	logger, err = newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	return nil
}

// newLogger builds the process logger. Debug mode uses the human-readable
// development encoder.
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
