// Package main provides the CLI entry point for tablegrid.
package main

import (
	"fmt"
	"os"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	outputPath string
	pretty     bool
	format     string
	configPath string
	verbose    bool

	// Resolved settings
	cfg    tablegrid.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablegrid",
		Short: "Edit table content-module grids",
		Long: `tablegrid applies table editor operations (cell edits, row and column
changes, clipboard paste, Enter navigation) to content-module grid documents
and converts grids from and to Excel worksheets.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "Grid document format: json, yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newNewCmd(),
		newDimsCmd(),
		newEditCmd(),
		newShapeCmd("insert-row", "Append an empty row", tablegrid.ActionInsertRow),
		newShapeCmd("remove-row", "Remove the last row", tablegrid.ActionRemoveRow),
		newShapeCmd("insert-column", "Append an empty column", tablegrid.ActionInsertColumn),
		newShapeCmd("remove-column", "Remove the last column", tablegrid.ActionRemoveColumn),
		newPasteCmd(),
		newNextCmd(),
		newHTMLCmd(),
		newImportXLSXCmd(),
		newExportXLSXCmd(),
	)
	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = tablegrid.DefaultConfig()
	if configPath != "" {
		loaded, err := tablegrid.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") || configPath == "" {
		cfg.Format = format
	}
	if flags.Changed("pretty") || configPath == "" {
		cfg.Pretty = pretty
	}
	if _, err := output.ParseFormat(cfg.Format); err != nil {
		return err
	}

	zapCfg := zap.NewProductionConfig()
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// options returns library options for the resolved config.
func options() tablegrid.Options {
	opts := cfg.Options()
	opts.Logger = logger
	return opts
}
