package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/navigation"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/output"
	"github.com/spf13/cobra"
)

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return data, err
}

// readGrid reads a grid document. The format follows the file extension,
// falling back to the configured format.
func readGrid(cmd *cobra.Command, path string) (models.Grid, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return models.Grid{}, err
	}
	g, err := output.Decode(data, inputFormat(path))
	if err != nil {
		return models.Grid{}, fmt.Errorf("invalid grid document %s: %w", path, err)
	}
	return g, nil
}

func inputFormat(path string) output.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return output.FormatYAML
	case ".json":
		return output.FormatJSON
	}
	f, _ := output.ParseFormat(cfg.Format)
	return f
}

// writeGrid serializes a grid in the configured format and writes it.
func writeGrid(cmd *cobra.Command, g models.Grid) error {
	var data []byte
	var err error
	switch f, _ := output.ParseFormat(cfg.Format); f {
	case output.FormatYAML:
		data, err = output.ToYAML(g)
	default:
		data, err = output.ToJSON(g, cfg.Pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, data)
}

// writeMove serializes a navigation move in the configured format and writes it.
func writeMove(cmd *cobra.Command, m navigation.Move) error {
	if f, _ := output.ParseFormat(cfg.Format); f == output.FormatYAML {
		return writeValue(cmd, m)
	}
	data, err := output.MoveToJSON(m, cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, data)
}

// writeValue serializes v in the configured format and writes it.
func writeValue(cmd *cobra.Command, v any) error {
	f, _ := output.ParseFormat(cfg.Format)
	data, err := output.Encode(v, f, cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, data)
}

// writeOutput writes data to --output or stdout.
func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := fmt.Fprintln(out)
		return err
	}
	return nil
}
