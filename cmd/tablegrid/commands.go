package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/clipboard"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/navigation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNewCmd() *cobra.Command {
	var rows, columns int
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeGrid(cmd, grid.New(rows, columns))
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 1, "Number of rows")
	cmd.Flags().IntVar(&columns, "columns", 1, "Number of columns")
	return cmd
}

func newDimsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dims [grid]",
		Short: "Print the effective dimensions of a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			return writeValue(cmd, grid.Dimensions(g))
		},
	}
}

func newEditCmd() *cobra.Command {
	var pos models.Position
	var text string
	cmd := &cobra.Command{
		Use:   "edit [grid]",
		Short: "Replace the text of one cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], tablegrid.Action{
				Kind:     tablegrid.ActionEditCell,
				Position: pos,
				Text:     text,
			})
		},
	}
	addPositionFlags(cmd, &pos)
	cmd.Flags().StringVar(&text, "text", "", "New cell text")
	return cmd
}

// newShapeCmd builds the row and column insert/remove commands.
func newShapeCmd(use, short string, kind tablegrid.ActionKind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [grid]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], tablegrid.Action{Kind: kind})
		},
	}
}

func newPasteCmd() *cobra.Command {
	var pos models.Position
	var htmlPath, textPath, charset string
	cmd := &cobra.Command{
		Use:   "paste [grid]",
		Short: "Paste clipboard content into a grid",
		Long: `Paste merges a clipboard payload into the grid with its upper left cell at
--row/--column. The grid grows as needed and never shrinks. A payload without a
table leaves the grid unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := tablegrid.ActionPasteHTML
			payloadPath := htmlPath
			switch {
			case htmlPath != "" && textPath != "":
				return errors.New("--html and --text are mutually exclusive")
			case textPath != "":
				kind = tablegrid.ActionPasteText
				payloadPath = textPath
			case htmlPath == "":
				return errors.New("one of --html or --text is required")
			}
			if payloadPath == "-" && args[0] == "-" {
				return errors.New("grid and payload cannot both be read from stdin")
			}

			if !cmd.Flags().Changed("charset") {
				charset = options().Charset
			}
			raw, err := readInput(cmd, payloadPath)
			if err != nil {
				return err
			}
			payload, err := clipboard.DecodeFragment(bytes.NewReader(raw), charset)
			if err != nil {
				return fmt.Errorf("decoding %s as %q: %w", payloadPath, charset, err)
			}

			return runAction(cmd, args[0], tablegrid.Action{Kind: kind, Position: pos, Text: payload})
		},
	}
	addPositionFlags(cmd, &pos)
	cmd.Flags().StringVar(&htmlPath, "html", "", "File holding a text/html clipboard payload (- for stdin)")
	cmd.Flags().StringVar(&textPath, "text", "", "File holding a tab separated text/plain payload (- for stdin)")
	cmd.Flags().StringVar(&charset, "charset", "", "Charset of the payload (default UTF-8)")
	return cmd
}

func newNextCmd() *cobra.Command {
	var pos models.Position
	var key string
	var apply bool
	cmd := &cobra.Command{
		Use:   "next [grid]",
		Short: "Compute the focus move for a key press",
		Long: `Next prints the focus target for a key press (enter, up, down, left, right)
in the cell at --row/--column. With --apply it prints the grid after the
mutation the move requests instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			d := grid.Dimensions(g)
			if !d.Contains(pos) {
				return fmt.Errorf("position %d,%d is outside the %dx%d grid", pos.Row, pos.Column, d.RowCount, d.ColumnCount)
			}

			var m navigation.Move
			if key == "enter" {
				m = navigation.Enter(pos, d)
			} else {
				dir, ok := navigation.ParseDirection(key)
				if !ok {
					return fmt.Errorf("invalid key: %s (must be enter, up, down, left or right)", key)
				}
				m = navigation.Arrow(pos, d, dir)
			}

			logger.Debug("Computed move",
				zap.String("key", key),
				zap.Int("row", m.Focus.Row),
				zap.Int("column", m.Focus.Column),
				zap.Bool("insert_row", m.InsertRow))
			if apply {
				return writeGrid(cmd, navigation.Apply(g, m))
			}
			return writeMove(cmd, m)
		},
	}
	addPositionFlags(cmd, &pos)
	cmd.Flags().StringVar(&key, "key", "enter", "Key pressed: enter, up, down, left, right")
	cmd.Flags().BoolVar(&apply, "apply", false, "Print the mutated grid instead of the move")
	return cmd
}

func newHTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "html [grid]",
		Short: "Render a grid as an HTML table for the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			fragment, err := clipboard.RenderHTML(g)
			if err != nil {
				return fmt.Errorf("rendering failed: %w", err)
			}
			return writeOutput(cmd, []byte(fragment))
		},
	}
}

func newImportXLSXCmd() *cobra.Command {
	var sheetName, rangeRef string
	cmd := &cobra.Command{
		Use:   "import-xlsx [input.xlsx]",
		Short: "Read a worksheet into a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			if sheetName != "" {
				opts.SheetName = sheetName
			}
			opts.Range = rangeRef

			g, err := tablegrid.LoadSheet(args[0], opts)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			return writeGrid(cmd, g)
		},
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	cmd.Flags().StringVar(&rangeRef, "range", "", "A1 range to read (default: used range)")
	return cmd
}

func newExportXLSXCmd() *cobra.Command {
	var sheetName string
	cmd := &cobra.Command{
		Use:   "export-xlsx [grid]",
		Short: "Write a grid to a worksheet",
		Long: `Export writes the grid to the worksheet of the xlsx file given by --output.
An existing workbook keeps its other sheets.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return errors.New("--output is required for export-xlsx")
			}
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			opts := options()
			if sheetName != "" {
				opts.SheetName = sheetName
			}
			if err := tablegrid.SaveSheet(outputPath, g, opts); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: Sheet1)")
	return cmd
}

// runAction reduces a single action against the grid at path and writes
// the result. No-op actions write the input grid unchanged.
func runAction(cmd *cobra.Command, path string, a tablegrid.Action) error {
	g, err := readGrid(cmd, path)
	if err != nil {
		return err
	}

	editor := tablegrid.NewEditor(g, options())
	state, changed, err := editor.Dispatch(cmd.Context(), editor.Snapshot().Revision, a)
	if err != nil {
		return err
	}
	if !changed {
		logger.Info("Grid unchanged",
			zap.String("action", string(a.Kind)),
			zap.Int("row", a.Position.Row),
			zap.Int("column", a.Position.Column))
	}
	return writeGrid(cmd, state.Grid)
}

func addPositionFlags(cmd *cobra.Command, pos *models.Position) {
	cmd.Flags().IntVar(&pos.Row, "row", 0, "Row index (0-based)")
	cmd.Flags().IntVar(&pos.Column, "column", 0, "Column index (0-based)")
}
