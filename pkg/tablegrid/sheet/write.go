package sheet

import (
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"github.com/xuri/excelize/v2"
)

// WriteGrid writes every cell of g's effective rectangle to the sheet,
// anchored at A1. The sheet is created when it does not exist yet; cells of
// an existing sheet outside the rectangle are blanked.
// Cells are written as strings so that numbers keep the text the author typed.
func WriteGrid(f *excelize.File, sheetName string, g models.Grid) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return err
	}
	d := grid.Dimensions(g)
	if idx < 0 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
	} else if err := clearOutside(f, sheetName, d); err != nil {
		return err
	}

	for r := range d.RowCount {
		values := make([]interface{}, d.ColumnCount)
		for c := range d.ColumnCount {
			values[c] = grid.CellAt(g, models.Position{Row: r, Column: c}).Text
		}
		cellName, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cellName, &values); err != nil {
			return err
		}
	}
	return nil
}

// clearOutside blanks non-empty cells beyond d left over from earlier content.
func clearOutside(f *excelize.File, sheetName string, d models.Dimensions) error {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return err
	}
	for r, row := range rows {
		for c, value := range row {
			if value == "" || (r < d.RowCount && c < d.ColumnCount) {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheetName, cellName, ""); err != nil {
				return err
			}
		}
	}
	return nil
}
