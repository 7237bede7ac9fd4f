package sheet

import (
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads the cells of a sheet as text.
// With a nil area the grid is cropped to the used range of the sheet, the
// bounding box of its non-empty cells. An empty sheet or area yields a 1x1
// empty grid.
func ReadGrid(f *excelize.File, sheetName string, area *models.Area) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Grid{}, err
	}

	if area == nil {
		minRow, maxRow, minCol, maxCol := findDataBounds(rows)
		if minRow < 0 {
			return grid.New(1, 1), nil
		}
		area = &models.Area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}
	}

	return crop(rows, *area), nil
}

// Extent returns the area from A1 to the bottom-right corner of the used
// range, or nil when the sheet holds no values.
func Extent(f *excelize.File, sheetName string) (*models.Area, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	minRow, maxRow, _, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}
	return &models.Area{R1: 1, C1: 1, R2: maxRow + 1, C2: maxCol + 1}, nil
}

// crop copies the 1-based inclusive area out of rows.
// Rows of the result are trimmed of trailing empty cells, the same ragged
// shape GetRows returns.
func crop(rows [][]string, area models.Area) models.Grid {
	height := area.R2 - area.R1 + 1
	width := area.C2 - area.C1 + 1
	if height <= 0 || width <= 0 {
		return grid.New(1, 1)
	}

	g := models.Grid{Rows: make([][]models.Cell, height)}
	for r := range height {
		rowIdx := area.R1 - 1 + r
		if rowIdx >= len(rows) {
			g.Rows[r] = []models.Cell{}
			continue
		}
		src := rows[rowIdx]
		var row []models.Cell
		for c := range width {
			colIdx := area.C1 - 1 + c
			if colIdx >= len(src) {
				break
			}
			row = append(row, models.Cell{Text: src[colIdx]})
		}
		g.Rows[r] = trimTrailing(row)
	}
	return g
}

func trimTrailing(row []models.Cell) []models.Cell {
	end := len(row)
	for end > 0 && row[end-1].Text == "" {
		end--
	}
	return append([]models.Cell{}, row[:end]...)
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
// All results are -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
