// Package grid implements the pure mutation operations of a table grid.
//
// Every function takes a grid snapshot and returns a new one. Inputs are
// never modified and outputs never share row storage with inputs, so a caller
// may keep older snapshots around (for undo or for comparison).
package grid

import "github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"

// New returns an empty grid of rows x cols cells. Sizes below 1 are raised to 1.
func New(rows, cols int) models.Grid {
	return Normalize(models.Grid{}, max(rows, 1), max(cols, 1))
}

// Dimensions returns the effective size of g.
// The row count is len(g.Rows) and the column count is the longest row,
// both at least 1.
func Dimensions(g models.Grid) models.Dimensions {
	cols := 0
	for _, row := range g.Rows {
		cols = max(cols, len(row))
	}
	return models.Dimensions{
		RowCount:    max(len(g.Rows), 1),
		ColumnCount: max(cols, 1),
	}
}

// CellAt returns the cell at p, or an empty cell when g does not store one.
func CellAt(g models.Grid, p models.Position) models.Cell {
	if p.Row < 0 || p.Row >= len(g.Rows) {
		return models.Cell{}
	}
	row := g.Rows[p.Row]
	if p.Column < 0 || p.Column >= len(row) {
		return models.Cell{}
	}
	return row[p.Column]
}

// EditCell replaces the text of the cell at p.
// A short row is padded with empty cells up to p. Positions outside the
// effective dimensions leave g unchanged.
func EditCell(g models.Grid, p models.Position, text string) models.Grid {
	if !Dimensions(g).Contains(p) {
		return clone(g)
	}
	next := clone(g)
	for len(next.Rows) <= p.Row {
		next.Rows = append(next.Rows, nil)
	}
	row := next.Rows[p.Row]
	for len(row) <= p.Column {
		row = append(row, models.Cell{})
	}
	row[p.Column] = models.Cell{Text: text}
	next.Rows[p.Row] = row
	return next
}

// InsertColumn appends an empty column.
// Ragged rows are padded first so the column count grows by exactly one.
func InsertColumn(g models.Grid) models.Grid {
	d := Dimensions(g)
	return Normalize(g, d.RowCount, d.ColumnCount+1)
}

// RemoveLastColumn drops the last cell of every row.
// A grid with a single column is returned unchanged.
func RemoveLastColumn(g models.Grid) models.Grid {
	d := Dimensions(g)
	if d.ColumnCount <= 1 {
		return clone(g)
	}
	last := d.ColumnCount - 1
	next := models.Grid{Rows: make([][]models.Cell, len(g.Rows))}
	for i, row := range g.Rows {
		next.Rows[i] = cloneRow(row[:min(len(row), last)])
	}
	return next
}

// InsertRow appends a row of empty cells as wide as the grid.
func InsertRow(g models.Grid) models.Grid {
	d := Dimensions(g)
	next := clone(g)
	for len(next.Rows) < d.RowCount {
		// An empty grid reads as one row; materialise it before appending.
		next.Rows = append(next.Rows, make([]models.Cell, d.ColumnCount))
	}
	next.Rows = append(next.Rows, make([]models.Cell, d.ColumnCount))
	return next
}

// RemoveLastRow drops the last row. A single-row grid is returned unchanged.
func RemoveLastRow(g models.Grid) models.Grid {
	if Dimensions(g).RowCount <= 1 {
		return clone(g)
	}
	next := clone(g)
	next.Rows = next.Rows[:len(next.Rows)-1]
	return next
}

// Normalize returns a rows x cols rectangle holding the cells of g.
// Cells outside the rectangle are dropped; missing cells are empty.
func Normalize(g models.Grid, rows, cols int) models.Grid {
	next := models.Grid{Rows: make([][]models.Cell, rows)}
	for r := range rows {
		row := make([]models.Cell, cols)
		if r < len(g.Rows) {
			copy(row, g.Rows[r])
		}
		next.Rows[r] = row
	}
	return next
}

// Equal reports whether a and b hold the same effective content.
// A ragged row and the same row padded with empty cells compare equal.
func Equal(a, b models.Grid) bool {
	da, db := Dimensions(a), Dimensions(b)
	if da != db {
		return false
	}
	for r := range da.RowCount {
		for c := range da.ColumnCount {
			p := models.Position{Row: r, Column: c}
			if CellAt(a, p) != CellAt(b, p) {
				return false
			}
		}
	}
	return true
}

// Identical reports whether a and b store the same rows, including their
// lengths. Unlike Equal it tells a ragged row from its padded form.
func Identical(a, b models.Grid) bool {
	if len(a.Rows) != len(b.Rows) {
		return false
	}
	for r := range a.Rows {
		if len(a.Rows[r]) != len(b.Rows[r]) {
			return false
		}
		for c := range a.Rows[r] {
			if a.Rows[r][c] != b.Rows[r][c] {
				return false
			}
		}
	}
	return true
}

func clone(g models.Grid) models.Grid {
	if g.Rows == nil {
		return models.Grid{}
	}
	next := models.Grid{Rows: make([][]models.Cell, len(g.Rows))}
	for i, row := range g.Rows {
		next.Rows[i] = cloneRow(row)
	}
	return next
}

func cloneRow(row []models.Cell) []models.Cell {
	if row == nil {
		return nil
	}
	return append(make([]models.Cell, 0, len(row)), row...)
}
