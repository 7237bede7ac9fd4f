package clipboard

import (
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
)

// ImportAt merges the first HTML table of fragment into g with its upper
// left cell at p. It returns false, and no grid, when the fragment holds no
// usable table; the caller keeps g in that case.
func ImportAt(g models.Grid, p models.Position, fragment string) (models.Grid, bool) {
	matrix, ok := ParseHTMLTable(fragment)
	if !ok {
		return models.Grid{}, false
	}
	return MergeAt(g, p, matrix)
}

// MergeAt overwrites the rectangle of g starting at p with matrix.
// The result is a rectangle large enough for both g and the pasted cells;
// it never shrinks. Cells outside the pasted rectangle keep their value or
// are empty. An empty matrix or a negative position yields false.
func MergeAt(g models.Grid, p models.Position, matrix [][]models.Cell) (models.Grid, bool) {
	importedCols := 0
	for _, row := range matrix {
		importedCols = max(importedCols, len(row))
	}
	if len(matrix) == 0 || importedCols == 0 || p.Row < 0 || p.Column < 0 {
		return models.Grid{}, false
	}

	d := grid.Dimensions(g)
	rows := max(d.RowCount, p.Row+len(matrix))
	cols := max(d.ColumnCount, p.Column+importedCols)

	next := grid.Normalize(g, rows, cols)
	for r, row := range matrix {
		for c, cell := range row {
			next.Rows[p.Row+r][p.Column+c] = cell
		}
	}
	return next, true
}
