package models

// Grid represents the rows of a table content module.
// Stored rows may be ragged; readers treat missing cells as empty.
type Grid struct {
	// Rows contains the table rows in display order.
	Rows [][]Cell `json:"rows" yaml:"rows"`
}

// Dimensions represents the effective size of a grid.
type Dimensions struct {
	// RowCount is the number of rows (at least 1).
	RowCount int `json:"row_count" yaml:"row_count"`
	// ColumnCount is the length of the longest row (at least 1).
	ColumnCount int `json:"column_count" yaml:"column_count"`
}

// Contains reports whether p addresses a cell inside d.
func (d Dimensions) Contains(p Position) bool {
	return p.Row >= 0 && p.Column >= 0 && p.Row < d.RowCount && p.Column < d.ColumnCount
}
