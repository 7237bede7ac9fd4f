package models

// Position addresses a cell by 0-based row and column.
type Position struct {
	// Row is the 0-based row index.
	Row int `json:"row" yaml:"row"`
	// Column is the 0-based column index.
	Column int `json:"column" yaml:"column"`
}
