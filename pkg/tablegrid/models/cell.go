// Package models defines data structures for the table content module.
package models

// Cell represents a single text cell of a table.
// Cells are values; an edit replaces the whole cell.
type Cell struct {
	// Text is the cell content as entered or pasted.
	Text string `json:"text" yaml:"text"`
}
