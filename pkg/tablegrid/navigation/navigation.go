// Package navigation decides where keyboard focus goes next while a cell
// of the table editor is being edited.
//
// The functions here never move focus themselves. They return a Move that
// the caller applies in two steps: first the optional grid mutation, then
// the focus change on the next render, once the target cell exists.
package navigation

import (
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
)

// Move is the outcome of a key press.
type Move struct {
	// Focus is the cell that should receive focus after the mutation.
	Focus models.Position `json:"focus" yaml:"focus"`
	// InsertRow requests a new row to be appended before moving focus.
	InsertRow bool `json:"insert_row" yaml:"insert_row"`
}

// Direction is an arrow key.
type Direction int

const (
	// Up moves to the row above.
	Up Direction = iota
	// Down moves to the row below.
	Down
	// Left moves to the previous column.
	Left
	// Right moves to the next column.
	Right
)

// Enter returns the move for the Enter key at p: the next cell of the row,
// else the first cell of the next row, else a new row.
func Enter(p models.Position, d models.Dimensions) Move {
	switch {
	case p.Column < d.ColumnCount-1:
		return Move{Focus: models.Position{Row: p.Row, Column: p.Column + 1}}
	case p.Row < d.RowCount-1:
		return Move{Focus: models.Position{Row: p.Row + 1, Column: 0}}
	default:
		return Move{Focus: models.Position{Row: d.RowCount, Column: 0}, InsertRow: true}
	}
}

// Arrow returns the move for an arrow key at p. Focus stays inside the
// grid; arrows never grow it.
func Arrow(p models.Position, d models.Dimensions, dir Direction) Move {
	next := p
	switch dir {
	case Up:
		next.Row--
	case Down:
		next.Row++
	case Left:
		next.Column--
	case Right:
		next.Column++
	}
	next.Row = min(max(next.Row, 0), d.RowCount-1)
	next.Column = min(max(next.Column, 0), d.ColumnCount-1)
	return Move{Focus: next}
}

// Apply performs the grid mutation m requests, if any.
func Apply(g models.Grid, m Move) models.Grid {
	if m.InsertRow {
		return grid.InsertRow(g)
	}
	return g
}

// ParseDirection maps a key name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return 0, false
}
