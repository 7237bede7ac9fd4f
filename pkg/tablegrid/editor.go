package tablegrid

import (
	"context"
	"fmt"
	"sync"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/clipboard"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/navigation"
	"go.uber.org/zap"
)

// ActionKind names an editor action.
type ActionKind string

const (
	// ActionEditCell replaces the text of the cell at Position with Text.
	ActionEditCell ActionKind = "edit_cell"
	// ActionInsertRow appends an empty row.
	ActionInsertRow ActionKind = "insert_row"
	// ActionRemoveRow removes the last row unless it is the only one.
	ActionRemoveRow ActionKind = "remove_row"
	// ActionInsertColumn appends an empty column.
	ActionInsertColumn ActionKind = "insert_column"
	// ActionRemoveColumn removes the last column unless it is the only one.
	ActionRemoveColumn ActionKind = "remove_column"
	// ActionPasteHTML merges the HTML table in Text at Position.
	ActionPasteHTML ActionKind = "paste_html"
	// ActionPasteText merges the tab separated text in Text at Position.
	ActionPasteText ActionKind = "paste_text"
	// ActionPressEnter moves focus on from Position, growing the grid at its end.
	ActionPressEnter ActionKind = "press_enter"
	// ActionPressArrow moves focus from Position in Direction.
	ActionPressArrow ActionKind = "press_arrow"
	// ActionFocus puts focus on Position.
	ActionFocus ActionKind = "focus"
)

// Action is a user intent applied to a State.
type Action struct {
	Kind ActionKind
	// Position is the edited cell, the paste anchor or the focused cell.
	Position models.Position
	// Text is the new cell text or the clipboard payload.
	Text string
	// Direction is the arrow key of ActionPressArrow.
	Direction navigation.Direction
}

// State is one snapshot of the table editor.
type State struct {
	Grid models.Grid
	// Focus is the cell that holds input focus, if any.
	Focus *models.Position
	// Revision counts grid changes. Focus changes do not bump it.
	Revision uint64
}

// Reduce applies a to s and returns the next state. The second result is
// false when the action changed nothing: a paste without a table, a removal
// at the one row or column minimum, an edit outside the grid.
func Reduce(s State, a Action) (State, bool) {
	next := s
	d := grid.Dimensions(s.Grid)

	switch a.Kind {
	case ActionEditCell:
		next.Grid = grid.EditCell(s.Grid, a.Position, a.Text)
	case ActionInsertRow:
		next.Grid = grid.InsertRow(s.Grid)
	case ActionRemoveRow:
		if d.RowCount <= 1 {
			return s, false
		}
		next.Grid = grid.RemoveLastRow(s.Grid)
	case ActionInsertColumn:
		next.Grid = grid.InsertColumn(s.Grid)
	case ActionRemoveColumn:
		if d.ColumnCount <= 1 {
			return s, false
		}
		next.Grid = grid.RemoveLastColumn(s.Grid)
	case ActionPasteHTML:
		g, ok := clipboard.ImportAt(s.Grid, a.Position, a.Text)
		if !ok {
			return s, false
		}
		next.Grid = g
	case ActionPasteText:
		g, ok := clipboard.ImportTextAt(s.Grid, a.Position, a.Text)
		if !ok {
			return s, false
		}
		next.Grid = g
	case ActionPressEnter:
		// Mutate first, then focus: the new row must exist before it can
		// receive focus.
		m := navigation.Enter(a.Position, d)
		next.Grid = navigation.Apply(s.Grid, m)
		next.Focus = &m.Focus
	case ActionPressArrow:
		m := navigation.Arrow(a.Position, d, a.Direction)
		next.Focus = &m.Focus
	case ActionFocus:
		if !d.Contains(a.Position) {
			return s, false
		}
		p := a.Position
		next.Focus = &p
	default:
		return s, false
	}

	var gridChanged bool
	switch a.Kind {
	case ActionPasteHTML, ActionPasteText:
		// A paste always leaves an exact rectangle, even when it only pads
		// ragged rows.
		gridChanged = !grid.Identical(s.Grid, next.Grid)
	default:
		gridChanged = !grid.Equal(s.Grid, next.Grid)
	}
	if gridChanged {
		next.Revision++
		next.Focus = clampFocus(next.Focus, grid.Dimensions(next.Grid))
	} else {
		next.Grid = s.Grid
	}

	focusChanged := !samePosition(s.Focus, next.Focus)
	return next, gridChanged || focusChanged
}

// clampFocus keeps focus inside the grid after a shrinking mutation.
func clampFocus(p *models.Position, d models.Dimensions) *models.Position {
	if p == nil || d.Contains(*p) {
		return p
	}
	return &models.Position{
		Row:    min(p.Row, d.RowCount-1),
		Column: min(p.Column, d.ColumnCount-1),
	}
}

func samePosition(a, b *models.Position) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Editor holds the authoritative snapshot of one table.
//
// Callers read a snapshot, derive an action from it and dispatch the action
// together with the snapshot's revision. A dispatch based on an outdated
// revision is rejected with ErrStaleSnapshot so that two actions derived
// from the same snapshot cannot both apply.
type Editor struct {
	mu    sync.Mutex
	state State
	log   *zap.Logger
}

// NewEditor returns an editor for g at revision 0.
func NewEditor(g models.Grid, opts Options) *Editor {
	if len(g.Rows) == 0 {
		g = grid.New(1, 1)
	}
	return &Editor{
		state: State{Grid: g},
		log:   opts.logger(),
	}
}

// Snapshot returns the current state.
func (e *Editor) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Dispatch applies a to the current state if revision is the current one.
// It returns the resulting state and whether anything changed. A done
// context aborts the dispatch before the state is touched.
func (e *Editor) Dispatch(ctx context.Context, revision uint64, a Action) (State, bool, error) {
	if err := ctx.Err(); err != nil {
		return State{}, false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if revision != e.state.Revision {
		return e.state, false, fmt.Errorf("%w: action %s based on revision %d, latest is %d",
			ErrStaleSnapshot, a.Kind, revision, e.state.Revision)
	}

	next, changed := Reduce(e.state, a)
	if !changed {
		e.log.Debug("Action had no effect",
			zap.String("action", string(a.Kind)),
			zap.Int("row", a.Position.Row),
			zap.Int("column", a.Position.Column))
		return e.state, false, nil
	}

	d := grid.Dimensions(next.Grid)
	e.log.Debug("Applied action",
		zap.String("action", string(a.Kind)),
		zap.Uint64("revision", next.Revision),
		zap.Int("rows", d.RowCount),
		zap.Int("columns", d.ColumnCount))
	e.state = next
	return next, true, nil
}
