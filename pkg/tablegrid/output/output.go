// Package output serializes grids to the persisted content-module formats.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/navigation"
	"gopkg.in/yaml.v3"
)

// Format names a serialization format.
type Format string

const (
	// FormatJSON is the content-module JSON document {"rows": [[{"text": ...}]]}.
	FormatJSON Format = "json"
	// FormatYAML is the same document as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. Matching is case-insensitive and
// "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format: %s (must be json or yaml)", s)
}

// ToJSON serializes a grid to JSON.
func ToJSON(g models.Grid, pretty bool) ([]byte, error) {
	return marshalJSON(normalizeNil(g), pretty)
}

// ToYAML serializes a grid to YAML.
func ToYAML(g models.Grid) ([]byte, error) {
	return yaml.Marshal(normalizeNil(g))
}

// MoveToJSON serializes a navigation move to JSON.
func MoveToJSON(m navigation.Move, pretty bool) ([]byte, error) {
	return marshalJSON(m, pretty)
}

// Encode serializes v in the given format. Used for grids, moves and
// dimensions alike.
func Encode(v any, format Format, pretty bool) ([]byte, error) {
	if g, ok := v.(models.Grid); ok {
		v = normalizeNil(g)
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatJSON, "":
		return marshalJSON(v, pretty)
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

// Decode parses a grid document. Documents without rows decode to a 1x1
// empty grid.
func Decode(data []byte, format Format) (models.Grid, error) {
	var g models.Grid
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &g)
	case FormatJSON, "":
		if len(strings.TrimSpace(string(data))) == 0 {
			break
		}
		err = json.Unmarshal(data, &g)
	default:
		return models.Grid{}, fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return models.Grid{}, err
	}
	if len(g.Rows) == 0 {
		return grid.New(1, 1), nil
	}
	return g, nil
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// normalizeNil replaces nil rows with empty slices so JSON output carries
// [] instead of null.
func normalizeNil(g models.Grid) models.Grid {
	if len(g.Rows) == 0 {
		return grid.New(1, 1)
	}
	next := models.Grid{Rows: make([][]models.Cell, len(g.Rows))}
	for i, row := range g.Rows {
		if row == nil {
			row = []models.Cell{}
		}
		next.Rows[i] = row
	}
	return next
}
