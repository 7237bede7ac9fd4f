package sheet

import (
	"fmt"
	"strings"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range like $A$1:$D$10, A1:D10 or 'Sheet 1'!A1:D10.
// A single cell reference selects a 1x1 area. Reversed corners are ordered.
// The sheet name, if any, is returned alongside the area.
func ParseRange(ref string) (string, *models.Area, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid range: %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", nil, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", nil, err
	}

	return sheetName, &models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}
