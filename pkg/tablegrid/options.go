// Package tablegrid provides the editing core of the table content module:
// a reducer over grid snapshots and helpers to exchange grids with Excel.
package tablegrid

import (
	"go.uber.org/zap"
)

// DefaultSheetName is the worksheet used when none is configured.
const DefaultSheetName = "Sheet1"

// Options configures sheet interchange and editor behavior.
type Options struct {
	// SheetName is the worksheet to read or write. Empty means the first
	// sheet on read and DefaultSheetName on write.
	SheetName string
	// Range restricts reads to an A1 range such as "B2:D10".
	// Empty means the used range of the sheet.
	Range string
	// Charset is the WHATWG label of pasted clipboard data. Empty means UTF-8.
	Charset string
	// CropToUsedRange controls whether reads without Range drop empty
	// leading rows and columns. If nil, defaults to true.
	CropToUsedRange *bool
	// Logger receives debug and warning output. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldCropToUsedRange returns whether reads crop to the used range.
func (o Options) ShouldCropToUsedRange() bool {
	if o.CropToUsedRange != nil {
		return *o.CropToUsedRange
	}
	return true
}

// WriteSheetName returns the worksheet name used on write.
func (o Options) WriteSheetName() string {
	if o.SheetName != "" {
		return o.SheetName
	}
	return DefaultSheetName
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
