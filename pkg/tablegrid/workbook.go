package tablegrid

import (
	"errors"
	"fmt"
	"os"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/sheet"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// LoadSheet reads a worksheet of an xlsx file into a grid.
func LoadSheet(path string, opts Options) (models.Grid, error) {
	log := opts.logger()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return models.Grid{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Grid{}, NewOperationError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheetName := opts.SheetName
	var area *models.Area
	if opts.Range != "" {
		rangeSheet, a, err := sheet.ParseRange(opts.Range)
		if err != nil {
			return models.Grid{}, fmt.Errorf("invalid range %q: %w", opts.Range, err)
		}
		if rangeSheet != "" {
			sheetName = rangeSheet
		}
		area = a
	}
	if sheetName == "" {
		sheetList := f.GetSheetList()
		if len(sheetList) == 0 {
			return models.Grid{}, NewOperationError(path, "read", ErrSheetNotFound)
		}
		sheetName = sheetList[0]
	}

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return models.Grid{}, NewOperationError(sheetName, "read", ErrSheetNotFound)
	}

	if area == nil && !opts.ShouldCropToUsedRange() {
		area, err = sheet.Extent(f, sheetName)
		if err != nil {
			return models.Grid{}, NewOperationError(sheetName, "read", err)
		}
		if area == nil {
			return grid.New(1, 1), nil
		}
	}

	g, err := sheet.ReadGrid(f, sheetName, area)
	if err != nil {
		return models.Grid{}, NewOperationError(sheetName, "read", err)
	}

	d := grid.Dimensions(g)
	log.Debug("Loaded sheet",
		zap.String("path", path),
		zap.String("sheet", sheetName),
		zap.Int("rows", d.RowCount),
		zap.Int("columns", d.ColumnCount))
	return g, nil
}

// SaveSheet writes g to a worksheet of an xlsx file. An existing file keeps
// its other sheets; a new file gets the grid as its only sheet.
func SaveSheet(path string, g models.Grid, opts Options) error {
	log := opts.logger()
	sheetName := opts.WriteSheetName()

	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return NewOperationError(path, "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
		}
	} else {
		f = excelize.NewFile()
		if sheetName != DefaultSheetName {
			if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
				f.Close()
				return NewOperationError(sheetName, "write", err)
			}
		}
	}
	defer f.Close()

	if err := sheet.WriteGrid(f, sheetName, g); err != nil {
		return NewOperationError(sheetName, "write", err)
	}
	if err := f.SaveAs(path); err != nil {
		return NewOperationError(path, "save", err)
	}

	log.Debug("Saved sheet", zap.String("path", path), zap.String("sheet", sheetName))
	return nil
}
