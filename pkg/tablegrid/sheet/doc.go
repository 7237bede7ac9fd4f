// Package sheet moves grids in and out of Excel worksheets.
package sheet
