// Package clipboard imports tabular clipboard content into a grid.
//
// Spreadsheet programs put an HTML fragment (text/html) on the clipboard
// whose incidental markup differs between vendors but whose core is always a
// table > tr > td shape. Only that shape and the literal cell text are read;
// styles and merged-cell attributes are ignored.
package clipboard
