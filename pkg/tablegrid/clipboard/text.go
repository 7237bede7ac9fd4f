package clipboard

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"golang.org/x/text/encoding/htmlindex"
)

// ParseText splits a text/plain clipboard payload into a cell matrix.
// Rows are separated by LF or CRLF and columns by tabs, the layout
// spreadsheets use for their plain text flavour. Cells holding a line break,
// tab or quote arrive quoted with "" escapes and stay one cell. Blank lines
// are rows of one empty cell; one trailing line break is ignored. Cell text is
// trimmed like HTML cell text.
func ParseText(text string) ([][]models.Cell, bool) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var matrix [][]models.Cell
	lastLine := 0 // last line consumed so far (1-based)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, false
		}

		// The reader skips empty lines; put them back as empty rows.
		startLine, _ := r.FieldPos(0)
		for ; lastLine < startLine-1; lastLine++ {
			matrix = append(matrix, []models.Cell{{}})
		}

		row := make([]models.Cell, len(record))
		for c, field := range record {
			row[c] = models.Cell{Text: strings.TrimSpace(field)}
		}
		matrix = append(matrix, row)

		last := len(record) - 1
		fieldLine, _ := r.FieldPos(last)
		lastLine = fieldLine + strings.Count(record[last], "\n")
	}

	totalLines := strings.Count(text, "\n") + 1
	for ; lastLine < totalLines; lastLine++ {
		matrix = append(matrix, []models.Cell{{}})
	}
	return matrix, true
}

// ImportTextAt merges a tab separated text payload into g at p.
func ImportTextAt(g models.Grid, p models.Position, text string) (models.Grid, bool) {
	matrix, ok := ParseText(text)
	if !ok {
		return models.Grid{}, false
	}
	return MergeAt(g, p, matrix)
}

// DecodeFragment reads a clipboard payload encoded in the named charset
// (a WHATWG label such as "windows-1252" or "utf-16le") and returns it as
// UTF-8. An empty label means the payload already is UTF-8.
func DecodeFragment(r io.Reader, label string) (string, error) {
	if label != "" {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return "", err
		}
		r = enc.NewDecoder().Reader(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
