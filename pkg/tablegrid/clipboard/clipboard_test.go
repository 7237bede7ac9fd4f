package clipboard

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/grid"
	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
)

// excelFragment mimics the text/html flavour Microsoft Excel puts on the clipboard.
const excelFragment = `<html xmlns:o="urn:schemas-microsoft-com:office:office">
<head><meta http-equiv=Content-Type content="text/html; charset=utf-8">
<style>
.xl65 {mso-number-format:General;}
</style></head>
<body link="#0563C1" vlink="#954F72">
<table border=0 cellpadding=0 cellspacing=0 width=192 style='border-collapse: collapse;width:144pt'>
<!--StartFragment-->
 <col width=64 span=3 style='width:48pt'>
 <tr height=20 style='height:15.0pt'>
  <td height=20 class=xl65 width=64 style='height:15.0pt;width:48pt'>A</td>
  <td class=xl65 width=64 style='width:48pt'>B</td>
  <td class=xl65 width=64 style='width:48pt'>C</td>
 </tr>
 <tr height=20 style='height:15.0pt'>
  <td height=20 class=xl65 style='height:15.0pt'>D</td>
  <td class=xl65>E</td>
  <td class=xl65>F</td>
 </tr>
 <tr height=20 style='height:15.0pt'>
  <td height=20 class=xl65 style='height:15.0pt'>G</td>
  <td class=xl65>H</td>
  <td class=xl65>I</td>
 </tr>
<!--EndFragment-->
</table>
</body>
</html>`

// numbersFragment mimics the text/html flavour Apple Numbers puts on the clipboard.
const numbersFragment = `<meta charset="utf-8"><style type="text/css">
td.td1 {border-style: solid; padding: 4px}
p.p1 {margin: 0px; font: 10px 'Helvetica Neue'}
</style>
<table cellspacing="0" cellpadding="0" style="border-collapse: collapse">
<tbody>
<tr>
<td valign="top" class="td1"><p class="p1">A</p></td>
<td valign="top" class="td1"><p class="p1">B</p></td>
<td valign="top" class="td1"><p class="p1">C</p></td>
</tr>
<tr>
<td valign="top" class="td1"><p class="p1">D</p></td>
<td valign="top" class="td1"><p class="p1">E</p></td>
<td valign="top" class="td1"><p class="p1">F</p></td>
</tr>
<tr>
<td valign="top" class="td1"><p class="p1">G</p></td>
<td valign="top" class="td1"><p class="p1">H</p></td>
<td valign="top" class="td1"><p class="p1">I</p></td>
</tr>
</tbody>
</table>`

func textGrid(rows ...[]string) models.Grid {
	g := models.Grid{Rows: make([][]models.Cell, len(rows))}
	for r, row := range rows {
		g.Rows[r] = make([]models.Cell, len(row))
		for c, text := range row {
			g.Rows[r][c] = models.Cell{Text: text}
		}
	}
	return g
}

func sevenByTwo() models.Grid {
	return textGrid(
		[]string{"1a", "1b"},
		[]string{"2a", "2b"},
		[]string{"3a", "3b"},
		[]string{"4a", "4b"},
		[]string{"5a", "5b"},
		[]string{"6a", "6b"},
		[]string{"7a", "7b"},
	)
}

func TestImportAtSpreadsheetFragments(t *testing.T) {
	expected := textGrid(
		[]string{"A", "B", "C"},
		[]string{"D", "E", "F"},
		[]string{"G", "H", "I"},
		[]string{"4a", "4b", ""},
		[]string{"5a", "5b", ""},
		[]string{"6a", "6b", ""},
		[]string{"7a", "7b", ""},
	)

	for name, fragment := range map[string]string{"excel": excelFragment, "numbers": numbersFragment} {
		got, ok := ImportAt(sevenByTwo(), models.Position{}, fragment)
		if !ok {
			t.Errorf("%s: ImportAt returned no grid", name)
			continue
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("%s: ImportAt mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestImportAtPreservesSurroundingCells(t *testing.T) {
	g := textGrid(
		[]string{"a", "b", "c", "d"},
		[]string{"e", "f", "g", "h"},
		[]string{"i", "j", "k", "l"},
	)
	got, ok := ImportAt(g, models.Position{Row: 1, Column: 1}, "<table><tr><td>X</td><td>Y</td></tr></table>")
	if !ok {
		t.Fatal("ImportAt returned no grid")
	}

	expected := textGrid(
		[]string{"a", "b", "c", "d"},
		[]string{"e", "X", "Y", "h"},
		[]string{"i", "j", "k", "l"},
	)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ImportAt mismatch (-want +got):\n%s", diff)
	}
}

func TestImportAtExpandsGrid(t *testing.T) {
	g := textGrid([]string{"a", "b"}, []string{"c", "d"})
	got, ok := ImportAt(g, models.Position{Row: 1, Column: 1}, numbersFragment)
	if !ok {
		t.Fatal("ImportAt returned no grid")
	}

	expected := textGrid(
		[]string{"a", "b", "", ""},
		[]string{"c", "A", "B", "C"},
		[]string{"", "D", "E", "F"},
		[]string{"", "G", "H", "I"},
	)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ImportAt mismatch (-want +got):\n%s", diff)
	}
}

func TestImportAtNeverShrinks(t *testing.T) {
	grids := []models.Grid{
		{},
		textGrid([]string{"a"}),
		sevenByTwo(),
		textGrid([]string{"a"}, []string{"b", "c", "d", "e", "f"}),
	}
	positions := []models.Position{{}, {Row: 2, Column: 0}, {Row: 0, Column: 4}, {Row: 9, Column: 9}}

	for _, g := range grids {
		before := grid.Dimensions(g)
		for _, p := range positions {
			got, ok := ImportAt(g, p, "<table><tr><td>x</td></tr></table>")
			if !ok {
				t.Fatalf("ImportAt(%+v) returned no grid", p)
			}
			after := grid.Dimensions(got)
			if after.RowCount < before.RowCount || after.ColumnCount < before.ColumnCount {
				t.Errorf("ImportAt(%+v) shrank %+v to %+v", p, before, after)
			}
			for _, row := range got.Rows {
				if len(row) != after.ColumnCount {
					t.Errorf("ImportAt(%+v) produced ragged row of length %d", p, len(row))
				}
			}
		}
	}
}

func TestImportAtWithoutTable(t *testing.T) {
	fragments := []string{
		"<div>not a table</div>",
		"",
		"plain text",
		"<table></table>",
		"<table><tr></tr></table>",
	}
	for _, fragment := range fragments {
		if _, ok := ImportAt(sevenByTwo(), models.Position{}, fragment); ok {
			t.Errorf("ImportAt(%q) returned a grid, expected none", fragment)
		}
	}
}

func TestParseHTMLTable(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected [][]models.Cell
	}{
		{
			name:     "trims text and reads header cells",
			fragment: "<table><thead><tr><th> Name </th><th>Age</th></tr></thead><tbody><tr><td>\n Ada\n</td><td><b>36</b></td></tr></tbody></table>",
			expected: [][]models.Cell{{{Text: "Name"}, {Text: "Age"}}, {{Text: "Ada"}, {Text: "36"}}},
		},
		{
			name:     "first table only",
			fragment: "<table><tr><td>one</td></tr></table><table><tr><td>two</td></tr></table>",
			expected: [][]models.Cell{{{Text: "one"}}},
		},
		{
			name:     "merged cells are counted naively",
			fragment: `<table><tr><td colspan="2">wide</td></tr><tr><td>a</td><td>b</td></tr></table>`,
			expected: [][]models.Cell{{{Text: "wide"}}, {{Text: "a"}, {Text: "b"}}},
		},
		{
			name:     "nested table rows stay in their cell",
			fragment: "<table><tr><td><table><tr><td>inner</td></tr></table></td><td>x</td></tr></table>",
			expected: [][]models.Cell{{{Text: "inner"}, {Text: "x"}}},
		},
	}

	for _, tt := range tests {
		got, ok := ParseHTMLTable(tt.fragment)
		if !ok {
			t.Errorf("%s: ParseHTMLTable returned false", tt.name)
			continue
		}
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestMergeAtRaggedImport(t *testing.T) {
	g := textGrid([]string{"a", "b"}, []string{"c", "d"})
	matrix := [][]models.Cell{{{Text: "X"}, {Text: "Y"}}, {{Text: "Z"}}}

	got, ok := MergeAt(g, models.Position{}, matrix)
	if !ok {
		t.Fatal("MergeAt returned no grid")
	}
	expected := textGrid([]string{"X", "Y"}, []string{"Z", "d"})
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("MergeAt mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeAtRejectsEmptyMatrix(t *testing.T) {
	if _, ok := MergeAt(sevenByTwo(), models.Position{}, nil); ok {
		t.Error("MergeAt(nil) returned a grid")
	}
	if _, ok := MergeAt(sevenByTwo(), models.Position{}, [][]models.Cell{{}}); ok {
		t.Error("MergeAt([[]]) returned a grid")
	}
	if _, ok := MergeAt(sevenByTwo(), models.Position{Row: -1}, [][]models.Cell{{{Text: "x"}}}); ok {
		t.Error("MergeAt at negative row returned a grid")
	}
}

func TestImportTextAt(t *testing.T) {
	got, ok := ImportTextAt(textGrid([]string{"a"}), models.Position{Row: 0, Column: 1}, "A\tB\r\nC\tD\r\n")
	if !ok {
		t.Fatal("ImportTextAt returned no grid")
	}
	expected := textGrid([]string{"a", "A", "B"}, []string{"", "C", "D"})
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ImportTextAt mismatch (-want +got):\n%s", diff)
	}

	if _, ok := ImportTextAt(textGrid([]string{"a"}), models.Position{}, " \n"); ok {
		t.Error("ImportTextAt on blank text returned a grid")
	}
}

func TestRenderHTMLRoundTrip(t *testing.T) {
	g := textGrid([]string{"a & b", "<c>"}, []string{"d"})

	fragment, err := RenderHTML(g)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	got, ok := ImportAt(models.Grid{}, models.Position{}, fragment)
	if !ok {
		t.Fatalf("ImportAt could not read rendered table %q", fragment)
	}
	if !grid.Equal(g, got) {
		t.Errorf("round trip = %+v, expected %+v", got, g)
	}
}

func TestDecodeFragment(t *testing.T) {
	// "Größe" in windows-1252
	raw := []byte{'<', 't', 'd', '>', 'G', 'r', 0xf6, 0xdf, 'e', '<', '/', 't', 'd', '>'}

	got, err := DecodeFragment(bytes.NewReader(raw), "windows-1252")
	if err != nil {
		t.Fatalf("DecodeFragment failed: %v", err)
	}
	if got != "<td>Größe</td>" {
		t.Errorf("DecodeFragment = %q", got)
	}

	if _, err := DecodeFragment(bytes.NewReader(raw), "no-such-charset"); err == nil {
		t.Error("DecodeFragment accepted an unknown charset")
	}

	plain, err := DecodeFragment(bytes.NewReader([]byte("abc")), "")
	if err != nil || plain != "abc" {
		t.Errorf("DecodeFragment without label = %q, %v", plain, err)
	}
}

func TestParseTextQuotedCells(t *testing.T) {
	payload := "\"line1\nline2\"\tB\r\n" +
		"\"say \"\"hi\"\"\"\t5\" disk\r\n" +
		"\r\n" +
		"last\r\n"

	got, ok := ParseText(payload)
	if !ok {
		t.Fatal("ParseText returned false")
	}
	expected := [][]models.Cell{
		{{Text: "line1\nline2"}, {Text: "B"}},
		{{Text: `say "hi"`}, {Text: `5" disk`}},
		{{}},
		{{Text: "last"}},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ParseText mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTextMultiLineCellStaysInOneRow(t *testing.T) {
	got, ok := ParseText("\"line1\nline2\"\tB\r\n")
	if !ok {
		t.Fatal("ParseText returned false")
	}
	expected := [][]models.Cell{{{Text: "line1\nline2"}, {Text: "B"}}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ParseText mismatch (-want +got):\n%s", diff)
	}
}
