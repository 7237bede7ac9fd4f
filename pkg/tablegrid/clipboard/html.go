package clipboard

import (
	"strings"

	"github.com/lotta-schule/tablegrid-go/pkg/tablegrid/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTMLTable extracts the cell matrix of the first <table> in fragment.
// It returns false when the fragment holds no table, or the table has no
// rows or no cells.
func ParseHTMLTable(fragment string) ([][]models.Cell, bool) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, false
	}

	table := findFirst(doc, atom.Table)
	if table == nil {
		return nil, false
	}

	var matrix [][]models.Cell
	columns := 0
	for _, tr := range tableRows(table) {
		var row []models.Cell
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
				row = append(row, models.Cell{Text: strings.TrimSpace(textContent(c))})
			}
		}
		columns = max(columns, len(row))
		matrix = append(matrix, row)
	}

	if len(matrix) == 0 || columns == 0 {
		return nil, false
	}
	return matrix, true
}

// findFirst returns the first element with the given atom in document order.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// tableRows returns the rows owned by table: its direct <tr> children and
// those of its thead/tbody/tfoot sections. Rows of nested tables are skipped.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			rows = append(rows, c)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for r := c.FirstChild; r != nil; r = r.NextSibling {
				if r.Type == html.ElementNode && r.DataAtom == atom.Tr {
					rows = append(rows, r)
				}
			}
		}
	}
	return rows
}

// textContent concatenates the text of all descendant text nodes.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return sb.String()
}

// RenderHTML renders g as an HTML table that ParseHTMLTable reads back
// cell for cell.
func RenderHTML(g models.Grid) (string, error) {
	table := &html.Node{Type: html.ElementNode, Data: "table", DataAtom: atom.Table}
	tbody := &html.Node{Type: html.ElementNode, Data: "tbody", DataAtom: atom.Tbody}
	table.AppendChild(tbody)

	columns := 1
	for _, row := range g.Rows {
		columns = max(columns, len(row))
	}
	rows := g.Rows
	if len(rows) == 0 {
		rows = [][]models.Cell{nil}
	}

	for _, row := range rows {
		tr := &html.Node{Type: html.ElementNode, Data: "tr", DataAtom: atom.Tr}
		for c := range columns {
			td := &html.Node{Type: html.ElementNode, Data: "td", DataAtom: atom.Td}
			if c < len(row) && row[c].Text != "" {
				td.AppendChild(&html.Node{Type: html.TextNode, Data: row[c].Text})
			}
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}

	var sb strings.Builder
	if err := html.Render(&sb, table); err != nil {
		return "", err
	}
	return sb.String(), nil
}
