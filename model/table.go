package model

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind tells which reconstruction path produced a fragment
type Kind int

const (
	KindBordered Kind = iota
	KindBorderless
)

func (k Kind) String() string {
	switch k {
	case KindBordered:
		return "bordered"
	case KindBorderless:
		return "borderless"
	default:
		return "unknown"
	}
}

// Fragment is one page region's reconstructed grid. It is not yet known
// whether it is a whole logical table or a piece of one.
type Fragment struct {
	Page  int // 1-indexed page number
	Index int // position among the page's fragments
	Kind  Kind
	BBox  BBox

	// Rows holds the grid. When HasHeader is set, Rows[0] is the header row.
	Rows [][]string

	HasHeader bool
	Header    []string

	// Titles are caption lines found above the fragment, top to bottom
	Titles []string
}

// RowCount returns the number of rows
func (f *Fragment) RowCount() int {
	return len(f.Rows)
}

// ColCount returns the number of columns in the widest row
func (f *Fragment) ColCount() int {
	cols := 0
	for _, row := range f.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// DataRows returns the rows that follow the header, or all rows when the
// fragment has no header
func (f *Fragment) DataRows() [][]string {
	if f.HasHeader && len(f.Rows) > 0 {
		return f.Rows[1:]
	}
	return f.Rows
}

// LogicalTable is the result of stitching one or more fragments.
type LogicalTable struct {
	Kind      Kind
	StartPage int
	EndPage   int

	Titles []string

	HasHeader bool
	Header    []string

	// Rows are the data rows in the order fragments were consumed
	Rows [][]string

	// Fragments counts the fragments merged into this table
	Fragments int
}

// NewLogicalTable starts a table from a single fragment
func NewLogicalTable(f *Fragment) *LogicalTable {
	t := &LogicalTable{
		Kind:      f.Kind,
		StartPage: f.Page,
		EndPage:   f.Page,
		Titles:    append([]string(nil), f.Titles...),
		HasHeader: f.HasHeader,
		Fragments: 1,
	}
	if f.HasHeader {
		t.Header = copyRow(f.Header)
	}
	for _, row := range f.DataRows() {
		t.Rows = append(t.Rows, copyRow(row))
	}
	return t
}

// Append adds rows verbatim and records the page they came from
func (t *LogicalTable) Append(page int, rows [][]string) {
	for _, row := range rows {
		t.Rows = append(t.Rows, copyRow(row))
	}
	if page > t.EndPage {
		t.EndPage = page
	}
	t.Fragments++
}

// RowCount returns the number of rows including the header row
func (t *LogicalTable) RowCount() int {
	if t.HasHeader {
		return len(t.Rows) + 1
	}
	return len(t.Rows)
}

// ColCount returns the number of columns
func (t *LogicalTable) ColCount() int {
	cols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// ColumnNames returns the header row, or Column1..ColumnN when the table
// has no header.
func (t *LogicalTable) ColumnNames() []string {
	if t.HasHeader {
		return copyRow(t.Header)
	}
	names := make([]string, t.ColCount())
	for i := range names {
		names[i] = fmt.Sprintf("Column%d", i+1)
	}
	return names
}

// Grid returns the ordered output grid: title rows (borderless tables only,
// first column populated), then the header row if present, then data rows.
// Every row is padded to the table width.
func (t *LogicalTable) Grid() [][]string {
	cols := t.ColCount()
	var grid [][]string
	if t.Kind == KindBorderless {
		for _, title := range t.Titles {
			row := make([]string, cols)
			if cols > 0 {
				row[0] = title
			}
			grid = append(grid, row)
		}
	}
	if t.HasHeader {
		grid = append(grid, padRow(t.Header, cols))
	}
	for _, row := range t.Rows {
		grid = append(grid, padRow(row, cols))
	}
	return grid
}

// ToCSV converts the table to CSV. Tables without a header start with the
// synthetic column names.
func (t *LogicalTable) ToCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if !t.HasHeader {
		if err := w.Write(t.ColumnNames()); err != nil {
			return "", err
		}
	}
	if err := w.WriteAll(t.Grid()); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return buf.String(), nil
}

// ToMarkdown converts the table to a markdown pipe table with columns padded
// to their display width
func (t *LogicalTable) ToMarkdown() string {
	cols := t.ColCount()
	if cols == 0 {
		return ""
	}

	head := t.ColumnNames()
	var body [][]string
	if t.Kind == KindBorderless {
		for _, title := range t.Titles {
			row := make([]string, cols)
			row[0] = title
			body = append(body, row)
		}
	}
	for _, row := range t.Rows {
		body = append(body, padRow(row, cols))
	}

	widths := make([]int, cols)
	for i := range widths {
		widths[i] = 3
	}
	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(markdownCell(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(head)
	for _, row := range body {
		measure(row)
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(runewidth.FillRight(markdownCell(cell), widths[i]))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	writeRow(padRow(head, cols))
	for _, w := range widths {
		sb.WriteString("|")
		sb.WriteString(strings.Repeat("-", w+2))
	}
	sb.WriteString("|\n")
	for _, row := range body {
		writeRow(row)
	}
	return sb.String()
}

// ToHTML renders the table as an HTML <table>. Titles become the caption.
func (t *LogicalTable) ToHTML() (string, error) {
	table := element(atom.Table)
	if len(t.Titles) > 0 {
		caption := element(atom.Caption)
		caption.AppendChild(&html.Node{Type: html.TextNode, Data: strings.Join(t.Titles, " ")})
		table.AppendChild(caption)
	}

	cols := t.ColCount()
	thead := element(atom.Thead)
	thead.AppendChild(htmlRow(t.ColumnNames(), cols, atom.Th))
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range t.Rows {
		tbody.AppendChild(htmlRow(row, cols, atom.Td))
	}
	table.AppendChild(tbody)

	var sb strings.Builder
	if err := html.Render(&sb, table); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return sb.String(), nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func htmlRow(row []string, cols int, cellAtom atom.Atom) *html.Node {
	tr := element(atom.Tr)
	for _, cell := range padRow(row, cols) {
		td := element(cellAtom)
		if cell != "" {
			td.AppendChild(&html.Node{Type: html.TextNode, Data: cell})
		}
		tr.AppendChild(td)
	}
	return tr
}

func markdownCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func padRow(row []string, cols int) []string {
	out := make([]string, cols)
	copy(out, row)
	return out
}

func copyRow(row []string) []string {
	if row == nil {
		return nil
	}
	return append([]string(nil), row...)
}
