package gopresentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// TableShape represents a p:graphicFrame holding an a:tbl.
type TableShape struct {
	BaseShape
}

func (t *TableShape) GetType() ShapeType { return ShapeTypeTable }

func (t *TableShape) tbl() *etree.Element {
	return t.store().Find(t.element, "./a:graphic/a:graphicData/a:tbl")
}

func (t *TableShape) rowElements() []*etree.Element {
	tbl := t.tbl()
	if tbl == nil {
		return nil
	}
	return t.store().FindAll(tbl, "./a:tr")
}

func (t *TableShape) gridCols() []*etree.Element {
	tbl := t.tbl()
	if tbl == nil {
		return nil
	}
	return t.store().FindAll(tbl, "./a:tblGrid/a:gridCol")
}

// GetNumRows returns the number of rows.
func (t *TableShape) GetNumRows() int { return len(t.rowElements()) }

// GetNumCols returns the number of grid columns.
func (t *TableShape) GetNumCols() int { return len(t.gridCols()) }

// GetColumnWidths returns the grid column widths in EMU.
func (t *TableShape) GetColumnWidths() []int64 {
	cols := t.gridCols()
	widths := make([]int64, len(cols))
	for i, c := range cols {
		widths[i] = attrInt64(t.store(), c, "w")
	}
	return widths
}

// GetRowHeights returns the row heights in EMU.
func (t *TableShape) GetRowHeights() []int64 {
	rows := t.rowElements()
	heights := make([]int64, len(rows))
	for i, r := range rows {
		heights[i] = attrInt64(t.store(), r, "h")
	}
	return heights
}

// GetCell returns a cell at the given row and column, or nil when out of
// range.
func (t *TableShape) GetCell(row, col int) *TableCell {
	rows := t.rowElements()
	if row < 0 || row >= len(rows) || col < 0 {
		return nil
	}
	cells := t.store().FindAll(rows[row], "./a:tc")
	if col >= len(cells) {
		return nil
	}
	return &TableCell{element: cells[col], store: t.store()}
}

// TableCell represents an a:tc element.
type TableCell struct {
	element *etree.Element
	store   ElementStore
}

// GetText returns the cell text, one line per paragraph.
func (tc *TableCell) GetText() string {
	var lines []string
	for _, p := range tc.store.FindAll(tc.element, "./a:txBody/a:p") {
		var sb strings.Builder
		for _, t := range tc.store.FindAll(p, ".//a:t") {
			sb.WriteString(t.Text())
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// SetText replaces the cell content with a single run of text.
func (tc *TableCell) SetText(text string) *TableCell {
	body := newCellTextBody()
	p := tc.store.Find(body, "./a:p")
	r := subElement(p, "a:r")
	subElement(r, "a:rPr", "lang", "en-US", "dirty", "0")
	subElement(r, "a:t").SetText(text)

	if old := tc.store.Find(tc.element, "./a:txBody"); old != nil {
		// old is a child of tc.element, so this cannot fail.
		_ = tc.store.ReplaceChild(tc.element, old, body)
	} else {
		tc.store.InsertChild(tc.element, 0, body)
	}
	return tc
}

// newTableFrame builds a detached p:graphicFrame holding a rows x cols table
// at the given position and size. Column widths and row heights split the
// extent evenly, the last column and row taking the remainder.
func newTableFrame(id int, name string, rows, cols int, x, y, cx, cy int64) (*etree.Element, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidTableSize, rows, cols)
	}

	frame := etree.NewElement("p:graphicFrame")

	nv := subElement(frame, "p:nvGraphicFramePr")
	cNvPr := subElement(nv, "p:cNvPr", "id", strconv.Itoa(id), "name", name)
	ext := subElement(subElement(cNvPr, "a:extLst"), "a:ext", "uri", extURICreationID)
	subElement(ext, "a16:creationId",
		"xmlns:a16", nsDrawing2014,
		"id", "{"+strings.ToUpper(uuid.NewString())+"}")
	subElement(subElement(nv, "p:cNvGraphicFramePr"), "a:graphicFrameLocks", "noGrp", "1")
	subElement(nv, "p:nvPr")

	xfrm := subElement(frame, "p:xfrm")
	subElement(xfrm, "a:off", "x", strconv.FormatInt(x, 10), "y", strconv.FormatInt(y, 10))
	subElement(xfrm, "a:ext", "cx", strconv.FormatInt(cx, 10), "cy", strconv.FormatInt(cy, 10))

	gd := subElement(subElement(frame, "a:graphic"), "a:graphicData", "uri", nsTable)
	tbl := subElement(gd, "a:tbl")
	tblPr := subElement(tbl, "a:tblPr", "firstRow", "1", "bandRow", "1")
	subElement(tblPr, "a:tableStyleId").SetText(tableStyleMedium2Accent1)

	grid := subElement(tbl, "a:tblGrid")
	for _, w := range splitExtent(cx, cols) {
		subElement(grid, "a:gridCol", "w", strconv.FormatInt(w, 10))
	}
	for _, h := range splitExtent(cy, rows) {
		tr := subElement(tbl, "a:tr", "h", strconv.FormatInt(h, 10))
		for c := 0; c < cols; c++ {
			tc := subElement(tr, "a:tc")
			tc.AddChild(newCellTextBody())
			subElement(tc, "a:tcPr")
		}
	}
	return frame, nil
}

// newCellTextBody returns an a:txBody with one empty paragraph, the minimum
// PowerPoint accepts inside a cell.
func newCellTextBody() *etree.Element {
	body := etree.NewElement("a:txBody")
	subElement(body, "a:bodyPr")
	subElement(body, "a:lstStyle")
	subElement(body, "a:p")
	return body
}

func splitExtent(total int64, n int) []int64 {
	parts := make([]int64, n)
	each := total / int64(n)
	for i := range parts {
		parts[i] = each
	}
	parts[n-1] = total - each*int64(n-1)
	return parts
}
