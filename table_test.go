package gopresentation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableFrameStructure(t *testing.T) {
	frame, err := newTableFrame(6, "Table 5", 2, 3, 100, 200, 300, 400)
	require.NoError(t, err)
	assert.Equal(t, "graphicFrame", frame.Tag)
	assert.Equal(t, []string{"nvGraphicFramePr", "xfrm", "graphic"}, childTags(frame))

	cNvPr := frame.FindElement("./p:nvGraphicFramePr/p:cNvPr")
	require.NotNil(t, cNvPr)
	assert.Equal(t, "6", cNvPr.SelectAttrValue("id", ""))
	assert.Equal(t, "Table 5", cNvPr.SelectAttrValue("name", ""))

	creationID := frame.FindElement("./p:nvGraphicFramePr/p:cNvPr/a:extLst/a:ext/a16:creationId")
	require.NotNil(t, creationID)
	assert.Regexp(t, regexp.MustCompile(`^\{[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}\}$`),
		creationID.SelectAttrValue("id", ""))

	locks := frame.FindElement("./p:nvGraphicFramePr/p:cNvGraphicFramePr/a:graphicFrameLocks")
	require.NotNil(t, locks)
	assert.Equal(t, "1", locks.SelectAttrValue("noGrp", ""))

	table := newShape(frame, nil)
	require.IsType(t, &TableShape{}, table)
	ts := table.(*TableShape)
	assert.Equal(t, Geometry{OffsetX: 100, OffsetY: 200, Width: 300, Height: 400}, GeometryOf(ts))
	assert.Equal(t, 2, ts.GetNumRows())
	assert.Equal(t, 3, ts.GetNumCols())
	assert.Equal(t, []int64{100, 100, 100}, ts.GetColumnWidths())
	assert.Equal(t, []int64{200, 200}, ts.GetRowHeights())

	style := frame.FindElement("./a:graphic/a:graphicData/a:tbl/a:tblPr/a:tableStyleId")
	require.NotNil(t, style)
	assert.Equal(t, tableStyleMedium2Accent1, style.Text())
}

func TestNewTableFrameUniqueCreationIDs(t *testing.T) {
	a, err := newTableFrame(2, "Table 1", 1, 1, 0, 0, 1, 1)
	require.NoError(t, err)
	b, err := newTableFrame(2, "Table 1", 1, 1, 0, 0, 1, 1)
	require.NoError(t, err)
	path := "./p:nvGraphicFramePr/p:cNvPr/a:extLst/a:ext/a16:creationId"
	assert.NotEqual(t,
		a.FindElement(path).SelectAttrValue("id", ""),
		b.FindElement(path).SelectAttrValue("id", ""))
}

func TestNewTableFrameInvalidSize(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := newTableFrame(2, "Table 1", tc.rows, tc.cols, 0, 0, 100, 100)
		assert.ErrorIs(t, err, ErrInvalidTableSize)
	}
}

func TestSplitExtent(t *testing.T) {
	tests := []struct {
		total int64
		n     int
		want  []int64
	}{
		{300, 3, []int64{100, 100, 100}},
		{10, 3, []int64{3, 3, 4}},
		{7, 1, []int64{7}},
		{2, 4, []int64{0, 0, 0, 2}},
	}
	for _, tt := range tests {
		got := splitExtent(tt.total, tt.n)
		assert.Equal(t, tt.want, got)
		var sum int64
		for _, v := range got {
			sum += v
		}
		assert.Equal(t, tt.total, sum)
	}
}

func TestTableCells(t *testing.T) {
	frame, err := newTableFrame(2, "Table 1", 2, 2, 0, 0, 200, 200)
	require.NoError(t, err)
	ts := newShape(frame, nil).(*TableShape)

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cell := ts.GetCell(r, c)
			require.NotNil(t, cell)
			assert.Equal(t, "", cell.GetText())
		}
	}
	assert.Nil(t, ts.GetCell(2, 0))
	assert.Nil(t, ts.GetCell(0, 2))
	assert.Nil(t, ts.GetCell(-1, 0))

	cell := ts.GetCell(1, 0).SetText("Revenue")
	assert.Equal(t, "Revenue", cell.GetText())
	assert.Equal(t, "Revenue", ts.GetCell(1, 0).GetText())
	ts.GetCell(1, 0).SetText("Cost")
	assert.Equal(t, "Cost", ts.GetCell(1, 0).GetText())

	tc := ts.GetCell(1, 0).element
	assert.Equal(t, []string{"txBody", "tcPr"}, childTags(tc))
}
