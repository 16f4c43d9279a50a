package gopresentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTableAppends(t *testing.T) {
	c := newTestCollection(t, testSlideBody)
	before := c.Len()

	table, err := c.AddTable(2, 2, 10, 20, 1000, 500)
	require.NoError(t, err)
	assert.Equal(t, before+1, c.Len())
	assert.Same(t, table, c.shapes[before])
	assert.Equal(t, 5, table.GetID())
	assert.Equal(t, "Table 4", table.GetName())
	assert.Same(t, c, table.Parent())

	children := c.Tree().ChildElements()
	assert.Same(t, table.Element(), children[len(children)-1])
	assert.Empty(t, validateCollection(c))
}

func TestAddTableBeforeExtLst(t *testing.T) {
	c := newTestCollection(t, textSp(2, "A", "a")+`      <p:extLst><p:ext uri="{X}"/></p:extLst>
`)
	table, err := c.AddTable(1, 1, 0, 0, 100, 100)
	require.NoError(t, err)

	children := c.Tree().ChildElements()
	require.GreaterOrEqual(t, len(children), 2)
	assert.Same(t, table.Element(), children[len(children)-2])
	assert.Equal(t, "extLst", children[len(children)-1].Tag)
}

func TestAddTableInvalidSize(t *testing.T) {
	c := newTestCollection(t, testSlideBody)
	xml := treeString(t, c)

	_, err := c.AddTable(0, 3, 0, 0, 100, 100)
	assert.ErrorIs(t, err, ErrInvalidTableSize)
	assert.Equal(t, xml, treeString(t, c))
	assert.Equal(t, 3, c.Len())
}

func TestNextShapeIDSpansPart(t *testing.T) {
	c := newTestCollection(t, textSp(2, "A", "a")+groupXML)
	grp := c.shapes[1].(*GroupShape)
	assert.Equal(t, 13, grp.GetShapes().nextShapeID())
	assert.Equal(t, 13, c.nextShapeID())
}

func TestGetShapesReturnsCopy(t *testing.T) {
	c := newTestCollection(t, testSlideBody)
	shapes := c.GetShapes()
	shapes[0] = nil
	assert.NotNil(t, c.shapes[0])
}
