package gopresentation

import (
	"fmt"

	"github.com/beevik/etree"
)

// ShapeOwner is the object a top-level shape collection belongs to: a
// *Slide, *SlideLayout or *SlideMaster.
type ShapeOwner interface {
	GetPart() *Part
}

// ShapeCollection is the ordered set of shapes in a p:spTree or p:grpSp.
// Slot k always holds the shape for the k-th shape child element of the
// tree element; operations that change the tree keep both in step.
//
// A collection is not safe for concurrent use.
type ShapeCollection struct {
	tree   *etree.Element
	owner  ShapeOwner
	store  ElementStore
	shapes []Shape
}

// NewShapeCollection builds a collection over an existing p:spTree or
// p:grpSp element. A nil store selects DefaultElementStore.
func NewShapeCollection(tree *etree.Element, owner ShapeOwner, store ElementStore) *ShapeCollection {
	if store == nil {
		store = treeStore{}
	}
	return newShapeCollection(tree, owner, store)
}

func newShapeCollection(tree *etree.Element, owner ShapeOwner, store ElementStore) *ShapeCollection {
	c := &ShapeCollection{
		tree:   tree,
		owner:  owner,
		store:  store,
		shapes: make([]Shape, 0),
	}
	for _, e := range store.Children(tree) {
		if s := newShape(e, c); s != nil {
			c.shapes = append(c.shapes, s)
		}
	}
	return c
}

// Owner returns the slide, layout or master the collection belongs to.
func (c *ShapeCollection) Owner() ShapeOwner { return c.owner }

// Tree returns the tree element the collection mirrors.
func (c *ShapeCollection) Tree() *etree.Element { return c.tree }

// Store returns the element store used for every tree access.
func (c *ShapeCollection) Store() ElementStore { return c.store }

// Len returns the number of shapes.
func (c *ShapeCollection) Len() int { return len(c.shapes) }

// Get returns the shape in slot index.
func (c *ShapeCollection) Get(index int) (Shape, error) {
	if index < 0 || index >= len(c.shapes) {
		return nil, errOutOfRange
	}
	return c.shapes[index], nil
}

// GetShapes returns a copy of the shapes in order.
func (c *ShapeCollection) GetShapes() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// Index returns the slot holding s, or -1. A placeholder decoration is
// matched through the shape it decorates.
func (c *ShapeCollection) Index(s Shape) int {
	if u, ok := s.(interface{ Unwrap() Shape }); ok {
		s = u.Unwrap()
	}
	for i, shape := range c.shapes {
		if shape == s {
			return i
		}
	}
	return -1
}

// Placeholders returns a decoration for every shape carrying placeholder
// metadata, in collection order. Shapes with malformed metadata are skipped.
func (c *ShapeCollection) Placeholders() []*PlaceholderShape {
	var phs []*PlaceholderShape
	for i, s := range c.shapes {
		ph, err := decorate(s, i)
		if err != nil {
			continue
		}
		phs = append(phs, ph)
	}
	return phs
}

// Placeholder returns the first placeholder with the given idx.
func (c *ShapeCollection) Placeholder(idx int) (*PlaceholderShape, error) {
	for _, ph := range c.Placeholders() {
		if ph.GetPlaceholderIndex() == idx {
			return ph, nil
		}
	}
	return nil, fmt.Errorf("idx %d: %w", idx, ErrPlaceholderNotFound)
}

// AddTable appends a new rows x cols table frame at the given position and
// size, after every existing shape.
func (c *ShapeCollection) AddTable(rows, cols int, x, y, cx, cy int64) (*TableShape, error) {
	id := c.nextShapeID()
	frame, err := newTableFrame(id, fmt.Sprintf("Table %d", id-1), rows, cols, x, y, cx, cy)
	if err != nil {
		return nil, err
	}

	// Shapes go before a trailing p:extLst.
	children := c.store.Children(c.tree)
	index := len(children)
	if index > 0 && children[index-1].Tag == "extLst" {
		index--
	}
	c.store.InsertChild(c.tree, index, frame)

	table := newShape(frame, c).(*TableShape)
	c.shapes = append(c.shapes, table)
	return table, nil
}

// nextShapeID returns one more than the largest shape id used anywhere in
// the part holding the collection.
func (c *ShapeCollection) nextShapeID() int {
	root := c.tree
	for root.Parent() != nil {
		root = root.Parent()
	}
	maxID := 0
	for _, e := range c.store.FindAll(root, ".//p:cNvPr") {
		if id := int(attrInt64(c.store, e, "id")); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
