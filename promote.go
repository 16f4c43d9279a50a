package gopresentation

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// TableOption adjusts how InsertTable places the new table.
type TableOption func(*tableConfig)

type tableConfig struct {
	x, y, cx, cy *int64
	source       GeometrySource
}

// WithTableLeft sets the left edge in EMU.
func WithTableLeft(x int64) TableOption { return func(c *tableConfig) { c.x = &x } }

// WithTableTop sets the top edge in EMU.
func WithTableTop(y int64) TableOption { return func(c *tableConfig) { c.y = &y } }

// WithTableWidth sets the width in EMU.
func WithTableWidth(cx int64) TableOption { return func(c *tableConfig) { c.cx = &cx } }

// WithTableHeight sets the height in EMU.
func WithTableHeight(cy int64) TableOption { return func(c *tableConfig) { c.cy = &cy } }

// WithTablePosition sets both edges in EMU.
func WithTablePosition(x, y int64) TableOption {
	return func(c *tableConfig) { c.x, c.y = &x, &y }
}

// WithTableSize sets width and height in EMU.
func WithTableSize(cx, cy int64) TableOption {
	return func(c *tableConfig) { c.cx, c.cy = &cx, &cy }
}

// WithGeometrySource selects where unspecified dimensions come from.
// The default is LayoutGeometry.
func WithGeometrySource(src GeometrySource) TableOption {
	return func(c *tableConfig) { c.source = src }
}

// resolve fills every dimension not given explicitly from the geometry
// source. The source is not consulted when all four are given.
func (c *tableConfig) resolve(ph *PlaceholderShape) (Geometry, error) {
	if c.x != nil && c.y != nil && c.cx != nil && c.cy != nil {
		return Geometry{OffsetX: *c.x, OffsetY: *c.y, Width: *c.cx, Height: *c.cy}, nil
	}
	g, err := c.source.PlaceholderGeometry(ph)
	if err != nil {
		return Geometry{}, err
	}
	if c.x != nil {
		g.OffsetX = *c.x
	}
	if c.y != nil {
		g.OffsetY = *c.y
	}
	if c.cx != nil {
		g.Width = *c.cx
	}
	if c.cy != nil {
		g.Height = *c.cy
	}
	return g, nil
}

// InsertTable replaces this table placeholder with a rows x cols table at
// the same position in the shape tree and in the collection, and returns the
// new table. The new frame keeps the placeholder's idx with type "tbl" and
// its cNvPr id; only the name is derived from it ("Table <id-1>").
//
// Unspecified geometry is taken from the slide layout placeholder with the
// same idx, or from the master when the layout inherits it (see
// WithGeometrySource). Geometry that cannot be resolved fails with
// ErrNoGeometry rather than producing an empty table.
//
// After a successful call the receiver is stale and only the returned table
// represents the slot.
//
// On error neither the tree nor the collection has been modified.
func (p *PlaceholderShape) InsertTable(rows, cols int, opts ...TableOption) (*TableShape, error) {
	if !p.IsTableShape() {
		return nil, fmt.Errorf("%w: placeholder type %q", ErrNotATablePlaceholder, p.GetPlaceholderType())
	}
	if _, ok := p.shape.(*TableShape); ok {
		return nil, fmt.Errorf("%w: placeholder already holds a table", ErrNotATablePlaceholder)
	}

	shapes := p.Parent()
	if shapes == nil || p.slot < 0 || p.slot >= len(shapes.shapes) || shapes.shapes[p.slot] != p.shape {
		return nil, ErrStaleShape
	}

	cfg := tableConfig{source: LayoutGeometry}
	for _, opt := range opts {
		opt(&cfg)
	}
	g, err := cfg.resolve(p)
	if err != nil {
		return nil, err
	}

	id := p.GetID()
	shapeIdx := id - 1
	name := fmt.Sprintf("Table %d", shapeIdx)
	frame, err := newTableFrame(id, name, rows, cols, g.OffsetX, g.OffsetY, g.Width, g.Height)
	if err != nil {
		return nil, err
	}

	// The frame is still detached, so tagging it here has no visible effect
	// if a later step fails.
	store := shapes.store
	nvPr := store.Find(frame, "./p:nvGraphicFramePr/p:nvPr")
	ph := etree.NewElement("p:ph")
	store.SetAttr(ph, "type", string(PlaceholderTable))
	store.SetAttr(ph, "idx", strconv.Itoa(p.GetPlaceholderIndex()))
	store.InsertChild(nvPr, 0, ph)

	table := newShape(frame, shapes).(*TableShape)

	// Tree and collection are updated last, back to back.
	if err := store.ReplaceChild(shapes.tree, p.Element(), frame); err != nil {
		return nil, fmt.Errorf("replace placeholder element: %w", err)
	}
	shapes.shapes[p.slot] = table

	p.shape.base().parent = nil
	p.slot = -1
	return table, nil
}
