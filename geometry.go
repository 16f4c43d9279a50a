package gopresentation

import "fmt"

// Geometry is a position and size in EMU.
type Geometry struct {
	OffsetX int64
	OffsetY int64
	Width   int64
	Height  int64
}

// GeometryOf returns the geometry a shape reports.
func GeometryOf(s Shape) Geometry {
	return Geometry{
		OffsetX: s.GetOffsetX(),
		OffsetY: s.GetOffsetY(),
		Width:   s.GetWidth(),
		Height:  s.GetHeight(),
	}
}

// GeometrySource supplies the default geometry used when a placeholder is
// promoted without explicit position or size.
type GeometrySource interface {
	PlaceholderGeometry(ph *PlaceholderShape) (Geometry, error)
}

// GeometrySourceFunc adapts a function to GeometrySource.
type GeometrySourceFunc func(ph *PlaceholderShape) (Geometry, error)

func (f GeometrySourceFunc) PlaceholderGeometry(ph *PlaceholderShape) (Geometry, error) {
	return f(ph)
}

var (
	// LayoutGeometry resolves geometry from the matching placeholder on the
	// slide's layout, or from the master placeholder that one inherits from
	// when the layout placeholder has no transform. It works whether or not
	// the slide placeholder has a transform of its own and is the default for
	// InsertTable.
	LayoutGeometry GeometrySource = GeometrySourceFunc(layoutGeometry)

	// ShapeGeometry uses the placeholder's own transform without consulting
	// the layout. A placeholder without one fails with ErrNoGeometry.
	ShapeGeometry GeometrySource = GeometrySourceFunc(shapeGeometry)

	// InheritedGeometry uses the placeholder's own transform when present and
	// otherwise follows BasePlaceholder until one is found.
	InheritedGeometry GeometrySource = GeometrySourceFunc(inheritedGeometry)
)

func layoutGeometry(ph *PlaceholderShape) (Geometry, error) {
	lp, err := ph.LayoutPlaceholder()
	if err != nil {
		return Geometry{}, err
	}
	return inheritedGeometry(lp)
}

func shapeGeometry(ph *PlaceholderShape) (Geometry, error) {
	if !ph.HasGeometry() {
		return Geometry{}, fmt.Errorf("%w: %q has no transform", ErrNoGeometry, ph.GetName())
	}
	return GeometryOf(ph), nil
}

// inheritedGeometry walks slide, layout and master placeholders, in that
// order, starting at ph.
func inheritedGeometry(ph *PlaceholderShape) (Geometry, error) {
	for cur := ph; ; {
		if cur.HasGeometry() {
			return GeometryOf(cur), nil
		}
		base, err := cur.BasePlaceholder()
		if err != nil {
			return Geometry{}, fmt.Errorf("%w: %q has no transform: %w", ErrNoGeometry, cur.GetName(), err)
		}
		cur = base
	}
}
