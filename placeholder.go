package gopresentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// placeholderPath locates <p:ph> from a shape element: the first child is
// the shape's non-visual properties (nvSpPr, nvPicPr, nvGraphicFramePr, ...).
const placeholderPath = "./*[1]/p:nvPr/p:ph"

// PlaceholderType represents the type of placeholder (ST_PlaceholderType).
type PlaceholderType string

const (
	PlaceholderObject   PlaceholderType = "obj"
	PlaceholderTitle    PlaceholderType = "title"
	PlaceholderBody     PlaceholderType = "body"
	PlaceholderCtrTitle PlaceholderType = "ctrTitle"
	PlaceholderSubTitle PlaceholderType = "subTitle"
	PlaceholderDate     PlaceholderType = "dt"
	PlaceholderFooter   PlaceholderType = "ftr"
	PlaceholderSlideNum PlaceholderType = "sldNum"
	PlaceholderHeader   PlaceholderType = "hdr"
	PlaceholderChart    PlaceholderType = "chart"
	PlaceholderTable    PlaceholderType = "tbl"
	PlaceholderClipArt  PlaceholderType = "clipArt"
	PlaceholderDiagram  PlaceholderType = "dgm"
	PlaceholderMedia    PlaceholderType = "media"
	PlaceholderSlideImg PlaceholderType = "sldImg"
	PlaceholderPicture  PlaceholderType = "pic"
)

// PlaceholderOrientation represents the placeholder orient attribute.
type PlaceholderOrientation string

const (
	PlaceholderHorizontal PlaceholderOrientation = "horz"
	PlaceholderVertical   PlaceholderOrientation = "vert"
)

// PlaceholderSize represents the placeholder sz attribute.
type PlaceholderSize string

const (
	PlaceholderSizeFull    PlaceholderSize = "full"
	PlaceholderSizeHalf    PlaceholderSize = "half"
	PlaceholderSizeQuarter PlaceholderSize = "quarter"
)

// Placeholder is the set of placeholder accessors read from <p:ph>.
type Placeholder interface {
	GetPlaceholderType() PlaceholderType
	GetPlaceholderIndex() int
	GetOrientation() PlaceholderOrientation
	GetPlaceholderSize() PlaceholderSize
	IsTableShape() bool
}

// PlaceholderShape decorates a shape that carries <p:ph> with placeholder
// accessors. It reads the same element as the decorated shape and forwards
// every Shape method to it.
type PlaceholderShape struct {
	shape Shape
	ph    *etree.Element
	// slot is the position of shape in its collection, -1 once the
	// decoration is stale.
	slot int
}

var (
	_ Shape       = (*PlaceholderShape)(nil)
	_ Placeholder = (*PlaceholderShape)(nil)
)

// NewPlaceholderShape decorates shape. It fails with
// ErrMissingPlaceholderMetadata when the shape has no <p:ph>.
func NewPlaceholderShape(shape Shape) (*PlaceholderShape, error) {
	if ph, ok := shape.(*PlaceholderShape); ok {
		shape = ph.shape
	}
	slot := -1
	if c := shape.Parent(); c != nil {
		slot = c.Index(shape)
	}
	return decorate(shape, slot)
}

func decorate(shape Shape, slot int) (*PlaceholderShape, error) {
	s := shape.base().store()
	ph := s.Find(shape.Element(), placeholderPath)
	if ph == nil {
		return nil, fmt.Errorf("shape %q: %w", shape.GetName(), ErrMissingPlaceholderMetadata)
	}
	if v := strings.TrimSpace(s.Attr(ph, "idx", "")); v != "" {
		if _, err := strconv.ParseUint(v, 10, 32); err != nil {
			return nil, fmt.Errorf("shape %q: %w %q", shape.GetName(), ErrInvalidPlaceholderIndex, v)
		}
	}
	return &PlaceholderShape{shape: shape, ph: ph, slot: slot}, nil
}

// Unwrap returns the decorated shape.
func (p *PlaceholderShape) Unwrap() Shape { return p.shape }

func (p *PlaceholderShape) attr(key, def string) string {
	return p.shape.base().store().Attr(p.ph, key, def)
}

// GetPlaceholderType returns the placeholder type, "obj" when unset.
func (p *PlaceholderShape) GetPlaceholderType() PlaceholderType {
	return PlaceholderType(p.attr("type", string(PlaceholderObject)))
}

// GetOrientation returns the placeholder orientation, "horz" when unset.
func (p *PlaceholderShape) GetOrientation() PlaceholderOrientation {
	return PlaceholderOrientation(p.attr("orient", string(PlaceholderHorizontal)))
}

// GetPlaceholderSize returns the placeholder size class, "full" when unset.
func (p *PlaceholderShape) GetPlaceholderSize() PlaceholderSize {
	return PlaceholderSize(p.attr("sz", string(PlaceholderSizeFull)))
}

// GetPlaceholderIndex returns the placeholder idx, 0 when unset. Surrounding
// whitespace is ignored as for any xsd:unsignedInt.
func (p *PlaceholderShape) GetPlaceholderIndex() int {
	v, err := strconv.ParseUint(strings.TrimSpace(p.attr("idx", "0")), 10, 32)
	if err != nil {
		return 0
	}
	return int(v)
}

// IsTableShape reports whether this is a placeholder of type "tbl".
func (p *PlaceholderShape) IsTableShape() bool {
	return p.GetPlaceholderType() == PlaceholderTable
}

func (p *PlaceholderShape) GetType() ShapeType       { return p.shape.GetType() }
func (p *PlaceholderShape) GetID() int               { return p.shape.GetID() }
func (p *PlaceholderShape) GetName() string          { return p.shape.GetName() }
func (p *PlaceholderShape) GetOffsetX() int64        { return p.shape.GetOffsetX() }
func (p *PlaceholderShape) GetOffsetY() int64        { return p.shape.GetOffsetY() }
func (p *PlaceholderShape) GetWidth() int64          { return p.shape.GetWidth() }
func (p *PlaceholderShape) GetHeight() int64         { return p.shape.GetHeight() }
func (p *PlaceholderShape) Element() *etree.Element  { return p.shape.Element() }
func (p *PlaceholderShape) Parent() *ShapeCollection { return p.shape.Parent() }
func (p *PlaceholderShape) base() *BaseShape         { return p.shape.base() }

// HasGeometry reports whether the decorated shape carries its own transform.
func (p *PlaceholderShape) HasGeometry() bool { return p.shape.base().HasGeometry() }

// LayoutPlaceholder returns the slide layout placeholder this placeholder
// inherits from: the first layout placeholder with the same idx.
func (p *PlaceholderShape) LayoutPlaceholder() (*PlaceholderShape, error) {
	c := p.Parent()
	if c == nil {
		return nil, ErrStaleShape
	}
	slide, ok := c.Owner().(*Slide)
	if !ok {
		return nil, ErrNoSlideLayout
	}
	layout, err := slide.GetLayout()
	if err != nil {
		return nil, err
	}
	idx := p.GetPlaceholderIndex()
	for _, ph := range layout.GetShapes().Placeholders() {
		if ph.GetPlaceholderIndex() == idx {
			return ph, nil
		}
	}
	return nil, fmt.Errorf("%w: idx %d in %s", ErrNoMatchingLayoutPlaceholder, idx, layout.GetPart().Name())
}

// BasePlaceholder returns the placeholder this one inherits from: the layout
// placeholder with the same idx for a slide placeholder, or the master
// placeholder of the corresponding type for a layout placeholder.
func (p *PlaceholderShape) BasePlaceholder() (*PlaceholderShape, error) {
	c := p.Parent()
	if c == nil {
		return nil, ErrStaleShape
	}
	switch owner := c.Owner().(type) {
	case *Slide:
		return p.LayoutPlaceholder()
	case *SlideLayout:
		return p.masterPlaceholder(owner)
	}
	return nil, ErrNoSlideLayout
}

func (p *PlaceholderShape) masterPlaceholder(layout *SlideLayout) (*PlaceholderShape, error) {
	master := layout.GetSlideMaster()
	if master == nil {
		return nil, fmt.Errorf("%w: %s has no slide master", ErrNoMatchingMasterPlaceholder, layout.GetPart().Name())
	}
	want := masterPlaceholderType(p.GetPlaceholderType())
	for _, ph := range master.GetShapes().Placeholders() {
		if ph.GetPlaceholderType() == want {
			return ph, nil
		}
	}
	return nil, fmt.Errorf("%w: type %s in %s", ErrNoMatchingMasterPlaceholder, want, master.GetPart().Name())
}

// masterPlaceholderType maps a layout placeholder type to the type of the
// master placeholder it inherits from. Masters carry title, body and the
// footer-area placeholders only.
func masterPlaceholderType(t PlaceholderType) PlaceholderType {
	switch t {
	case PlaceholderTitle, PlaceholderCtrTitle:
		return PlaceholderTitle
	case PlaceholderDate, PlaceholderFooter, PlaceholderSlideNum, PlaceholderHeader:
		return t
	}
	return PlaceholderBody
}
