package gopresentation

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Shape is the interface that all shapes implement.
type Shape interface {
	GetType() ShapeType
	GetID() int
	GetName() string
	GetOffsetX() int64
	GetOffsetY() int64
	GetWidth() int64
	GetHeight() int64
	// Element returns the shape's backing element in its part's tree.
	Element() *etree.Element
	// Parent returns the collection holding the shape, or nil once detached.
	Parent() *ShapeCollection
	// base returns the underlying BaseShape (unexported, internal use only).
	base() *BaseShape
}

// ShapeType represents the type of shape.
type ShapeType int

const (
	ShapeTypeAutoShape ShapeType = iota
	ShapeTypePicture
	ShapeTypeConnector
	ShapeTypeGraphicFrame
	ShapeTypeTable
	ShapeTypeGroup
)

func (t ShapeType) String() string {
	switch t {
	case ShapeTypeAutoShape:
		return "autoshape"
	case ShapeTypePicture:
		return "picture"
	case ShapeTypeConnector:
		return "connector"
	case ShapeTypeGraphicFrame:
		return "graphicframe"
	case ShapeTypeTable:
		return "table"
	case ShapeTypeGroup:
		return "group"
	}
	return "unknown"
}

// xfrmLocation says where a shape kind keeps its transform: the container
// path relative to the shape element, the transform tag and the element
// index it takes inside the container when created.
type xfrmLocation struct {
	container string
	tag       string
	index     int
}

var (
	xfrmInSpPr    = xfrmLocation{container: "./p:spPr", tag: "a:xfrm", index: 0}
	xfrmInFrame   = xfrmLocation{container: ".", tag: "p:xfrm", index: 1}
	xfrmInGrpSpPr = xfrmLocation{container: "./p:grpSpPr", tag: "a:xfrm", index: 0}
)

func (l xfrmLocation) path() string { return l.container + "/" + l.tag }

// BaseShape contains the element-backed properties common to every shape.
type BaseShape struct {
	element *etree.Element
	parent  *ShapeCollection
	xfrm    xfrmLocation
}

func (b *BaseShape) Element() *etree.Element  { return b.element }
func (b *BaseShape) Parent() *ShapeCollection { return b.parent }
func (b *BaseShape) base() *BaseShape         { return b }

func (b *BaseShape) store() ElementStore {
	if b.parent != nil {
		return b.parent.store
	}
	return treeStore{}
}

// cNvPr returns the shape's common non-visual properties element.
func (b *BaseShape) cNvPr() *etree.Element {
	return b.store().Find(b.element, "./*[1]/p:cNvPr")
}

// GetID returns the shape id (cNvPr@id), or 0 if it is missing.
func (b *BaseShape) GetID() int {
	return int(attrInt64(b.store(), b.cNvPr(), "id"))
}

// GetName returns the shape name (cNvPr@name).
func (b *BaseShape) GetName() string {
	if c := b.cNvPr(); c != nil {
		return b.store().Attr(c, "name", "")
	}
	return ""
}

// GetDescription returns the alternative text (cNvPr@descr).
func (b *BaseShape) GetDescription() string {
	if c := b.cNvPr(); c != nil {
		return b.store().Attr(c, "descr", "")
	}
	return ""
}

func (b *BaseShape) xfrmChild(tag string) *etree.Element {
	return b.store().Find(b.element, b.xfrm.path()+"/"+tag)
}

// GetOffsetX returns the left edge in EMU, 0 when the shape has no transform.
func (b *BaseShape) GetOffsetX() int64 { return attrInt64(b.store(), b.xfrmChild("a:off"), "x") }

// GetOffsetY returns the top edge in EMU, 0 when the shape has no transform.
func (b *BaseShape) GetOffsetY() int64 { return attrInt64(b.store(), b.xfrmChild("a:off"), "y") }

// GetWidth returns the width in EMU, 0 when the shape has no transform.
func (b *BaseShape) GetWidth() int64 { return attrInt64(b.store(), b.xfrmChild("a:ext"), "cx") }

// GetHeight returns the height in EMU, 0 when the shape has no transform.
func (b *BaseShape) GetHeight() int64 { return attrInt64(b.store(), b.xfrmChild("a:ext"), "cy") }

// HasGeometry reports whether the shape carries its own offset and extent.
// Placeholders usually do not and inherit them from the layout.
func (b *BaseShape) HasGeometry() bool {
	return b.xfrmChild("a:off") != nil && b.xfrmChild("a:ext") != nil
}

// SetName sets the shape name.
func (b *BaseShape) SetName(n string) *BaseShape {
	if c := b.cNvPr(); c != nil {
		b.store().SetAttr(c, "name", n)
	}
	return b
}

// SetPosition sets both offset X and Y in EMU.
func (b *BaseShape) SetPosition(x, y int64) *BaseShape {
	off := b.ensureXfrmChild("a:off")
	if off != nil {
		b.store().SetAttr(off, "x", strconv.FormatInt(x, 10))
		b.store().SetAttr(off, "y", strconv.FormatInt(y, 10))
	}
	return b
}

// SetSize sets both width and height in EMU.
func (b *BaseShape) SetSize(w, h int64) *BaseShape {
	ext := b.ensureXfrmChild("a:ext")
	if ext != nil {
		b.store().SetAttr(ext, "cx", strconv.FormatInt(w, 10))
		b.store().SetAttr(ext, "cy", strconv.FormatInt(h, 10))
	}
	return b
}

func (b *BaseShape) SetOffsetX(x int64) *BaseShape { return b.SetPosition(x, b.GetOffsetY()) }
func (b *BaseShape) SetOffsetY(y int64) *BaseShape { return b.SetPosition(b.GetOffsetX(), y) }
func (b *BaseShape) SetWidth(w int64) *BaseShape   { return b.SetSize(w, b.GetHeight()) }
func (b *BaseShape) SetHeight(h int64) *BaseShape  { return b.SetSize(b.GetWidth(), h) }

// ensureXfrmChild returns the a:off or a:ext element of the transform,
// creating the transform and the child when missing. Returns nil only when
// the shape lacks the container (e.g. a sp without spPr).
func (b *BaseShape) ensureXfrmChild(tag string) *etree.Element {
	s := b.store()
	container := b.element
	if b.xfrm.container != "." {
		container = s.Find(b.element, b.xfrm.container)
	}
	if container == nil {
		return nil
	}
	xfrm := s.Find(container, "./"+b.xfrm.tag)
	if xfrm == nil {
		xfrm = etree.NewElement(b.xfrm.tag)
		s.InsertChild(container, b.xfrm.index, xfrm)
	}
	child := s.Find(xfrm, "./"+tag)
	if child == nil {
		child = etree.NewElement(tag)
		index := len(s.Children(xfrm))
		if tag == "a:off" {
			// a:off precedes a:ext in CT_Transform2D
			index = 0
		}
		s.InsertChild(xfrm, index, child)
	}
	return child
}

// AutoShape represents a p:sp element: text boxes, preset geometry and most
// placeholders.
type AutoShape struct {
	BaseShape
}

func (a *AutoShape) GetType() ShapeType { return ShapeTypeAutoShape }

// IsTextBox reports whether the shape is flagged as a text box.
func (a *AutoShape) IsTextBox() bool {
	e := a.store().Find(a.element, "./p:nvSpPr/p:cNvSpPr")
	return e != nil && a.store().Attr(e, "txBox", "0") == "1"
}

// GetText returns the shape's text, one line per paragraph.
func (a *AutoShape) GetText() string {
	s := a.store()
	var lines []string
	for _, p := range s.FindAll(a.element, "./p:txBody/a:p") {
		var sb strings.Builder
		for _, t := range s.FindAll(p, ".//a:t") {
			sb.WriteString(t.Text())
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// PictureShape represents a p:pic element.
type PictureShape struct {
	BaseShape
}

func (p *PictureShape) GetType() ShapeType { return ShapeTypePicture }

// GetImageRelID returns the relationship id of the embedded image.
func (p *PictureShape) GetImageRelID() string {
	blip := p.store().Find(p.element, "./p:blipFill/a:blip")
	if blip == nil {
		return ""
	}
	return p.store().Attr(blip, "r:embed", "")
}

// ConnectorShape represents a p:cxnSp element.
type ConnectorShape struct {
	BaseShape
}

func (c *ConnectorShape) GetType() ShapeType { return ShapeTypeConnector }

// GraphicFrame represents a p:graphicFrame that does not hold a table
// (charts, diagrams, OLE objects).
type GraphicFrame struct {
	BaseShape
}

func (g *GraphicFrame) GetType() ShapeType { return ShapeTypeGraphicFrame }

// GetGraphicDataURI returns the a:graphicData uri identifying the content.
func (g *GraphicFrame) GetGraphicDataURI() string {
	return graphicDataURI(g.store(), g.element)
}

func graphicDataURI(s ElementStore, frame *etree.Element) string {
	gd := s.Find(frame, "./a:graphic/a:graphicData")
	if gd == nil {
		return ""
	}
	return s.Attr(gd, "uri", "")
}

// newShape wraps a shape element in the matching variant. It returns nil for
// elements that are not shapes (nvGrpSpPr, grpSpPr, extLst, ...).
func newShape(e *etree.Element, parent *ShapeCollection) Shape {
	b := BaseShape{element: e, parent: parent, xfrm: xfrmInSpPr}
	switch e.Tag {
	case "sp":
		return &AutoShape{BaseShape: b}
	case "pic":
		return &PictureShape{BaseShape: b}
	case "cxnSp":
		return &ConnectorShape{BaseShape: b}
	case "grpSp":
		b.xfrm = xfrmInGrpSpPr
		return &GroupShape{BaseShape: b}
	case "graphicFrame":
		b.xfrm = xfrmInFrame
		if graphicDataURI(b.store(), e) == nsTable {
			return &TableShape{BaseShape: b}
		}
		return &GraphicFrame{BaseShape: b}
	}
	return nil
}
