package gopresentation

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// XML namespace constants
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsTable          = "http://schemas.openxmlformats.org/drawingml/2006/table"
	nsDrawing2014    = "http://schemas.microsoft.com/office/drawing/2014/main"

	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"

	// extURICreationID is the a:ext uri PowerPoint uses for a16:creationId.
	extURICreationID = "{FF2B5EF4-FFF2-40B4-BE49-F238E27FC236}"
	// tableStyleMedium2Accent1 is PowerPoint's default table style.
	tableStyleMedium2Accent1 = "{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"
)

// ElementStore is the set of lookups and edits the shape layer performs on a
// part's XML tree. Paths use etree path syntax with literal prefixes, e.g.
// "./*[1]/p:nvPr/p:ph".
type ElementStore interface {
	// Children returns the child elements of e, in document order.
	Children(e *etree.Element) []*etree.Element
	// Find returns the first element matching path relative to e, or nil.
	Find(e *etree.Element, path string) *etree.Element
	// FindAll returns every element matching path relative to e.
	FindAll(e *etree.Element, path string) []*etree.Element
	// Attr returns the value of attribute key on e, or def when absent.
	Attr(e *etree.Element, key, def string) string
	// SetAttr creates or overwrites attribute key on e.
	SetAttr(e *etree.Element, key, value string)
	// InsertChild inserts child before the index-th child element of
	// parent. An index past the last element appends.
	InsertChild(parent *etree.Element, index int, child *etree.Element)
	// ReplaceChild swaps old for repl at the same position under parent.
	ReplaceChild(parent, old, repl *etree.Element) error
}

// treeStore is the ElementStore backed directly by etree.
type treeStore struct{}

func (treeStore) Children(e *etree.Element) []*etree.Element {
	return e.ChildElements()
}

func (treeStore) Find(e *etree.Element, path string) *etree.Element {
	return e.FindElement(path)
}

func (treeStore) FindAll(e *etree.Element, path string) []*etree.Element {
	return e.FindElements(path)
}

func (treeStore) Attr(e *etree.Element, key, def string) string {
	return e.SelectAttrValue(key, def)
}

func (treeStore) SetAttr(e *etree.Element, key, value string) {
	e.CreateAttr(key, value)
}

func (treeStore) InsertChild(parent *etree.Element, index int, child *etree.Element) {
	// etree indexes all tokens (whitespace included), so map the element
	// index onto a token index first.
	pos := len(parent.Child)
	n := 0
	for i, tok := range parent.Child {
		if _, ok := tok.(*etree.Element); !ok {
			continue
		}
		if n == index {
			pos = i
			break
		}
		n++
	}
	parent.InsertChildAt(pos, child)
}

func (treeStore) ReplaceChild(parent, old, repl *etree.Element) error {
	if old == nil || old.Parent() != parent {
		return ErrNotChild
	}
	i := old.Index()
	parent.RemoveChildAt(i)
	parent.InsertChildAt(i, repl)
	return nil
}

// DefaultElementStore returns the etree-backed store used when a collection
// is built without an explicit one.
func DefaultElementStore() ElementStore { return treeStore{} }

// subElement appends a new child element with the given prefixed tag and
// key/value attribute pairs.
func subElement(parent *etree.Element, tag string, attrs ...string) *etree.Element {
	e := parent.CreateElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		e.CreateAttr(attrs[i], attrs[i+1])
	}
	return e
}

func parseXML(name string, data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("failed to parse %s: no root element", name)
	}
	return doc, nil
}

// attrInt64 reads an integer attribute, returning 0 when absent or malformed.
func attrInt64(store ElementStore, e *etree.Element, key string) int64 {
	if e == nil {
		return 0
	}
	v, err := strconv.ParseInt(store.Attr(e, key, "0"), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
