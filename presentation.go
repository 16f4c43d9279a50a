// Package gopresentation reads and edits PowerPoint presentation files
// (.pptx) through their underlying PresentationML XML.
//
// Shapes are thin views over elements of a part's XML tree. A shape that
// carries placeholder metadata can be decorated with NewPlaceholderShape,
// and a table placeholder can be promoted to a real table with
// PlaceholderShape.InsertTable, which keeps the part's tree and the slide's
// shape collection in step.
//
// A Presentation and everything reachable from it assume a single writer;
// none of the types are safe for concurrent mutation.
//
// See the Version variable for the current library version.
package gopresentation

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Presentation represents an open PowerPoint package.
type Presentation struct {
	pkg     *Package
	part    *Part
	store   ElementStore
	slides  []*Slide
	masters []*SlideMaster
	layouts map[string]*SlideLayout
}

// openPresentation locates ppt/presentation.xml through the package
// relationships and loads the slide and master lists.
func openPresentation(pkg *Package, store ElementStore) (*Presentation, error) {
	root := &Part{name: "", pkg: pkg}
	part, err := root.RelatedPart(relTypeOfficeDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to locate presentation part: %w", err)
	}
	doc, err := part.Document()
	if err != nil {
		return nil, err
	}

	p := &Presentation{
		pkg:     pkg,
		part:    part,
		store:   store,
		slides:  make([]*Slide, 0),
		masters: make([]*SlideMaster, 0),
		layouts: make(map[string]*SlideLayout),
	}

	for _, id := range store.FindAll(doc.Root(), "./p:sldMasterIdLst/p:sldMasterId") {
		mp, err := part.RelatedPartByID(store.Attr(id, "r:id", ""))
		if err != nil {
			return nil, fmt.Errorf("failed to read slide master: %w", err)
		}
		sm, err := p.newSlideMaster(mp)
		if err != nil {
			return nil, err
		}
		p.masters = append(p.masters, sm)
	}

	for _, id := range store.FindAll(doc.Root(), "./p:sldIdLst/p:sldId") {
		sp, err := part.RelatedPartByID(store.Attr(id, "r:id", ""))
		if err != nil {
			return nil, fmt.Errorf("failed to read slide: %w", err)
		}
		slide, err := p.newSlide(sp)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %s: %w", sp.Name(), err)
		}
		p.slides = append(p.slides, slide)
	}

	return p, nil
}

// GetPart returns the ppt/presentation.xml part.
func (p *Presentation) GetPart() *Part { return p.part }

// GetPackage returns the underlying package.
func (p *Presentation) GetPackage() *Package { return p.pkg }

// GetSlideSize returns the slide width and height in EMU (p:sldSz).
func (p *Presentation) GetSlideSize() (cx, cy int64) {
	doc, err := p.part.Document()
	if err != nil {
		return 0, 0
	}
	sz := p.store.Find(doc.Root(), "./p:sldSz")
	return attrInt64(p.store, sz, "cx"), attrInt64(p.store, sz, "cy")
}

// GetSlide returns a slide by index.
func (p *Presentation) GetSlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.slides) {
		return nil, errors.New("slide index out of range")
	}
	return p.slides[index], nil
}

// GetAllSlides returns all slides.
func (p *Presentation) GetAllSlides() []*Slide {
	return p.slides
}

// GetSlideCount returns the number of slides.
func (p *Presentation) GetSlideCount() int {
	return len(p.slides)
}

// GetSlideMasters returns all slide masters.
func (p *Presentation) GetSlideMasters() []*SlideMaster {
	return p.masters
}

// GetSlideLayouts returns all slide layouts from all slide masters.
func (p *Presentation) GetSlideLayouts() []*SlideLayout {
	var layouts []*SlideLayout
	for _, sm := range p.masters {
		layouts = append(layouts, sm.layouts...)
	}
	return layouts
}

// GetLayoutByName returns a SlideLayout by name. Names are compared in
// Unicode NFC, so "Título" matches whether the accent is precomposed or not.
// Returns an error if no layout with the given name is found.
func (p *Presentation) GetLayoutByName(name string) (*SlideLayout, error) {
	want := norm.NFC.String(name)
	for _, layout := range p.GetSlideLayouts() {
		if norm.NFC.String(layout.GetName()) == want {
			return layout, nil
		}
	}
	return nil, fmt.Errorf("layout %q not found", name)
}

// layoutFor returns the shared SlideLayout for a layout part, loading it on
// first use so slides and masters see the same shape collection.
func (p *Presentation) layoutFor(part *Part) (*SlideLayout, error) {
	if l, ok := p.layouts[part.Name()]; ok {
		return l, nil
	}
	shapes, err := p.loadShapeTree(part, nil)
	if err != nil {
		return nil, err
	}
	l := &SlideLayout{part: part, pres: p}
	shapes.owner = l
	l.shapes = shapes
	p.layouts[part.Name()] = l
	return l, nil
}

// loadShapeTree parses a slide-like part and builds the collection over its
// p:cSld/p:spTree.
func (p *Presentation) loadShapeTree(part *Part, owner ShapeOwner) (*ShapeCollection, error) {
	doc, err := part.Document()
	if err != nil {
		return nil, err
	}
	tree := p.store.Find(doc.Root(), "./p:cSld/p:spTree")
	if tree == nil {
		return nil, fmt.Errorf("%s has no p:cSld/p:spTree", part.Name())
	}
	return newShapeCollection(tree, owner, p.store), nil
}

// cSldName returns p:cSld@name of a slide-like part.
func (p *Presentation) cSldName(part *Part) string {
	doc, err := part.Document()
	if err != nil {
		return ""
	}
	cSld := p.store.Find(doc.Root(), "./p:cSld")
	if cSld == nil {
		return ""
	}
	return p.store.Attr(cSld, "name", "")
}

// Close drops the package and every slide, layout and master built over it.
func (p *Presentation) Close() error {
	p.pkg, p.part = nil, nil
	p.slides, p.masters, p.layouts = nil, nil, nil
	return nil
}

// ExtractText returns the text of every slide, slides separated by a
// newline. Slides without text are skipped.
func (p *Presentation) ExtractText() string {
	texts := make([]string, 0, len(p.slides))
	for _, slide := range p.slides {
		if text := slide.ExtractText(); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n")
}
