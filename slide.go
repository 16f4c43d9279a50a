package gopresentation

import (
	"fmt"
	"strings"
)

// Slide is a slide part and its shape collection.
type Slide struct {
	part   *Part
	pres   *Presentation
	shapes *ShapeCollection
	layout *SlideLayout
}

func (p *Presentation) newSlide(part *Part) (*Slide, error) {
	s := &Slide{part: part, pres: p}
	shapes, err := p.loadShapeTree(part, s)
	if err != nil {
		return nil, err
	}
	s.shapes = shapes
	return s, nil
}

// GetPart returns the slide part.
func (s *Slide) GetPart() *Part { return s.part }

// GetName returns the slide name (p:cSld@name), usually empty.
func (s *Slide) GetName() string { return s.pres.cSldName(s.part) }

// GetShapes returns the slide's shape collection.
func (s *Slide) GetShapes() *ShapeCollection { return s.shapes }

// GetPlaceholders returns the slide's placeholders in collection order.
func (s *Slide) GetPlaceholders() []*PlaceholderShape {
	return s.shapes.Placeholders()
}

// GetLayout returns the slide layout the slide inherits from.
func (s *Slide) GetLayout() (*SlideLayout, error) {
	if s.layout != nil {
		return s.layout, nil
	}
	part, err := s.part.RelatedPart(relTypeSlideLayout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSlideLayout, err)
	}
	layout, err := s.pres.layoutFor(part)
	if err != nil {
		return nil, err
	}
	s.layout = layout
	return layout, nil
}

// ExtractText returns the text of every auto shape and table on the slide,
// one shape per line, in collection order.
func (s *Slide) ExtractText() string {
	var lines []string
	add := func(text string) {
		if text != "" {
			lines = append(lines, text)
		}
	}
	for _, shape := range s.shapes.shapes {
		switch sh := shape.(type) {
		case *AutoShape:
			add(sh.GetText())
		case *TableShape:
			for r := 0; r < sh.GetNumRows(); r++ {
				for c := 0; c < sh.GetNumCols(); c++ {
					if cell := sh.GetCell(r, c); cell != nil {
						add(cell.GetText())
					}
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}
