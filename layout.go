package gopresentation

import "fmt"

// SlideMaster represents a slide master and the layouts it owns.
type SlideMaster struct {
	part    *Part
	pres    *Presentation
	shapes  *ShapeCollection
	layouts []*SlideLayout
}

func (p *Presentation) newSlideMaster(part *Part) (*SlideMaster, error) {
	sm := &SlideMaster{part: part, pres: p}
	shapes, err := p.loadShapeTree(part, sm)
	if err != nil {
		return nil, err
	}
	sm.shapes = shapes

	layoutParts, err := part.RelatedParts(relTypeSlideLayout)
	if err != nil {
		return nil, err
	}
	for _, lp := range layoutParts {
		l, err := p.layoutFor(lp)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide layout %s: %w", lp.Name(), err)
		}
		l.master = sm
		sm.layouts = append(sm.layouts, l)
	}
	return sm, nil
}

// GetPart returns the master part.
func (sm *SlideMaster) GetPart() *Part { return sm.part }

// GetName returns the master name (p:cSld@name).
func (sm *SlideMaster) GetName() string { return sm.pres.cSldName(sm.part) }

// GetShapes returns the master's shape collection.
func (sm *SlideMaster) GetShapes() *ShapeCollection { return sm.shapes }

// GetSlideLayouts returns the layouts related to the master.
func (sm *SlideMaster) GetSlideLayouts() []*SlideLayout { return sm.layouts }

// SlideLayout represents a slide layout.
type SlideLayout struct {
	part   *Part
	pres   *Presentation
	shapes *ShapeCollection
	master *SlideMaster
}

// GetPart returns the layout part.
func (l *SlideLayout) GetPart() *Part { return l.part }

// GetName returns the layout name (p:cSld@name), e.g. "Title and Content".
func (l *SlideLayout) GetName() string { return l.pres.cSldName(l.part) }

// GetShapes returns the layout's shape collection.
func (l *SlideLayout) GetShapes() *ShapeCollection { return l.shapes }

// GetPlaceholders returns the layout's placeholders in collection order.
func (l *SlideLayout) GetPlaceholders() []*PlaceholderShape {
	return l.shapes.Placeholders()
}

// GetSlideMaster returns the master the layout belongs to, or nil when the
// layout has no master relationship to a loaded master.
func (l *SlideLayout) GetSlideMaster() *SlideMaster {
	if l.master != nil {
		return l.master
	}
	part, err := l.part.RelatedPart(relTypeSlideMaster)
	if err != nil {
		return nil
	}
	for _, sm := range l.pres.masters {
		if sm.part == part {
			l.master = sm
			return sm
		}
	}
	return nil
}
