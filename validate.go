package gopresentation

import (
	"fmt"
	"strings"
)

// Validate checks the presentation for structural issues and returns an error
// describing all problems found, or nil if the presentation is valid.
func (p *Presentation) Validate() error {
	var errs []string

	if p.pkg == nil || p.part == nil {
		return fmt.Errorf("validation failed:\n  presentation is closed")
	}
	if cx, cy := p.GetSlideSize(); cx <= 0 || cy <= 0 {
		errs = append(errs, "slide size must be positive")
	}

	for i, slide := range p.slides {
		prefix := fmt.Sprintf("slide %d", i+1)
		for _, e := range validateCollection(slide.shapes) {
			errs = append(errs, prefix+": "+e)
		}
		for _, e := range validatePlaceholders(slide.shapes) {
			errs = append(errs, prefix+": "+e)
		}
	}
	for _, l := range p.GetSlideLayouts() {
		prefix := "layout " + l.part.Name()
		for _, e := range validateCollection(l.shapes) {
			errs = append(errs, prefix+": "+e)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// validateCollection checks that slot k holds the k-th shape element of the
// tree, and the per-kind invariants of each shape.
func validateCollection(c *ShapeCollection) []string {
	var errs []string

	var elems []Shape
	for _, e := range c.store.Children(c.tree) {
		if s := newShape(e, c); s != nil {
			elems = append(elems, s)
		}
	}
	if len(elems) != len(c.shapes) {
		errs = append(errs, fmt.Sprintf("collection has %d shapes but tree has %d", len(c.shapes), len(elems)))
	}

	for j, shape := range c.shapes {
		prefix := fmt.Sprintf("shape %d", j+1)
		if shape == nil {
			errs = append(errs, prefix+": shape is nil")
			continue
		}
		if j < len(elems) && elems[j].Element() != shape.Element() {
			errs = append(errs, prefix+": collection slot does not match tree order")
		}
		if shape.Parent() != c {
			errs = append(errs, prefix+": shape parent is not its collection")
		}
		if shape.GetWidth() < 0 {
			errs = append(errs, prefix+": width is negative")
		}
		if shape.GetHeight() < 0 {
			errs = append(errs, prefix+": height is negative")
		}

		switch sh := shape.(type) {
		case *TableShape:
			rows, cols := sh.GetNumRows(), sh.GetNumCols()
			if rows <= 0 || cols <= 0 {
				errs = append(errs, prefix+": table must have at least 1 row and 1 column")
			}
			for r, tr := range sh.rowElements() {
				if n := len(c.store.FindAll(tr, "./a:tc")); n != cols {
					errs = append(errs, fmt.Sprintf("%s: table row %d has %d cells, grid has %d columns", prefix, r+1, n, cols))
				}
			}
		case *GroupShape:
			for _, e := range validateCollection(sh.GetShapes()) {
				errs = append(errs, prefix+": "+e)
			}
		}
	}
	return errs
}

// validatePlaceholders reports placeholders sharing an idx, which breaks
// layout inheritance lookups.
func validatePlaceholders(c *ShapeCollection) []string {
	var errs []string
	seen := make(map[int]string)
	for _, ph := range c.Placeholders() {
		idx := ph.GetPlaceholderIndex()
		if other, ok := seen[idx]; ok {
			errs = append(errs, fmt.Sprintf("placeholders %q and %q share idx %d", other, ph.GetName(), idx))
			continue
		}
		seen[idx] = ph.GetName()
	}
	return errs
}
