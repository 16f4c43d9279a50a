package gopresentation

import "errors"

var (
	// ErrMissingPlaceholderMetadata is returned when a shape has no <p:ph>
	// element under its non-visual properties.
	ErrMissingPlaceholderMetadata = errors.New("shape has no placeholder metadata")

	// ErrInvalidPlaceholderIndex is returned when a <p:ph> idx attribute is
	// not a non-negative integer.
	ErrInvalidPlaceholderIndex = errors.New("invalid placeholder idx")

	// ErrNotATablePlaceholder is returned by InsertTable on a placeholder that
	// is not of type "tbl", or that already holds a table.
	ErrNotATablePlaceholder = errors.New("cannot insert table in a non-table shape/placeholder")

	// ErrNoMatchingLayoutPlaceholder is returned when the slide layout has no
	// placeholder with the same idx.
	ErrNoMatchingLayoutPlaceholder = errors.New("no matching placeholder shape found in slide layout")

	// ErrPlaceholderNotFound is returned when a collection has no
	// placeholder with the requested idx.
	ErrPlaceholderNotFound = errors.New("placeholder not found")

	// ErrNoMatchingMasterPlaceholder is returned when a layout placeholder
	// has no master placeholder of the corresponding type to inherit from.
	ErrNoMatchingMasterPlaceholder = errors.New("no matching placeholder shape found in slide master")

	// ErrNoSlideLayout is returned when a placeholder is not on a slide (or,
	// for BasePlaceholder, a layout), or the slide has no layout
	// relationship.
	ErrNoSlideLayout = errors.New("no slide layout to inherit from")

	// ErrNoGeometry is returned when neither a placeholder nor anything it
	// inherits from carries a transform.
	ErrNoGeometry = errors.New("placeholder geometry cannot be resolved")

	// ErrStaleShape is returned when a shape no longer occupies the
	// collection slot it was obtained from.
	ErrStaleShape = errors.New("shape is no longer part of its collection")

	// ErrInvalidTableSize is returned when a table is requested with fewer
	// than one row or column.
	ErrInvalidTableSize = errors.New("table must have at least 1 row and 1 column")

	// ErrNotChild is returned by ElementStore.ReplaceChild when the element
	// to replace is not a child of the given parent.
	ErrNotChild = errors.New("element is not a child of parent")

	// ErrPartNotFound is returned when a part or relationship target is
	// missing from the package.
	ErrPartNotFound = errors.New("part not found")

	errOutOfRange = errors.New("index out of range")
)
