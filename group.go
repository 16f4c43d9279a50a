package gopresentation

// GroupShape represents a p:grpSp element. Its members form a nested
// collection that mirrors the group's own child elements.
type GroupShape struct {
	BaseShape
	shapes *ShapeCollection
}

func (g *GroupShape) GetType() ShapeType { return ShapeTypeGroup }

// GetShapes returns the shapes in the group.
func (g *GroupShape) GetShapes() *ShapeCollection {
	if g.shapes == nil {
		var owner ShapeOwner
		store := ElementStore(treeStore{})
		if g.parent != nil {
			owner = g.parent.owner
			store = g.parent.store
		}
		g.shapes = newShapeCollection(g.element, owner, store)
	}
	return g.shapes
}

// GetShapeCount returns the number of shapes in the group.
func (g *GroupShape) GetShapeCount() int {
	return g.GetShapes().Len()
}
