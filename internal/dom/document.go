package dom

import "github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"

// ViewportID is the id of a document's root element.
const ViewportID = "viewport"

// Document owns a root viewport element.
type Document struct {
	root *Element
}

// NewDocument creates a document whose viewport is width×height cells.
func NewDocument(width, height int) *Document {
	return &Document{root: New(ViewportID, layout.Rect{Width: width, Height: height})}
}

// Root returns the viewport element.
func (d *Document) Root() *Element { return d.root }

// Render clears the viewport and renders root into it.
func (d *Document) Render(root layout.Renderable) error {
	return layout.RenderViewport(d.root, root)
}

// Find returns the element with the given id, or nil.
func (d *Document) Find(id string) *Element { return d.root.Find(id) }

// Click dispatches a click at (x, y) and reports whether a handler ran.
func (d *Document) Click(x, y int) bool {
	target := d.root.ClickTarget(x, y)
	if target == nil {
		return false
	}
	return target.Click()
}
