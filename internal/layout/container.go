// Package layout partitions rectangular regions into grids of cells and
// renders nested content into them.
//
// A Grid resolves its column widths and row heights against the size of the
// container it is rendered into, creates one child container per cell and
// renders each cell's content there. Cells holding an Indirect reference can
// later be rebound, which redraws only that cell.
package layout

// Container is a node of the host's element tree. The engine only creates,
// attaches and replaces children, reads geometry and sets background fill.
type Container interface {
	ID() string
	// NewChild creates a detached, absolutely positioned child at r.
	NewChild(id string, r Rect) Container
	// Append attaches child as the last child, detaching it from any
	// previous parent.
	Append(child Container)
	// Replace swaps old for child in place.
	Replace(child, old Container) error
	// Clear removes all children.
	Clear()
	// Bounds returns the position relative to the parent and the size.
	Bounds() Rect
	Fill() string
	SetFill(color string)
}

// Renderable is anything that can draw itself into a container.
type Renderable interface {
	Render(c Container) error
}

// Mounted is implemented by renderables that remember the container they
// were rendered into. A non-nil Mounted container is reused instead of
// rendering again.
type Mounted interface {
	Mounted() Container
}

// RenderFunc adapts a function to Renderable.
type RenderFunc func(c Container) error

// Render calls f(c).
func (f RenderFunc) Render(c Container) error { return f(c) }

// mountedContainer returns r's live container, if any.
func mountedContainer(r Renderable) Container {
	if m, ok := r.(Mounted); ok {
		return m.Mounted()
	}
	return nil
}

// SetFill sets c's background to color, or to fallback when color is empty.
func SetFill(c Container, color, fallback string) {
	if color != "" {
		c.SetFill(color)
		return
	}
	c.SetFill(fallback)
}

// RenderViewport clears the viewport and renders root into it.
func RenderViewport(viewport Container, root Renderable) error {
	viewport.Clear()
	return root.Render(viewport)
}
