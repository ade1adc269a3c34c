package layout

import "fmt"

// Indirect is a rebindable placeholder occupying one grid slot. The grid
// that holds it becomes its owner at construction; Update rebinds the
// content and asks the owner to redraw that one cell.
type Indirect struct {
	key     string
	owner   *Grid
	content Renderable
}

// NewIndirect returns an unbound reference with no content.
func NewIndirect(key string) *Indirect {
	return &Indirect{key: key}
}

// Key returns the name given at creation.
func (ind *Indirect) Key() string { return ind.key }

// Content returns the currently bound content, or nil.
func (ind *Indirect) Content() Renderable { return ind.content }

// Owner returns the grid holding this reference, or nil.
func (ind *Indirect) Owner() *Grid { return ind.owner }

// Update binds content (nil clears it) and redraws the owning slot.
// The reference must already belong to a grid.
func (ind *Indirect) Update(content Renderable) error {
	if ind.owner == nil {
		return fmt.Errorf("%w: %q", ErrUnbound, ind.key)
	}
	ind.content = content
	return ind.owner.Update(ind)
}

func (ind *Indirect) bind(owner *Grid) error {
	if ind.owner != nil && ind.owner != owner {
		return fmt.Errorf("%w: %q", ErrAlreadyBound, ind.key)
	}
	ind.owner = owner
	return nil
}
