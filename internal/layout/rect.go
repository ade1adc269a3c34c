package layout

import "fmt"

// Rect is a rectangle in pixels. X and Y are relative to the parent
// container's top-left corner.
type Rect struct {
	X, Y, Width, Height int
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Size returns a Rect of the same dimensions at the origin.
func (r Rect) Size() Rect { return Rect{Width: r.Width, Height: r.Height} }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Margins are the outer insets of a grid.
type Margins struct {
	Left, Right, Top, Bottom int
}

// MarginsAll applies one inset to all four sides.
func MarginsAll(n int) Margins {
	return Margins{Left: n, Right: n, Top: n, Bottom: n}
}

// IsZero reports whether every inset is zero.
func (m Margins) IsZero() bool {
	return m.Left == 0 && m.Right == 0 && m.Top == 0 && m.Bottom == 0
}

func (m Margins) valid() bool {
	return m.Left >= 0 && m.Right >= 0 && m.Top >= 0 && m.Bottom >= 0
}

// Spacing is the gutter between adjacent cells.
type Spacing struct {
	Horizontal, Vertical int
}

// SpacingAll applies one gutter to both axes.
func SpacingAll(n int) Spacing {
	return Spacing{Horizontal: n, Vertical: n}
}

func (s Spacing) valid() bool {
	return s.Horizontal >= 0 && s.Vertical >= 0
}
