package layout

import "fmt"

// Scene stacks an optional overlay over a main tree. Both cover the whole
// target container; the overlay is attached last so it draws on top.
type Scene struct {
	Main    Renderable
	Overlay Renderable
}

// Render creates the "main" region, and the "overlay" region when an overlay
// is set, each the full size of c.
func (s *Scene) Render(c Container) error {
	full := c.Bounds().Size()

	main := c.NewChild("main", full)
	c.Append(main)
	if s.Main != nil {
		if err := s.Main.Render(main); err != nil {
			return fmt.Errorf("scene main: %w", err)
		}
	}

	if s.Overlay == nil {
		return nil
	}
	overlay := c.NewChild("overlay", full)
	c.Append(overlay)
	if err := s.Overlay.Render(overlay); err != nil {
		return fmt.Errorf("scene overlay: %w", err)
	}
	return nil
}
