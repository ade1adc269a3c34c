// Package dom is an in-memory element tree that hosts layout containers.
//
// Elements are absolutely positioned relative to their parent and carry a
// background fill, an optional text run, class names, a visibility flag and
// a click handler. Units are terminal cells.
package dom

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// ErrNotChild is returned by Replace when old is not a child of the element.
var ErrNotChild = errors.New("dom: not a child of this element")

// Element is one node of the tree.
type Element struct {
	id       string
	rect     layout.Rect
	fill     string
	text     Text
	classes  []string
	hidden   bool
	onClick  func()
	parent   *Element
	children []*Element
}

// New creates a detached element. An empty id is replaced by a random one.
func New(id string, r layout.Rect) *Element {
	return &Element{id: uid(id), rect: r}
}

func uid(id string) string {
	if id != "" {
		return id
	}
	return "id-" + uuid.NewString()
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// NewChild creates a detached element at r. It is attached with Append or
// Replace.
func (e *Element) NewChild(id string, r layout.Rect) layout.Container {
	return New(id, r)
}

// Append attaches child last, moving it from its previous parent.
func (e *Element) Append(child layout.Container) {
	c := mustElement(child)
	c.detach()
	c.parent = e
	e.children = append(e.children, c)
}

// Replace puts child where old was. child is moved from its previous parent.
func (e *Element) Replace(child, old layout.Container) error {
	c, o := mustElement(child), mustElement(old)
	if c == o {
		return nil
	}
	if o.parent != e {
		return fmt.Errorf("%w: %s in %s", ErrNotChild, o.id, e.id)
	}
	c.detach()
	i := slices.Index(e.children, o)
	e.children[i] = c
	c.parent = e
	o.parent = nil
	return nil
}

// Clear removes all children.
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	if i := slices.Index(p.children, e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
}

// Bounds returns the element's rectangle relative to its parent.
func (e *Element) Bounds() layout.Rect { return e.rect }

// SetBounds moves and resizes the element.
func (e *Element) SetBounds(r layout.Rect) { e.rect = r }

// Fill returns the background colour; empty means transparent.
func (e *Element) Fill() string { return e.fill }

// SetFill sets the background colour.
func (e *Element) SetFill(color string) { e.fill = color }

// Text returns the element's text run.
func (e *Element) Text() Text { return e.text }

// SetText replaces the element's text run.
func (e *Element) SetText(t Text) { e.text = t }

// Class returns the space-separated class names.
func (e *Element) Class() string { return strings.Join(e.classes, " ") }

// SetClass replaces the class names with the space-separated list cls.
func (e *Element) SetClass(cls string) { e.classes = strings.Fields(cls) }

// HasClass reports whether name is one of the element's classes.
func (e *Element) HasClass(name string) bool { return slices.Contains(e.classes, name) }

// Visible reports whether the element is shown.
func (e *Element) Visible() bool { return !e.hidden }

// SetVisible shows or hides the element and its subtree.
func (e *Element) SetVisible(v bool) { e.hidden = !v }

// OnClick sets the click handler; nil removes it.
func (e *Element) OnClick(fn func()) { e.onClick = fn }

// Clickable reports whether a click handler is set.
func (e *Element) Clickable() bool { return e.onClick != nil }

// Click invokes the handler and reports whether there was one.
func (e *Element) Click() bool {
	if e.onClick == nil {
		return false
	}
	e.onClick()
	return true
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements in paint order.
func (e *Element) Children() []*Element { return e.children }

// Absolute returns the element's rectangle in root coordinates.
func (e *Element) Absolute() layout.Rect {
	r := e.rect
	for p := e.parent; p != nil; p = p.parent {
		r.X += p.rect.X
		r.Y += p.rect.Y
	}
	return r
}

// Find returns the element with the given id in e's subtree, or nil.
func (e *Element) Find(id string) *Element {
	if e.id == id {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits e and its visible descendants in paint order.
func (e *Element) Walk(fn func(el *Element, abs layout.Rect)) {
	e.walk(0, 0, fn)
}

func (e *Element) walk(ox, oy int, fn func(*Element, layout.Rect)) {
	if e.hidden {
		return
	}
	abs := layout.Rect{X: ox + e.rect.X, Y: oy + e.rect.Y, Width: e.rect.Width, Height: e.rect.Height}
	fn(e, abs)
	for _, c := range e.children {
		c.walk(abs.X, abs.Y, fn)
	}
}

// ElementAt returns the topmost visible element at (x, y), in root
// coordinates, or nil.
func (e *Element) ElementAt(x, y int) *Element {
	var hit *Element
	e.Walk(func(el *Element, abs layout.Rect) {
		if abs.Contains(x, y) {
			hit = el
		}
	})
	return hit
}

// ClickTarget returns the topmost visible element at (x, y), in root
// coordinates, that has a click handler. It returns nil when none does.
func (e *Element) ClickTarget(x, y int) *Element {
	var hit *Element
	e.Walk(func(el *Element, abs layout.Rect) {
		if el.onClick != nil && abs.Contains(x, y) {
			hit = el
		}
	})
	return hit
}

func mustElement(c layout.Container) *Element {
	el, ok := c.(*Element)
	if !ok {
		panic(fmt.Sprintf("dom: foreign container %T", c))
	}
	return el
}
