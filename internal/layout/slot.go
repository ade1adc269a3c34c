package layout

// SlotKind tags the content of a grid cell.
type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotLeaf
	SlotRef
)

// Slot is the content of one grid cell: nothing, a renderable, or an
// Indirect reference whose bound content may change after rendering.
type Slot struct {
	kind SlotKind
	leaf Renderable
	ref  *Indirect
}

// Empty returns a slot drawn as a plain filled cell.
func Empty() Slot { return Slot{} }

// Leaf returns a slot holding r. A nil r is an empty slot.
func Leaf(r Renderable) Slot {
	if r == nil {
		return Slot{}
	}
	return Slot{kind: SlotLeaf, leaf: r}
}

// Ref returns a slot holding an indirect reference. A nil ref is an empty
// slot.
func Ref(ind *Indirect) Slot {
	if ind == nil {
		return Slot{}
	}
	return Slot{kind: SlotRef, ref: ind}
}

// Kind returns the slot's tag.
func (s Slot) Kind() SlotKind { return s.kind }

// Indirect returns the slot's reference, or nil.
func (s Slot) Indirect() *Indirect { return s.ref }

// resolve returns the renderable currently occupying the slot, or nil.
func (s Slot) resolve() Renderable {
	switch s.kind {
	case SlotLeaf:
		return s.leaf
	case SlotRef:
		return s.ref.Content()
	default:
		return nil
	}
}
