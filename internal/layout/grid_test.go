package layout_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// fillWith renders by painting the cell.
func fillWith(color string) layout.Renderable {
	return layout.RenderFunc(func(c layout.Container) error {
		c.SetFill(color)
		return nil
	})
}

// sticky remembers the container it was rendered into.
type sticky struct {
	color string
	c     layout.Container
	calls int
}

func (s *sticky) Render(c layout.Container) error {
	s.calls++
	s.c = c
	c.SetFill(s.color)
	return nil
}

func (s *sticky) Mounted() layout.Container { return s.c }

func emptySlots(n int) []layout.Slot {
	return make([]layout.Slot, n)
}

func newGrid(t *testing.T, opts layout.GridOptions) *layout.Grid {
	t.Helper()
	g, err := layout.NewGrid(opts)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func rects(els []*dom.Element) []layout.Rect {
	out := make([]layout.Rect, len(els))
	for i, el := range els {
		out[i] = el.Bounds()
	}
	return out
}

func TestGrid_Render_EmptyTwoByTwo(t *testing.T) {
	g := newGrid(t, layout.GridOptions{
		ID:      "g",
		Rows:    2,
		Cols:    2,
		Widths:  layout.Uniform(layout.Fill(), 2),
		Heights: layout.Uniform(layout.Fill(), 2),
		Color:   "#336699",
		Content: emptySlots(4),
	})
	doc := dom.NewDocument(200, 100)
	if err := doc.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}

	children := doc.Root().Children()
	want := []layout.Rect{
		{X: 0, Y: 0, Width: 100, Height: 50},
		{X: 100, Y: 0, Width: 100, Height: 50},
		{X: 0, Y: 50, Width: 100, Height: 50},
		{X: 100, Y: 50, Width: 100, Height: 50},
	}
	if diff := cmp.Diff(want, rects(children)); diff != "" {
		t.Fatalf("cell rects (-want +got):\n%s", diff)
	}
	for i, el := range children {
		if el.Fill() != "#336699" {
			t.Errorf("cell %d fill = %q, want #336699", i, el.Fill())
		}
		if g.Cell(i) != layout.Container(el) {
			t.Errorf("Cell(%d) does not match child %d", i, i)
		}
		if g.CellRect(i) != want[i] {
			t.Errorf("CellRect(%d) = %v, want %v", i, g.CellRect(i), want[i])
		}
	}
	if g.Mounted() != layout.Container(doc.Root()) {
		t.Error("Mounted() should be the viewport after render")
	}
}

func TestGrid_Render_EmptyColorInheritsParent(t *testing.T) {
	g := newGrid(t, layout.GridOptions{
		Rows: 1, Cols: 1,
		Widths:  []layout.SizeSpec{layout.Fill()},
		Heights: []layout.SizeSpec{layout.Fill()},
		Content: emptySlots(1),
	})
	doc := dom.NewDocument(10, 10)
	doc.Root().SetFill("#ABCDEF")
	if err := doc.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := doc.Root().Children()[0].Fill(); got != "#ABCDEF" {
		t.Errorf("cell fill = %q, want parent fill", got)
	}
}

func TestGrid_Render_Margins(t *testing.T) {
	g := newGrid(t, layout.GridOptions{
		ID:   "m",
		Rows: 1, Cols: 1,
		Widths:      []layout.SizeSpec{layout.Fill()},
		Heights:     []layout.SizeSpec{layout.Fill()},
		Margins:     layout.MarginsAll(2),
		MarginColor: "#111111",
		Color:       "#EEEEEE",
		Content:     emptySlots(1),
	})
	doc := dom.NewDocument(20, 10)
	if err := doc.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}

	root := doc.Root()
	if root.Fill() != "#111111" {
		t.Errorf("viewport fill = %q, want margin colour", root.Fill())
	}
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d children, want inset + cell", len(children))
	}
	want := []layout.Rect{
		{X: 2, Y: 2, Width: 16, Height: 6},
		{X: 2, Y: 2, Width: 16, Height: 6},
	}
	if diff := cmp.Diff(want, rects(children)); diff != "" {
		t.Errorf("rects (-want +got):\n%s", diff)
	}
	if children[0].ID() != dom.ViewportID+"-inner" {
		t.Errorf("inset id = %q", children[0].ID())
	}
	if g.Cell(0) != layout.Container(children[1]) {
		t.Error("child index should point at the cell, not the inset")
	}
}

func TestGrid_Render_Spacing(t *testing.T) {
	g := newGrid(t, layout.GridOptions{
		Rows: 1, Cols: 2,
		Widths:       layout.Uniform(layout.Fill(), 2),
		Heights:      []layout.SizeSpec{layout.Fill()},
		Spacing:      layout.SpacingAll(2),
		SpacingColor: "#222222",
		Content:      emptySlots(2),
	})
	doc := dom.NewDocument(20, 10)
	if err := doc.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.Root().Fill() != "#222222" {
		t.Errorf("backdrop fill = %q, want spacing colour", doc.Root().Fill())
	}
	want := []layout.Rect{
		{X: 0, Y: 0, Width: 9, Height: 10},
		{X: 11, Y: 0, Width: 9, Height: 10},
	}
	if diff := cmp.Diff(want, rects(doc.Root().Children())); diff != "" {
		t.Errorf("rects (-want +got):\n%s", diff)
	}
}

func TestGrid_Render_SpacingHiddenWithSingleCell(t *testing.T) {
	// One column: the vertical gutter has nothing to separate.
	g := newGrid(t, layout.GridOptions{
		Rows: 1, Cols: 1,
		Widths:       []layout.SizeSpec{layout.Fill()},
		Heights:      []layout.SizeSpec{layout.Fill()},
		Spacing:      layout.SpacingAll(3),
		SpacingColor: "#222222",
		Content:      emptySlots(1),
	})
	doc := dom.NewDocument(20, 10)
	if err := doc.Render(g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.Root().Fill() != "" {
		t.Errorf("viewport fill = %q, want untouched", doc.Root().Fill())
	}
}

func TestGrid_Render_Nested(t *testing.T) {
	inner := newGrid(t, layout.GridOptions{
		ID:   "inner",
		Rows: 2, Cols: 1,
		Widths:  []layout.SizeSpec{layout.Fill()},
		Heights: []layout.SizeSpec{layout.Fixed(3), layout.Fill()},
		Content: []layout.Slot{layout.Leaf(fillWith("#FF0000")), layout.Empty()},
	})
	outer := newGrid(t, layout.GridOptions{
		ID:   "outer",
		Rows: 1, Cols: 2,
		Widths:  []layout.SizeSpec{layout.Percent(25), layout.Fill()},
		Heights: []layout.SizeSpec{layout.Fill()},
		Content: []layout.Slot{layout.Empty(), layout.Leaf(inner)},
	})
	doc := dom.NewDocument(40, 12)
	if err := doc.Render(outer); err != nil {
		t.Fatalf("Render: %v", err)
	}

	host := doc.Find("outer-0-1")
	if host == nil {
		t.Fatal("outer cell 0,1 not found")
	}
	if host.Bounds() != (layout.Rect{X: 10, Y: 0, Width: 30, Height: 12}) {
		t.Errorf("host bounds = %v", host.Bounds())
	}
	top := doc.Find("inner-0-0")
	if top == nil || top.Fill() != "#FF0000" {
		t.Fatalf("inner top cell = %+v", top)
	}
	if abs := top.Absolute(); abs != (layout.Rect{X: 10, Y: 0, Width: 30, Height: 3}) {
		t.Errorf("inner top absolute = %v", abs)
	}
	bottom := doc.Find("inner-1-0")
	if bottom == nil || bottom.Bounds() != (layout.Rect{X: 0, Y: 3, Width: 30, Height: 9}) {
		t.Errorf("inner bottom = %+v", bottom)
	}
}

func TestGrid_Render_ReusesMountedContent(t *testing.T) {
	w := &sticky{color: "#00FF00"}
	first := newGrid(t, layout.GridOptions{
		Rows: 1, Cols: 1,
		Widths:  []layout.SizeSpec{layout.Fill()},
		Heights: []layout.SizeSpec{layout.Fill()},
		Content: []layout.Slot{layout.Leaf(w)},
	})
	doc := dom.NewDocument(10, 4)
	if err := doc.Render(first); err != nil {
		t.Fatalf("Render: %v", err)
	}
	live := w.Mounted()

	second := newGrid(t, layout.GridOptions{
		Rows: 1, Cols: 2,
		Widths:  layout.Uniform(layout.Fill(), 2),
		Heights: []layout.SizeSpec{layout.Fill()},
		Content: []layout.Slot{layout.Empty(), layout.Leaf(w)},
	})
	other := dom.NewDocument(10, 4)
	if err := other.Render(second); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if w.calls != 1 {
		t.Errorf("mounted content rendered %d times, want 1", w.calls)
	}
	if second.Cell(1) != live {
		t.Error("slot should hold the existing container")
	}
	if live.(*dom.Element).Parent() != other.Root() {
		t.Error("existing container should be moved to the new parent")
	}
}

func TestGrid_Render_Oversized(t *testing.T) {
	g := newGrid(t, layout.GridOptions{
		Rows: 1, Cols: 2,
		Widths:  []layout.SizeSpec{layout.Fixed(30), layout.Fixed(30)},
		Heights: []layout.SizeSpec{layout.Fill()},
		Content: emptySlots(2),
	})
	err := dom.NewDocument(50, 10).Render(g)
	if !errors.Is(err, layout.ErrOversized) {
		t.Errorf("Render error = %v, want ErrOversized", err)
	}
}

func TestNewGrid_ConfigErrors(t *testing.T) {
	fill := []layout.SizeSpec{layout.Fill()}
	taken := layout.NewIndirect("taken")
	if _, err := layout.NewGrid(layout.GridOptions{
		Rows: 1, Cols: 1, Widths: fill, Heights: fill,
		Content: []layout.Slot{layout.Ref(taken)},
	}); err != nil {
		t.Fatalf("first owner: %v", err)
	}

	tests := []struct {
		name string
		opts layout.GridOptions
		want error
	}{
		{"zero rows", layout.GridOptions{Rows: 0, Cols: 1, Widths: fill}, layout.ErrInvalidDimensions},
		{"zero cols", layout.GridOptions{Rows: 1, Cols: 0, Heights: fill}, layout.ErrInvalidDimensions},
		{"width count", layout.GridOptions{Rows: 1, Cols: 2, Widths: fill, Heights: fill, Content: emptySlots(2)}, layout.ErrSpecCount},
		{"height count", layout.GridOptions{Rows: 2, Cols: 1, Widths: fill, Heights: fill, Content: emptySlots(2)}, layout.ErrSpecCount},
		{"content count", layout.GridOptions{Rows: 1, Cols: 1, Widths: fill, Heights: fill, Content: emptySlots(3)}, layout.ErrContentCount},
		{"negative margin", layout.GridOptions{Rows: 1, Cols: 1, Widths: fill, Heights: fill, Content: emptySlots(1), Margins: layout.Margins{Left: -1}}, layout.ErrNegativeInset},
		{"negative percent width", layout.GridOptions{Rows: 1, Cols: 2, Widths: []layout.SizeSpec{layout.Percent(-50), layout.Fill()}, Heights: fill, Content: emptySlots(2)}, layout.ErrInvalidSize},
		{"percent over 100", layout.GridOptions{Rows: 1, Cols: 1, Widths: []layout.SizeSpec{layout.Percent(150)}, Heights: fill, Content: emptySlots(1)}, layout.ErrInvalidSize},
		{"NaN percent", layout.GridOptions{Rows: 1, Cols: 1, Widths: []layout.SizeSpec{layout.Percent(math.NaN())}, Heights: fill, Content: emptySlots(1)}, layout.ErrInvalidSize},
		{"negative weight height", layout.GridOptions{Rows: 2, Cols: 1, Widths: fill, Heights: []layout.SizeSpec{layout.Proportional(-1), layout.Proportional(2)}, Content: emptySlots(2)}, layout.ErrInvalidSize},
		{"infinite weight", layout.GridOptions{Rows: 1, Cols: 1, Widths: []layout.SizeSpec{layout.Proportional(math.Inf(1))}, Heights: fill, Content: emptySlots(1)}, layout.ErrInvalidSize},
		{"negative fixed", layout.GridOptions{Rows: 1, Cols: 1, Widths: fill, Heights: []layout.SizeSpec{layout.Fixed(-2)}, Content: emptySlots(1)}, layout.ErrInvalidSize},
		{"second owner", layout.GridOptions{Rows: 1, Cols: 1, Widths: fill, Heights: fill, Content: []layout.Slot{layout.Ref(taken)}}, layout.ErrAlreadyBound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := layout.NewGrid(tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewGrid error = %v, want %v", err, tt.want)
			}
			if g != nil {
				t.Error("NewGrid should not return a grid on error")
			}
		})
	}
}

func TestScene_Render(t *testing.T) {
	g := newGrid(t, layout.GridOptions{
		Rows: 1, Cols: 1,
		Widths:  []layout.SizeSpec{layout.Fill()},
		Heights: []layout.SizeSpec{layout.Fill()},
		Content: emptySlots(1),
	})
	scene := &layout.Scene{Main: g, Overlay: fillWith("#000000")}
	doc := dom.NewDocument(30, 8)
	if err := doc.Render(scene); err != nil {
		t.Fatalf("Render: %v", err)
	}

	children := doc.Root().Children()
	if len(children) != 2 {
		t.Fatalf("got %d regions, want 2", len(children))
	}
	full := layout.Rect{Width: 30, Height: 8}
	for i, id := range []string{"main", "overlay"} {
		if children[i].ID() != id {
			t.Errorf("region %d id = %q, want %q", i, children[i].ID(), id)
		}
		if children[i].Bounds() != full {
			t.Errorf("region %q bounds = %v, want %v", id, children[i].Bounds(), full)
		}
	}
	if children[1].Fill() != "#000000" {
		t.Error("overlay should be rendered into the second region")
	}
}

func TestScene_Render_NoOverlay(t *testing.T) {
	doc := dom.NewDocument(30, 8)
	if err := doc.Render(&layout.Scene{Main: fillWith("#FFFFFF")}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n := len(doc.Root().Children()); n != 1 {
		t.Errorf("got %d regions, want 1", n)
	}
}

func TestRenderViewport_ClearsPreviousScene(t *testing.T) {
	doc := dom.NewDocument(10, 10)
	if err := doc.Render(&layout.Scene{Main: fillWith("#010101"), Overlay: fillWith("#020202")}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := doc.Render(&layout.Scene{Main: fillWith("#030303")}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	children := doc.Root().Children()
	if len(children) != 1 || children[0].Fill() != "#030303" {
		t.Errorf("viewport should hold only the new scene, got %d children", len(children))
	}
}
