package layout

import (
	"fmt"

	"go.uber.org/zap"
)

// GridOptions is the full configuration of a Grid. It is fixed once the grid
// is constructed.
type GridOptions struct {
	ID         string
	Rows, Cols int
	// Widths has one spec per column, Heights one per row.
	Widths, Heights []SizeSpec
	Margins         Margins
	Spacing         Spacing

	// Color fills each cell, MarginColor the outer margin and SpacingColor
	// the gutters between cells. Empty colours inherit the fill of the
	// container the grid is rendered into.
	Color, MarginColor, SpacingColor string

	// Content holds Rows*Cols slots in row-major order.
	Content []Slot

	Logger *zap.Logger
}

// Grid arranges content in rows and columns.
type Grid struct {
	id                               string
	rows, cols                       int
	widths, heights                  []SizeSpec
	margins                          Margins
	spacing                          Spacing
	color, marginColor, spacingColor string
	content                          []Slot
	log                              *zap.Logger

	// Populated by Render.
	container Container
	cells     []Container
	rects     []Rect
	inherited string // parent fill at render time
	busy      bool
}

// NewGrid validates opts and takes ownership of every Indirect slot.
func NewGrid(opts GridOptions) (*Grid, error) {
	if opts.Rows < 1 || opts.Cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, opts.Rows, opts.Cols)
	}
	if len(opts.Widths) != opts.Cols {
		return nil, fmt.Errorf("%w: %d widths for %d columns", ErrSpecCount, len(opts.Widths), opts.Cols)
	}
	if len(opts.Heights) != opts.Rows {
		return nil, fmt.Errorf("%w: %d heights for %d rows", ErrSpecCount, len(opts.Heights), opts.Rows)
	}
	if len(opts.Content) != opts.Rows*opts.Cols {
		return nil, fmt.Errorf("%w: %d slots for %dx%d", ErrContentCount, len(opts.Content), opts.Rows, opts.Cols)
	}
	if !opts.Margins.valid() || !opts.Spacing.valid() {
		return nil, ErrNegativeInset
	}
	for _, specs := range [][]SizeSpec{opts.Widths, opts.Heights} {
		for _, spec := range specs {
			if err := spec.Validate(); err != nil {
				return nil, fmt.Errorf("grid %q: %w", opts.ID, err)
			}
		}
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	g := &Grid{
		id:           opts.ID,
		rows:         opts.Rows,
		cols:         opts.Cols,
		widths:       append([]SizeSpec(nil), opts.Widths...),
		heights:      append([]SizeSpec(nil), opts.Heights...),
		margins:      opts.Margins,
		spacing:      opts.Spacing,
		color:        opts.Color,
		marginColor:  opts.MarginColor,
		spacingColor: opts.SpacingColor,
		content:      append([]Slot(nil), opts.Content...),
		log:          log.With(zap.String("grid", opts.ID)),
	}
	for _, slot := range g.content {
		if slot.kind != SlotRef {
			continue
		}
		if err := slot.ref.bind(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ID returns the grid's identifier.
func (g *Grid) ID() string { return g.id }

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// Mounted returns the container the grid was rendered into, or nil.
func (g *Grid) Mounted() Container { return g.container }

// Cell returns the container of slot i, or nil before render.
func (g *Grid) Cell(i int) Container {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return g.cells[i]
}

// CellRect returns the rectangle computed for slot i at render time.
func (g *Grid) CellRect(i int) Rect {
	if i < 0 || i >= len(g.rects) {
		return Rect{}
	}
	return g.rects[i]
}

// Slot returns the content of slot i.
func (g *Grid) Slot(i int) Slot { return g.content[i] }

// Render lays the grid out over parent and renders every cell.
func (g *Grid) Render(parent Container) error {
	if g.busy {
		return fmt.Errorf("%w: %q", ErrReentrant, g.id)
	}
	g.busy = true
	defer func() { g.busy = false }()

	bounds := parent.Bounds()
	widths, err := Partition(bounds.Width, g.widths, g.margins.Left, g.margins.Right, g.spacing.Horizontal)
	if err != nil {
		return fmt.Errorf("grid %q columns: %w", g.id, err)
	}
	heights, err := Partition(bounds.Height, g.heights, g.margins.Top, g.margins.Bottom, g.spacing.Vertical)
	if err != nil {
		return fmt.Errorf("grid %q rows: %w", g.id, err)
	}
	woff := Offsets(widths)
	hoff := Offsets(heights)
	parentFill := parent.Fill()

	inner := parent
	if hasMargins(widths, heights) {
		inner = parent.NewChild(parent.ID()+"-inner", Rect{
			X:      woff[1],
			Y:      hoff[1],
			Width:  last(woff) - widths[0],
			Height: last(hoff) - heights[0],
		})
		parent.Append(inner)
		SetFill(parent, g.marginColor, parentFill)
	}
	if hasSpacing(widths, heights) {
		SetFill(inner, g.spacingColor, parentFill)
	}

	cells := make([]Container, 0, len(g.content))
	rects := make([]Rect, 0, len(g.content))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			rect := Rect{X: woff[2*c+1], Y: hoff[2*r+1], Width: widths[2*c+1], Height: heights[2*r+1]}
			rects = append(rects, rect)

			content := g.content[g.cols*r+c].resolve()
			if content != nil {
				if live := mountedContainer(content); live != nil {
					parent.Append(live)
					cells = append(cells, live)
					continue
				}
			}

			cell := parent.NewChild(g.cellID(r, c), rect)
			cells = append(cells, cell)
			SetFill(cell, g.color, parentFill)
			parent.Append(cell)
			if content != nil {
				if err := content.Render(cell); err != nil {
					return fmt.Errorf("grid %q cell %d,%d: %w", g.id, r, c, err)
				}
			}
		}
	}

	g.container, g.cells, g.rects = parent, cells, rects
	g.inherited = parentFill
	g.log.Debug("rendered grid",
		zap.Int("rows", g.rows),
		zap.Int("cols", g.cols),
		zap.Ints("widths", widths),
		zap.Ints("heights", heights))
	return nil
}

// Update redraws the slot holding ind. It does nothing until the grid has
// been rendered. Geometry is not recomputed: already mounted content is
// swapped in as is, otherwise a fresh cell is built over the slot's
// rectangle from the original render.
func (g *Grid) Update(ind *Indirect) error {
	if ind == nil {
		return fmt.Errorf("%w: nil reference in grid %q", ErrNotOwned, g.id)
	}
	pos := g.indexOf(ind)
	if pos < 0 {
		return fmt.Errorf("%w: %q in grid %q", ErrNotOwned, ind.key, g.id)
	}
	if g.busy {
		return fmt.Errorf("%w: %q", ErrReentrant, g.id)
	}
	if g.container == nil {
		return nil
	}
	g.busy = true
	defer func() { g.busy = false }()

	old := g.cells[pos]
	content := ind.Content()
	if content != nil {
		if live := mountedContainer(content); live != nil {
			if err := g.container.Replace(live, old); err != nil {
				return fmt.Errorf("grid %q slot %d: %w", g.id, pos, err)
			}
			g.cells[pos] = live
			g.log.Debug("swapped mounted content", zap.Int("slot", pos), zap.String("key", ind.key))
			return nil
		}
	}

	r, c := pos/g.cols, pos%g.cols
	cell := g.container.NewChild(g.cellID(r, c), g.rects[pos])
	SetFill(cell, g.color, g.inherited)
	if err := g.container.Replace(cell, old); err != nil {
		return fmt.Errorf("grid %q slot %d: %w", g.id, pos, err)
	}
	g.cells[pos] = cell
	g.log.Debug("redrew slot", zap.Int("slot", pos), zap.String("key", ind.key))
	if content != nil {
		if err := content.Render(cell); err != nil {
			return fmt.Errorf("grid %q cell %d,%d: %w", g.id, r, c, err)
		}
	}
	return nil
}

func (g *Grid) indexOf(ind *Indirect) int {
	for i, slot := range g.content {
		if slot.kind == SlotRef && slot.ref == ind {
			return i
		}
	}
	return -1
}

// cellID names a cell container. An empty id lets the host generate one.
func (g *Grid) cellID(r, c int) string {
	if g.id == "" {
		return ""
	}
	return fmt.Sprintf("%s-%d-%d", g.id, r, c)
}

func hasMargins(widths, heights []int) bool {
	return widths[0] > 0 || last(widths) > 0 || heights[0] > 0 || last(heights) > 0
}

// hasSpacing reports whether gutters are visible: at least two cells on an
// axis and a non-zero gutter.
func hasSpacing(widths, heights []int) bool {
	return (len(widths) > 3 && widths[2] > 0) || (len(heights) > 3 && heights[2] > 0)
}

func last(s []int) int { return s[len(s)-1] }
