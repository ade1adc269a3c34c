package layout

import "errors"

// Configuration errors: reported by constructors and parsers.
var (
	ErrInvalidDimensions = errors.New("layout: invalid grid dimensions")
	ErrSpecCount         = errors.New("layout: size spec count does not match grid")
	ErrContentCount      = errors.New("layout: content count does not match grid")
	ErrInvalidSize       = errors.New("layout: invalid size spec")
	ErrNegativeInset     = errors.New("layout: margins and spacing must be non-negative")
	ErrAlreadyBound      = errors.New("layout: indirect reference already has an owner")
)

// Render-time errors.
var (
	// ErrOversized means fixed, percent, margin and spacing sizes alone
	// exceed the available dimension.
	ErrOversized = errors.New("layout: content too big for available space")
	// ErrPartitionMismatch means the resolved sizes do not sum to the
	// available dimension.
	ErrPartitionMismatch = errors.New("layout: partition does not consume available space")
	// ErrReentrant means a render or update was dispatched on a grid that
	// is already in the middle of one.
	ErrReentrant = errors.New("layout: grid is already rendering")
)

// Indirect reference errors.
var (
	ErrUnbound  = errors.New("layout: indirect reference has no owner")
	ErrNotOwned = errors.New("layout: indirect reference is not a slot of this grid")
)
