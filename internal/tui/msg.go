package tui

import "github.com/LISSConsulting/LISSTech.Gridwork/internal/widgets"

// expireMsg fires when an overlay's auto-dismiss ticket comes due. It keeps
// the overlay it was issued by, which a resize may since have replaced.
type expireMsg struct {
	overlay *widgets.Overlay
	ticket  widgets.Ticket
}
