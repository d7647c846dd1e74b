package booking

import "github.com/fadehouse/barbershop-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// CanCancel allows cancelling only reservations that are still scheduled.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
