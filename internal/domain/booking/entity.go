package booking

import (
	"time"

	"github.com/fadehouse/barbershop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(res *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusCancelled)
	res.CancelledAt = &now
	return nil
}
