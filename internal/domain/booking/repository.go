package booking

import (
	"context"

	"github.com/fadehouse/barbershop-api/internal/models"
)

// BarberQuery enumerates the optional listing filters. An explicit
// specification object keeps conditional filter composition out of the
// callers; the infra layer decides how to translate it into a query.
type BarberQuery struct {
	Name     string
	Location string
}

type Repository interface {
	// -------- Barber --------
	FindBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
		q BarberQuery,
	) ([]models.Barber, error)

	UpdateBarberPhoto(
		ctx context.Context,
		barberID uint,
		url string,
	) error

	// -------- Reservation --------
	ListReservations(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Reservation, error)

	AddReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	HasReservationAt(
		ctx context.Context,
		barberID uint,
		date string,
		timeHM string,
	) (bool, error)

	FindReservationByCode(
		ctx context.Context,
		code string,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error
}
