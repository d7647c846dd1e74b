package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fadehouse/barbershop-api/internal/audit"
	"github.com/fadehouse/barbershop-api/internal/cache"
	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/domain/schedule"
	"github.com/fadehouse/barbershop-api/internal/httperr"
	"github.com/fadehouse/barbershop-api/internal/models"
	"github.com/fadehouse/barbershop-api/internal/timezone"
	"github.com/fadehouse/barbershop-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	BarberID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	ClientName  string
	ClientPhone string
	ClientEmail string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	cache cache.SlotCache
	audit *audit.Dispatcher

	now func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	slotCache cache.SlotCache,
	auditDispatcher *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		cache: slotCache,
		audit: auditDispatcher,
		now:   timezone.Now,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if !schedule.IsValidDateFormat(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date_format")
	}

	if schedule.IsDateInPast(in.Date, uc.now()) {
		return nil, httperr.ErrBusiness("past_date")
	}

	if in.ClientEmail != "" && !validators.IsEmailWellFormed(in.ClientEmail) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	barber, err := uc.repo.FindBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if barber.ServiceDurationMin <= 0 ||
		barber.OpenTime == "" || barber.CloseTime == "" ||
		barber.OpenTime >= barber.CloseTime {
		return nil, httperr.ErrBusiness("invalid_configuration")
	}

	// The requested start must sit on the barber's slot grid; anything
	// off-grid could never be offered by the availability endpoint.
	if !onSlotGrid(barber, in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	taken, err := uc.repo.HasReservationAt(ctx, in.BarberID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	res := &models.Reservation{
		Code:        uuid.NewString(),
		BarberID:    in.BarberID,
		Date:        in.Date,
		Time:        in.Time,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ClientEmail: in.ClientEmail,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.AddReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"date":      in.Date,
			"time":      in.Time,
		},
	})

	return res, nil
}

func onSlotGrid(barber *models.Barber, timeHM string) bool {
	for _, slot := range schedule.GenerateTimeSlots(
		barber.OpenTime,
		barber.CloseTime,
		barber.ServiceDurationMin,
		nil,
	) {
		if slot.Time == timeHM {
			return true
		}
	}
	return false
}
