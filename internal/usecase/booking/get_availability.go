package booking

import (
	"context"
	"time"

	"github.com/fadehouse/barbershop-api/internal/cache"
	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/domain/schedule"
	"github.com/fadehouse/barbershop-api/internal/httperr"
	"github.com/fadehouse/barbershop-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache cache.SlotCache

	// injectable so tests can pin the midnight boundary
	now func() time.Time
}

func NewGetAvailability(repo domain.Repository, slotCache cache.SlotCache) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: slotCache,
		now:   timezone.Now,
	}
}

// Execute computes the tagged slot sequence for one barber and date.
// All precondition failures surface here as business errors; the slot
// engine itself never fails and no partial result is ever returned.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]schedule.TimeSlot, error) {

	if !schedule.IsValidDateFormat(date) {
		return nil, httperr.ErrBusiness("invalid_date_format")
	}

	if schedule.IsDateInPast(date, uc.now()) {
		return nil, httperr.ErrBusiness("past_date")
	}

	barber, err := uc.repo.FindBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if barber.ServiceDurationMin <= 0 ||
		barber.OpenTime == "" || barber.CloseTime == "" ||
		barber.OpenTime >= barber.CloseTime {
		return nil, httperr.ErrBusiness("invalid_configuration")
	}

	if slots, ok := uc.cache.Get(ctx, barberID, date); ok {
		return slots, nil
	}

	reservations, err := uc.repo.ListReservations(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	reserved := make([]string, 0, len(reservations))
	for _, res := range reservations {
		reserved = append(reserved, res.Time)
	}

	slots := schedule.GenerateTimeSlots(
		barber.OpenTime,
		barber.CloseTime,
		barber.ServiceDurationMin,
		reserved,
	)

	uc.cache.Set(ctx, barberID, date, slots)

	return slots, nil
}
