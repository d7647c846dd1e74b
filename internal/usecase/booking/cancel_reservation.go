package booking

import (
	"context"
	"time"

	"github.com/fadehouse/barbershop-api/internal/audit"
	"github.com/fadehouse/barbershop-api/internal/cache"
	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/httperr"
	"github.com/fadehouse/barbershop-api/internal/models"
	"github.com/fadehouse/barbershop-api/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	cache cache.SlotCache
	audit *audit.Dispatcher

	now func() time.Time
}

func NewCancelReservation(
	repo domain.Repository,
	slotCache cache.SlotCache,
	auditDispatcher *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		cache: slotCache,
		audit: auditDispatcher,
		now:   timezone.Now,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	code string,
) (*models.Reservation, error) {

	res, err := uc.repo.FindReservationByCode(ctx, code)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.Cancel(res, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, res.BarberID, res.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
