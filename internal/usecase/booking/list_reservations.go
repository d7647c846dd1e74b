package booking

import (
	"context"

	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/domain/schedule"
	"github.com/fadehouse/barbershop-api/internal/dto"
	"github.com/fadehouse/barbershop-api/internal/httperr"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Execute lists a barber's scheduled reservations, optionally narrowed to
// one calendar date.
func (uc *ListReservations) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]dto.ReservationListDTO, error) {

	if date != "" && !schedule.IsValidDateFormat(date) {
		return nil, httperr.ErrBusiness("invalid_date_format")
	}

	if _, err := uc.repo.FindBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	reservations, err := uc.repo.ListReservations(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:         res.ID,
			Code:       res.Code,
			Date:       res.Date,
			Time:       res.Time,
			Status:     res.Status,
			ClientName: res.ClientName,
		})
	}

	return out, nil
}
