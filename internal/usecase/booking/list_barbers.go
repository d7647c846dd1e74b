package booking

import (
	"context"

	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/models"
)

type ListBarbers struct {
	repo domain.Repository
}

func NewListBarbers(repo domain.Repository) *ListBarbers {
	return &ListBarbers{repo: repo}
}

func (uc *ListBarbers) Execute(
	ctx context.Context,
	q domain.BarberQuery,
) ([]models.Barber, error) {
	return uc.repo.ListBarbers(ctx, q)
}
