package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fadehouse/barbershop-api/internal/audit"
	"github.com/fadehouse/barbershop-api/internal/cache"
	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/httperr"
	infraRepo "github.com/fadehouse/barbershop-api/internal/infra/repository"
)

func newCreateUC(repo *infraRepo.MemoryRepository) *CreateReservation {
	dispatcher := audit.NewDispatcher(audit.NewZapSink(zap.NewNop()), zap.NewNop())
	uc := NewCreateReservation(repo, cache.NewNoopSlotCache(), dispatcher)
	uc.now = func() time.Time { return frozenNow }
	return uc
}

func newCancelUC(repo *infraRepo.MemoryRepository) *CancelReservation {
	dispatcher := audit.NewDispatcher(audit.NewZapSink(zap.NewNop()), zap.NewNop())
	uc := NewCancelReservation(repo, cache.NewNoopSlotCache(), dispatcher)
	uc.now = func() time.Time { return frozenNow }
	return uc
}

func validInput() CreateReservationInput {
	return CreateReservationInput{
		BarberID:    1,
		Date:        "2026-06-11",
		Time:        "10:00",
		ClientName:  "Ana Silva",
		ClientPhone: "555-0101",
		ClientEmail: "ana@example.com",
	}
}

func TestCreateReservation_Success(t *testing.T) {
	repo := infraRepo.NewMemoryRepository(fixtureBarbers())
	uc := newCreateUC(repo)

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, res.ID)
	assert.Equal(t, string(domain.StatusScheduled), res.Status)

	_, err = uuid.Parse(res.Code)
	assert.NoError(t, err, "reservation code must be a uuid")

	// and the slot shows as taken afterwards
	taken, err := repo.HasReservationAt(context.Background(), 1, "2026-06-11", "10:00")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestCreateReservation_Conflict(t *testing.T) {
	repo := infraRepo.NewMemoryRepository(fixtureBarbers())
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.ClientName = "Bruno Costa"
	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateReservation_Validation(t *testing.T) {
	repo := infraRepo.NewMemoryRepository(fixtureBarbers())
	uc := newCreateUC(repo)

	tests := []struct {
		name   string
		mutate func(*CreateReservationInput)
		code   string
	}{
		{"bad date", func(in *CreateReservationInput) { in.Date = "2026/06/11" }, "invalid_date_format"},
		{"past date", func(in *CreateReservationInput) { in.Date = "2026-06-01" }, "past_date"},
		{"unknown barber", func(in *CreateReservationInput) { in.BarberID = 99 }, "barber_not_found"},
		{"inverted window", func(in *CreateReservationInput) { in.BarberID = 3 }, "invalid_configuration"},
		{"off-grid time", func(in *CreateReservationInput) { in.Time = "10:07" }, "invalid_time"},
		{"after close", func(in *CreateReservationInput) { in.Time = "17:45" }, "invalid_time"},
		{"bad email", func(in *CreateReservationInput) { in.ClientEmail = "not-an-email" }, "invalid_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.code), "want %s, got %v", tt.code, err)
		})
	}
}

func TestCancelReservation(t *testing.T) {
	repo := infraRepo.NewMemoryRepository(fixtureBarbers())
	createUC := newCreateUC(repo)
	cancelUC := newCancelUC(repo)

	res, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(context.Background(), res.Code)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, frozenNow, *cancelled.CancelledAt)

	// slot frees up again
	taken, err := repo.HasReservationAt(context.Background(), 1, "2026-06-11", "10:00")
	require.NoError(t, err)
	assert.False(t, taken)

	// second cancel is rejected
	_, err = cancelUC.Execute(context.Background(), res.Code)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	// unknown code
	_, err = cancelUC.Execute(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}
