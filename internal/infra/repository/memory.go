package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/models"
)

// MemoryRepository backs demo mode: no Postgres configured, the API runs
// against seeded fixture data. It is also the test double for handler and
// use case tests. All access goes through the mutex; nothing outside this
// struct holds the slices.
type MemoryRepository struct {
	mu           sync.RWMutex
	barbers      []models.Barber
	reservations []models.Reservation
	nextResID    uint
}

func NewMemoryRepository(barbers []models.Barber) *MemoryRepository {
	return &MemoryRepository{
		barbers:   barbers,
		nextResID: 1,
	}
}

// NewDemoRepository seeds the fixture barbers shown when no real store is
// configured.
func NewDemoRepository() *MemoryRepository {
	now := time.Now()
	return NewMemoryRepository([]models.Barber{
		{
			ID: 1, Name: "Marcus Reed", Location: "Downtown",
			OpenTime: "09:00", CloseTime: "18:00",
			ServiceDurationMin: 30, Active: true,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 2, Name: "Leo Tavares", Location: "Riverside",
			OpenTime: "10:00", CloseTime: "19:00",
			ServiceDurationMin: 45, Active: true,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 3, Name: "Sam Okafor", Location: "Downtown",
			OpenTime: "08:00", CloseTime: "16:00",
			ServiceDurationMin: 60, Active: true,
			CreatedAt: now, UpdatedAt: now,
		},
	})
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *MemoryRepository) FindBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.barbers {
		if r.barbers[i].ID == id && r.barbers[i].Active {
			b := r.barbers[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) ListBarbers(
	ctx context.Context,
	q domain.BarberQuery,
) ([]models.Barber, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	name := strings.ToLower(strings.TrimSpace(q.Name))
	location := strings.ToLower(strings.TrimSpace(q.Location))

	out := make([]models.Barber, 0, len(r.barbers))
	for _, b := range r.barbers {
		if !b.Active {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(b.Name), name) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(b.Location), location) {
			continue
		}
		out = append(out, b)
	}

	return out, nil
}

func (r *MemoryRepository) UpdateBarberPhoto(
	ctx context.Context,
	barberID uint,
	url string,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.barbers {
		if r.barbers[i].ID == barberID {
			r.barbers[i].PhotoURL = url
			r.barbers[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *MemoryRepository) ListReservations(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Reservation, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Reservation, 0)
	for _, res := range r.reservations {
		if res.BarberID != barberID || res.Status != string(domain.StatusScheduled) {
			continue
		}
		if date != "" && res.Date != date {
			continue
		}
		out = append(out, res)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})

	return out, nil
}

func (r *MemoryRepository) AddReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	res.ID = r.nextResID
	r.nextResID++

	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *MemoryRepository) HasReservationAt(
	ctx context.Context,
	barberID uint,
	date string,
	timeHM string,
) (bool, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.reservations {
		if res.BarberID == barberID &&
			res.Status == string(domain.StatusScheduled) &&
			res.Date == date &&
			res.Time == timeHM {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) FindReservationByCode(
	ctx context.Context,
	code string,
) (*models.Reservation, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reservations {
		if r.reservations[i].Code == code {
			res := r.reservations[i]
			return &res, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reservations {
		if r.reservations[i].ID == res.ID {
			res.UpdatedAt = time.Now()
			r.reservations[i] = *res
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Compile-time check
var _ domain.Repository = (*MemoryRepository)(nil)
