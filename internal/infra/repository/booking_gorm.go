package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) FindBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
	q domain.BarberQuery,
) ([]models.Barber, error) {

	tx := r.db.WithContext(ctx).Where("active = true")

	if q.Name != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(q.Name)) + "%"
		tx = tx.Where("LOWER(name) LIKE ?", like)
	}
	if q.Location != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(q.Location)) + "%"
		tx = tx.Where("LOWER(location) LIKE ?", like)
	}

	var barbers []models.Barber
	if err := tx.Order("id ASC").Find(&barbers).Error; err != nil {
		return nil, err
	}

	return barbers, nil
}

func (r *BookingGormRepository) UpdateBarberPhoto(
	ctx context.Context,
	barberID uint,
	url string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("photo_url", url).Error
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *BookingGormRepository) ListReservations(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Reservation, error) {

	tx := r.db.WithContext(ctx).
		Where("barber_id = ? AND status = 'scheduled'", barberID)

	if date != "" {
		tx = tx.Where("date = ?", date)
	}

	var reservations []models.Reservation
	if err := tx.
		Order("date ASC, time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *BookingGormRepository) AddReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *BookingGormRepository) HasReservationAt(
	ctx context.Context,
	barberID uint,
	date string,
	timeHM string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"barber_id = ? AND status = 'scheduled' AND date = ? AND time = ?",
			barberID, date, timeHM,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) FindReservationByCode(
	ctx context.Context,
	code string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
