package models

import "time"

type Reservation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	// Calendar date YYYY-MM-DD and start time HH:MM; the booking always
	// lasts the barber's configured service duration.
	Date string `gorm:"size:10;index:idx_reservations_barber_date" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
