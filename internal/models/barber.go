package models

import "time"

type Barber struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Location string `gorm:"size:100" json:"location"`

	// Wall-clock operating window, HH:MM 24h.
	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`

	ServiceDurationMin int `json:"service_duration_min"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
