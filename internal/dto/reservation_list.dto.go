package dto

type ReservationListDTO struct {
	ID         uint   `json:"id"`
	Code       string `json:"code"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	ClientName string `json:"client_name"`
}
