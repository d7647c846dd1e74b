package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadehouse/barbershop-api/internal/httperr"
	"github.com/fadehouse/barbershop-api/internal/httpresp"
	booking "github.com/fadehouse/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createReservation *booking.CreateReservation
	listReservations  *booking.ListReservations
	cancelReservation *booking.CancelReservation
}

func NewReservationHandler(
	createReservation *booking.CreateReservation,
	listReservations *booking.ListReservations,
	cancelReservation *booking.CancelReservation,
) *ReservationHandler {
	return &ReservationHandler{
		createReservation: createReservation,
		listReservations:  listReservations,
		cancelReservation: cancelReservation,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	barberID, ok := parseBarberID(c)
	if !ok {
		return
	}

	date := c.Query("date")

	reservations, err := h.listReservations.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date_format"):
			httperr.BadRequest(c, "invalid_date_format", "Date must be YYYY-MM-DD.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
		default:
			httperr.Internal(c, "failed_to_list_reservations", "Could not list reservations.")
		}
		return
	}

	httpresp.List(c, reservations)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	barberID, ok := parseBarberID(c)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	res, err := h.createReservation.Execute(
		c.Request.Context(),
		booking.CreateReservationInput{
			BarberID:    barberID,
			Date:        req.Date,
			Time:        req.Time,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
		},
	)
	if err != nil {
		mapReservationErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		httperr.BadRequest(c, "missing_code", "Reservation code is required.")
		return
	}

	res, err := h.cancelReservation.Execute(c.Request.Context(), code)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "reservation_not_found"):
			httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "Reservation is not cancellable.")
		default:
			httperr.Internal(c, "cancel_failed", "Could not cancel reservation.")
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

func mapReservationErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_format"):
		httperr.BadRequest(c, "invalid_date_format", "Date must be YYYY-MM-DD.")
	case httperr.IsBusiness(err, "past_date"):
		httperr.BadRequest(c, "past_date", "Date is in the past.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
	case httperr.IsBusiness(err, "invalid_configuration"):
		httperr.Internal(c, "invalid_configuration", "Barber schedule is misconfigured.")
	case httperr.IsBusiness(err, "invalid_email"):
		httperr.BadRequest(c, "invalid_email", "Client email is not well formed.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Time does not match an offered slot.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "That slot is already booked.")
	default:
		httperr.Internal(c, "reservation_failed", "Could not create reservation.")
	}
}
