package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadehouse/barbershop-api/internal/domain/schedule"
	"github.com/fadehouse/barbershop-api/internal/httperr"
	booking "github.com/fadehouse/barbershop-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	getAvailability *booking.GetAvailability
}

func NewAvailabilityHandler(getAvailability *booking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{getAvailability: getAvailability}
}

// Get computes the slot sequence for one barber and date.
// ?only_available=true filters the response down to free slots.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, ok := parseBarberID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query param 'date' is required (YYYY-MM-DD).")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		mapAvailabilityErrors(c, err)
		return
	}

	if c.Query("only_available") == "true" {
		slots = schedule.OnlyAvailable(slots)
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"date":      date,
		"slots":     slots,
	})
}

func mapAvailabilityErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_format"):
		httperr.BadRequest(c, "invalid_date_format", "Date must be YYYY-MM-DD.")
	case httperr.IsBusiness(err, "past_date"):
		httperr.BadRequest(c, "past_date", "Date is in the past.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
	case httperr.IsBusiness(err, "invalid_configuration"):
		httperr.Internal(c, "invalid_configuration", "Barber schedule is misconfigured.")
	default:
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
	}
}
