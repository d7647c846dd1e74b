package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/httperr"
	"github.com/fadehouse/barbershop-api/internal/httpresp"
	booking "github.com/fadehouse/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	listBarbers *booking.ListBarbers
	repo        domain.Repository
}

func NewBarberHandler(
	listBarbers *booking.ListBarbers,
	repo domain.Repository,
) *BarberHandler {
	return &BarberHandler{
		listBarbers: listBarbers,
		repo:        repo,
	}
}

// List returns active barbers, optionally filtered by name and/or location.
func (h *BarberHandler) List(c *gin.Context) {
	q := domain.BarberQuery{
		Name:     c.Query("name"),
		Location: c.Query("location"),
	}

	barbers, err := h.listBarbers.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseBarberID(c)
	if !ok {
		return
	}

	barber, err := h.repo.FindBarber(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// parseBarberID reads the :id path param and writes the error response
// itself when it is not a positive integer.
func parseBarberID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}
