package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fadehouse/barbershop-api/internal/cache"
	infraRepo "github.com/fadehouse/barbershop-api/internal/infra/repository"
	"github.com/fadehouse/barbershop-api/internal/routes"
	"github.com/fadehouse/barbershop-api/internal/timezone"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Repo:  infraRepo.NewDemoRepository(),
		Cache: cache.NewNoopSlotCache(),
		Log:   zap.NewNop(),
	})
	return r
}

// futureDate returns a date guaranteed not to be in the past.
func futureDate() string {
	return timezone.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type listEnvelope struct {
	Data  []map[string]any `json:"data"`
	Total int              `json:"total"`
}

func TestListBarbers(t *testing.T) {
	r := setupRouter(t)

	t.Run("all", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res listEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, 3, res.Total)
	})

	t.Run("filter by name", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers?name=marcus", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res listEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		require.Equal(t, 1, res.Total)
		assert.Equal(t, "Marcus Reed", res.Data[0]["name"])
	})

	t.Run("filter by location", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers?location=downtown", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res listEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, 2, res.Total)
	})

	t.Run("filter with no match", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers?name=nobody", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res listEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, 0, res.Total)
	})
}

func TestGetBarber(t *testing.T) {
	r := setupRouter(t)

	rec := doJSON(r, http.MethodGet, "/api/barbers/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/barbers/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/barbers/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailability(t *testing.T) {
	r := setupRouter(t)
	date := futureDate()

	t.Run("full day", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers/1/availability?date="+date, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Date  string `json:"date"`
			Slots []struct {
				Time      string `json:"time"`
				Available bool   `json:"available"`
			} `json:"slots"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, date, res.Date)
		// demo barber 1 works 09:00-18:00 with 30min slots
		require.Len(t, res.Slots, 18)
		assert.Equal(t, "09:00", res.Slots[0].Time)
		assert.Equal(t, "17:30", res.Slots[17].Time)
	})

	t.Run("missing date", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers/1/availability", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing_date")
	})

	t.Run("bad date format", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers/1/availability?date=07-2026-01", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_date_format")
	})

	t.Run("past date", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers/1/availability?date=2020-01-01", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "past_date")
	})

	t.Run("unknown barber", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/barbers/99/availability?date="+date, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "barber_not_found")
	})
}

func TestReservationFlow(t *testing.T) {
	r := setupRouter(t)
	date := futureDate()

	body := map[string]any{
		"date":         date,
		"time":         "10:00",
		"client_name":  "Ana Silva",
		"client_phone": "555-0101",
	}

	// book a slot
	rec := doJSON(r, http.MethodPost, "/api/barbers/1/reservations", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Code   string `json:"code"`
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEmpty(t, created.Code)
	assert.Equal(t, "scheduled", created.Status)

	// the booked slot is now flagged unavailable
	rec = doJSON(r, http.MethodGet, "/api/barbers/1/availability?date="+date+"&only_available=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var avail struct {
		Slots []struct {
			Time string `json:"time"`
		} `json:"slots"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&avail))
	require.Len(t, avail.Slots, 17)
	for _, s := range avail.Slots {
		assert.NotEqual(t, "10:00", s.Time)
	}

	// double booking is a conflict
	rec = doJSON(r, http.MethodPost, "/api/barbers/1/reservations", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "time_conflict")

	// reservation listing shows it
	rec = doJSON(r, http.MethodGet, fmt.Sprintf("/api/barbers/1/reservations?date=%s", date), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list listEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Ana Silva", list.Data[0]["client_name"])

	// cancel, then the slot frees up
	rec = doJSON(r, http.MethodPatch, "/api/reservations/"+created.Code+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodPatch, "/api/reservations/"+created.Code+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/barbers/1/availability?date="+date+"&only_available=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	avail.Slots = nil
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&avail))
	assert.Len(t, avail.Slots, 18)
}

func TestCreateReservation_BadRequests(t *testing.T) {
	r := setupRouter(t)

	rec := doJSON(r, http.MethodPost, "/api/barbers/1/reservations", map[string]any{
		"date": futureDate(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/barbers/1/reservations", map[string]any{
		"date":        futureDate(),
		"time":        "10:07",
		"client_name": "Ana",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_time")
}

func TestPhotoUpload_Disabled(t *testing.T) {
	r := setupRouter(t)

	rec := doJSON(r, http.MethodPost, "/api/barbers/1/photo", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "media_storage_disabled")
}
