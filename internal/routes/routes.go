package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fadehouse/barbershop-api/internal/audit"
	"github.com/fadehouse/barbershop-api/internal/cache"
	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/handlers"
	"github.com/fadehouse/barbershop-api/internal/storage"
	ucBooking "github.com/fadehouse/barbershop-api/internal/usecase/booking"
)

// Deps carries the wired infrastructure into route registration.
// DB is nil in demo mode; Uploader is nil when media storage is off.
type Deps struct {
	DB       *gorm.DB
	Repo     domain.Repository
	Cache    cache.SlotCache
	Uploader storage.Uploader
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var sink audit.Sink
	if deps.DB != nil {
		sink = audit.NewGormSink(deps.DB)
	} else {
		sink = audit.NewZapSink(deps.Log)
	}
	auditDispatcher := audit.NewDispatcher(sink, deps.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	listBarbersUC := ucBooking.NewListBarbers(deps.Repo)

	getAvailabilityUC := ucBooking.NewGetAvailability(
		deps.Repo,
		deps.Cache,
	)

	createReservationUC := ucBooking.NewCreateReservation(
		deps.Repo,
		deps.Cache,
		auditDispatcher,
	)

	listReservationsUC := ucBooking.NewListReservations(deps.Repo)

	cancelReservationUC := ucBooking.NewCancelReservation(
		deps.Repo,
		deps.Cache,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	barberHandler := handlers.NewBarberHandler(listBarbersUC, deps.Repo)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC)
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listReservationsUC,
		cancelReservationUC,
	)
	photoHandler := handlers.NewPhotoHandler(deps.Repo, deps.Uploader)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/barbers/:id/availability", availabilityHandler.Get)

		api.GET("/barbers/:id/reservations", reservationHandler.List)
		api.POST("/barbers/:id/reservations", reservationHandler.Create)
		api.PATCH("/reservations/:code/cancel", reservationHandler.Cancel)

		api.POST("/barbers/:id/photo", photoHandler.Upload)

		// audit trail lives in Postgres only
		if deps.DB != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)
			api.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
