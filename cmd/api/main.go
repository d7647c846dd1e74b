package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fadehouse/barbershop-api/internal/cache"
	"github.com/fadehouse/barbershop-api/internal/config"
	dbpkg "github.com/fadehouse/barbershop-api/internal/db"
	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	infraRepo "github.com/fadehouse/barbershop-api/internal/infra/repository"
	"github.com/fadehouse/barbershop-api/internal/logging"
	"github.com/fadehouse/barbershop-api/internal/middleware"
	"github.com/fadehouse/barbershop-api/internal/routes"
	"github.com/fadehouse/barbershop-api/internal/storage"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.Env)
	defer log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := routes.Deps{Log: log}

	var repo domain.Repository
	if cfg.DemoMode() {
		log.Warn("DATABASE_URL not set, running in demo mode with fixture data")
		repo = infraRepo.NewDemoRepository()
	} else {
		db := dbpkg.NewDB(cfg)
		deps.DB = db
		repo = infraRepo.NewBookingGormRepository(db)
	}
	deps.Repo = repo

	if cfg.RedisAddr != "" {
		deps.Cache = cache.NewRedisSlotCache(cfg.RedisAddr, cfg.RedisPassword)
		log.Info("availability cache enabled", zap.String("addr", cfg.RedisAddr))
	} else {
		deps.Cache = cache.NewNoopSlotCache()
	}

	if cfg.MediaEnabled() {
		deps.Uploader = storage.NewS3Uploader(cfg)
		log.Info("media storage enabled", zap.String("bucket", cfg.S3Bucket))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, deps)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
