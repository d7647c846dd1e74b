package audit

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fadehouse/barbershop-api/internal/models"
)

// Sink persists audit events. The dispatcher never cares where they go, so
// demo mode can run without a database.
type Sink interface {
	Record(action, entity string, entityID *uint, metadata any) error
}

// ---------- gorm-backed sink ----------

type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Record(action, entity string, entityID *uint, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return s.db.Create(&row).Error
}

// ---------- log-only sink (demo mode) ----------

type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

func (s *ZapSink) Record(action, entity string, entityID *uint, metadata any) error {
	fields := []zap.Field{
		zap.String("action", action),
		zap.String("entity", entity),
	}
	if entityID != nil {
		fields = append(fields, zap.Uint("entity_id", *entityID))
	}
	if metadata != nil {
		fields = append(fields, zap.Any("metadata", metadata))
	}

	s.log.Info("audit", fields...)
	return nil
}
