package audit

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

// Logger persists events into audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Name() string {
	return "audit_log"
}

func (l *Logger) Handle(ctx context.Context, ev Event) error {
	return l.Log(ctx, ev.UserID, ev.Action, ev.Entity, ev.EntityID, ev.Metadata)
}

func (l *Logger) Log(
	ctx context.Context,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var meta datatypes.JSON
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	log := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	}

	return l.db.WithContext(ctx).Create(&log).Error
}
