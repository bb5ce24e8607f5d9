package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// Sink persists audit events.
type Sink interface {
	Record(ctx context.Context, ev Event) error
}

// Logger writes audit events to the relational audit database.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Record(ctx context.Context, ev Event) error {
	row := models.AuditLog{
		Actor:    ev.Actor,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: encodeMetadata(ev.Metadata),
	}
	return l.db.WithContext(ctx).Create(&row).Error
}

type Filter struct {
	Action string
	Entity string
	Actor  string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.Actor != "" {
		q = q.Where("actor = ?", f.Actor)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// LogSink writes events to the process log when no audit database is set.
type LogSink struct{}

func (LogSink) Record(_ context.Context, ev Event) error {
	log.Printf("audit actor=%s action=%s entity=%s id=%s meta=%s",
		ev.Actor, ev.Action, ev.Entity, ev.EntityID, encodeMetadata(ev.Metadata))
	return nil
}

func encodeMetadata(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}
