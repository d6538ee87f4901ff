package sessionrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionRepository implements ports.SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the session together with its cart lines and messages.
func (r *GormSessionRepository) Add(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(s.ID().String(), s)
	return nil
}

// Update rewrites the session row and cart lines, and appends the messages
// that are not stored yet.
func (r *GormSessionRepository) Update(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	db := r.db.WithContext(ctx)

	result := db.Model(&SessionDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":             dto.Status,
		"address":            dto.Address,
		"pending_suggestion": dto.PendingSuggestion,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", s.ID().String())
	}

	if err := db.Where("session_id = ?", dto.ID).Delete(&CartLineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.CartLines) > 0 {
		if err := db.Create(&dto.CartLines).Error; err != nil {
			return err
		}
	}

	var stored int64
	if err := db.Model(&MessageDTO{}).Where("session_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}
	if fresh := messagesFromDomain(dto.ID, s.Transcript(), int(stored)); len(fresh) > 0 {
		if err := db.Create(&fresh).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(s.ID().String(), s)
	return nil
}

// Get loads a session with its cart and full transcript.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.load(ctx, id)
}

// GetForUpdate takes a row lock on the session before loading it. Without a
// transaction the lock is released as soon as the statement ends.
func (r *GormSessionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var locked SessionDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&locked, "id = ?", id.Google()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}
	return r.load(ctx, id)
}

func (r *GormSessionRepository) load(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	var dto SessionDTO
	err := r.db.WithContext(ctx).
		Preload("CartLines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Google()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
