package fleetrepo

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFleetRepository implements ports.FleetRepository using GORM.
type GormFleetRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormFleetRepository(db *gorm.DB, tracker aggregateTracker) *GormFleetRepository {
	return &GormFleetRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetAll returns the roster in seeded order.
func (r *GormFleetRepository) GetAll(ctx context.Context) ([]*fleet.Agent, error) {
	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormFleetRepository) GetAllDueForRelease(ctx context.Context, now time.Time) ([]*fleet.Agent, error) {
	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND busy_until <= ?", fleet.EnRoute.String(), now).
		Order("position").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// Update writes the status and busy window; roster data never changes.
func (r *GormFleetRepository) Update(ctx context.Context, a *fleet.Agent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&AgentDTO{}).Where("id = ?", a.ID()).Updates(map[string]any{
		"status":     a.Status().String(),
		"busy_until": a.BusyUntil(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("agent", a.ID())
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

// Seed inserts the roster, skipping agents that already exist.
func Seed(ctx context.Context, db *gorm.DB, roster []*fleet.Agent) error {
	if len(roster) == 0 {
		return nil
	}
	dtos := make([]AgentDTO, 0, len(roster))
	for i, a := range roster {
		dtos = append(dtos, fromDomain(a, i))
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dtos).Error
}

func toDomainList(dtos []AgentDTO) ([]*fleet.Agent, error) {
	agents := make([]*fleet.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}
