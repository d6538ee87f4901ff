package inventoryrepo

import (
	"context"

	"orderdesk/internal/core/domain/model/inventory"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements ports.InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormInventoryRepository) Get(ctx context.Context) (*inventory.Stock, error) {
	var dtos []StockDTO
	if err := r.db.WithContext(ctx).Order("item_id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomain(dtos)
}

// GetForUpdate takes row locks in item id order so concurrent checkouts
// cannot deadlock on each other. Ids without a row read as zero stock.
func (r *GormInventoryRepository) GetForUpdate(ctx context.Context, ids []string) (*inventory.Stock, error) {
	if len(ids) == 0 {
		return inventory.NewStock(nil)
	}

	var dtos []StockDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("item_id IN ?", ids).
		Order("item_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomain(dtos)
}

// Update upserts every level held by stock.
func (r *GormInventoryRepository) Update(ctx context.Context, stock *inventory.Stock) error {
	dtos := fromDomain(stock)
	if len(dtos) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(&dtos).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("inventory", stock)
	return nil
}

// Seed inserts levels for items that have no row yet. Existing levels are
// left alone so a restart does not refill the shelves.
func Seed(ctx context.Context, db *gorm.DB, stock *inventory.Stock) error {
	dtos := fromDomain(stock)
	if len(dtos) == 0 {
		return nil
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dtos).Error
}
