// Package inventoryrepo persists stock levels, one row per catalog item.
package inventoryrepo

import (
	"orderdesk/internal/core/domain/model/inventory"
)

type StockDTO struct {
	ItemID   string `gorm:"type:varchar(64);primaryKey"`
	Quantity int    `gorm:"type:int;not null;check:quantity >= 0"`
}

func (StockDTO) TableName() string {
	return "inventory"
}

func fromDomain(stock *inventory.Stock) []StockDTO {
	ids := stock.IDs()
	dtos := make([]StockDTO, 0, len(ids))
	for _, id := range ids {
		dtos = append(dtos, StockDTO{ItemID: id, Quantity: stock.Level(id)})
	}
	return dtos
}

func toDomain(dtos []StockDTO) (*inventory.Stock, error) {
	levels := make(map[string]int, len(dtos))
	for _, dto := range dtos {
		levels[dto.ItemID] = dto.Quantity
	}
	return inventory.NewStock(levels)
}
