// Package orderrepo persists confirmed orders.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO stores the receipt as issued, one text array element per line.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SessionID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Receipt     pq.StringArray `gorm:"type:text[];not null"`
	TotalCents  int64          `gorm:"type:bigint;not null"`
	AgentID     string         `gorm:"type:varchar(32);not null;index"`
	ETAMinutes  int            `gorm:"type:int;not null"`
	Address     string         `gorm:"type:text;not null"`
	Destination LocationDTO    `gorm:"embedded;embeddedPrefix:destination_"`
	PlacedAt    time.Time      `gorm:"type:timestamptz;not null"`
	Status      string         `gorm:"type:varchar(16);not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Google(),
		SessionID:  o.SessionID().Google(),
		Receipt:    pq.StringArray(o.ReceiptLines()),
		TotalCents: o.Total().Cents(),
		AgentID:    o.AgentID(),
		ETAMinutes: o.ETAMinutes(),
		Address:    o.Address(),
		Destination: LocationDTO{
			X: o.Destination().X(),
			Y: o.Destination().Y(),
		},
		PlacedAt: o.PlacedAt(),
		Status:   o.Status().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	sessionID, err := kernel.UUIDFromGoogle(dto.SessionID)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewLocation(dto.Destination.X, dto.Destination.Y)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		sessionID,
		dto.Receipt,
		kernel.Money(dto.TotalCents),
		dto.AgentID,
		dto.ETAMinutes,
		dto.Address,
		destination,
		dto.PlacedAt,
		status,
	)
}
