// Package fleetrepo persists delivery agents.
package fleetrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/kernel"
)

// AgentDTO is one agents row. Position is the roster order, fixed when the
// roster is seeded; dispatch tie-breaks read agents in that order.
type AgentDTO struct {
	ID        string      `gorm:"type:varchar(32);primaryKey"`
	Position  int         `gorm:"type:int;not null;index"`
	Name      string      `gorm:"type:varchar(255);not null"`
	Vehicle   string      `gorm:"type:varchar(255);not null"`
	Capacity  string      `gorm:"type:varchar(16);not null"`
	Location  LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status    string      `gorm:"type:varchar(16);not null;index"`
	BusyUntil *time.Time  `gorm:"type:timestamptz"`
}

func (AgentDTO) TableName() string {
	return "agents"
}

type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

func fromDomain(a *fleet.Agent, position int) AgentDTO {
	return AgentDTO{
		ID:       a.ID(),
		Position: position,
		Name:     a.Name(),
		Vehicle:  a.Vehicle(),
		Capacity: a.Capacity().String(),
		Location: LocationDTO{
			X: a.Location().X(),
			Y: a.Location().Y(),
		},
		Status:    a.Status().String(),
		BusyUntil: a.BusyUntil(),
	}
}

func toDomain(dto AgentDTO) (*fleet.Agent, error) {
	capacity, err := fleet.ParseCapacity(dto.Capacity)
	if err != nil {
		return nil, err
	}

	status, err := fleet.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	return fleet.RestoreAgent(dto.ID, dto.Name, dto.Vehicle, capacity, loc, status, dto.BusyUntil)
}
