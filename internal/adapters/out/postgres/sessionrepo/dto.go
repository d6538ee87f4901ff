// Package sessionrepo persists conversations: one row per session, plus
// its cart lines and transcript messages in child tables.
package sessionrepo

import (
	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO is the sessions row. Cart lines and messages hang off it and
// are deleted with it.
type SessionDTO struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Status            string        `gorm:"type:varchar(32);not null"`
	Address           string        `gorm:"type:text"`
	PendingSuggestion string        `gorm:"type:varchar(255)"`
	CartLines         []CartLineDTO `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Messages          []MessageDTO  `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (SessionDTO) TableName() string {
	return "sessions"
}

// CartLineDTO keeps first-mention order through Position.
type CartLineDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"type:int;not null"`
	Item      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"type:int;not null"`
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// MessageDTO is one transcript entry. Transcripts only grow, so Position is
// also the number of earlier messages.
type MessageDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_session_position,priority:1"`
	Position  int       `gorm:"type:int;not null;index:idx_messages_session_position,priority:2"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Content   string    `gorm:"type:text;not null"`
}

func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(s *session.Session) SessionDTO {
	id := s.ID().Google()
	pending, _ := s.PendingSuggestion()

	return SessionDTO{
		ID:                id,
		Status:            s.Status().String(),
		Address:           s.Cart().Address(),
		PendingSuggestion: pending,
		CartLines:         cartLinesFromDomain(id, s.Cart().Lines()),
		Messages:          messagesFromDomain(id, s.Transcript(), 0),
	}
}

func cartLinesFromDomain(sessionID uuid.UUID, lines []cart.Line) []CartLineDTO {
	dtos := make([]CartLineDTO, 0, len(lines))
	for i, l := range lines {
		dtos = append(dtos, CartLineDTO{SessionID: sessionID, Position: i, Item: l.Item, Quantity: l.Quantity})
	}
	return dtos
}

// messagesFromDomain converts transcript[from:].
func messagesFromDomain(sessionID uuid.UUID, transcript []session.Message, from int) []MessageDTO {
	if from >= len(transcript) {
		return nil
	}
	dtos := make([]MessageDTO, 0, len(transcript)-from)
	for i := from; i < len(transcript); i++ {
		dtos = append(dtos, MessageDTO{
			SessionID: sessionID,
			Position:  i,
			Role:      string(transcript[i].Role),
			Content:   transcript[i].Content,
		})
	}
	return dtos
}

func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := session.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.CartLines))
	for _, l := range dto.CartLines {
		line, lineErr := cart.NewLine(l.Item, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}
	c, err := cart.Restore(lines, dto.Address)
	if err != nil {
		return nil, err
	}

	transcript := make([]session.Message, 0, len(dto.Messages))
	for _, m := range dto.Messages {
		transcript = append(transcript, session.Message{Role: session.Role(m.Role), Content: m.Content})
	}

	return session.RestoreSession(id, c, transcript, status, dto.PendingSuggestion)
}
