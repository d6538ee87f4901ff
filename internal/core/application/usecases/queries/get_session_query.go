package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery reads one conversation with the orders it placed.
type GetSessionQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

type GetSessionQueryResponse struct {
	ID                kernel.UUID
	Status            string
	Transcript        []session.Message
	Cart              []cart.Line
	Address           string
	PendingSuggestion string
	Orders            []OrderSummary
}

type OrderSummary struct {
	ID         kernel.UUID
	Receipt    []string
	Total      kernel.Money
	AgentID    string
	ETAMinutes int
	Status     string
}

type GetSessionQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetSessionQueryHandler(uowFactory ReadUoWFactory) GetSessionQueryHandler {
	return GetSessionQueryHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for an unknown session.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	var resp GetSessionQueryResponse
	err := read(ctx, h.uowFactory, func(uow ReadUoW) error {
		s, err := uow.SessionRepository().Get(ctx, query.SessionID())
		if err != nil {
			return err
		}
		orders, err := uow.OrderRepository().GetAllBySession(ctx, s.ID())
		if err != nil {
			return err
		}

		pending, _ := s.PendingSuggestion()
		resp = GetSessionQueryResponse{
			ID:                s.ID(),
			Status:            s.Status().String(),
			Transcript:        s.Transcript(),
			Cart:              s.Cart().Lines(),
			Address:           s.Cart().Address(),
			PendingSuggestion: pending,
			Orders:            make([]OrderSummary, 0, len(orders)),
		}
		for _, o := range orders {
			resp.Orders = append(resp.Orders, OrderSummary{
				ID:         o.ID(),
				Receipt:    o.ReceiptLines(),
				Total:      o.Total(),
				AgentID:    o.AgentID(),
				ETAMinutes: o.ETAMinutes(),
				Status:     o.Status().String(),
			})
		}
		return nil
	})
	if err != nil {
		return GetSessionQueryResponse{}, err
	}
	return resp, nil
}
