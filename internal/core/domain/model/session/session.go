package session

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is the aggregate root for one conversation.
//
// The pending suggestion is the catalog item last offered by the semantic
// fallback; a plain "yes" on the next turn adds it to the cart.
type Session struct {
	id         kernel.UUID
	cart       *cart.Cart
	transcript []Message
	status     Status
	pending    string
	guard      guard.ConstructorGuard
}

// NewSession starts an empty conversation that is taking an order.
func NewSession(id kernel.UUID) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		id:     id,
		cart:   cart.New(),
		status: TakingOrder,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreSession rebuilds a session from storage.
func RestoreSession(
	id kernel.UUID,
	c *cart.Cart,
	transcript []Message,
	status Status,
	pending string,
) (*Session, error) {
	s, err := NewSession(id)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, m := range transcript {
		if err := m.Role.Validate(); err != nil {
			return nil, err
		}
	}
	if c != nil {
		s.cart = c
	}
	s.transcript = append(s.transcript, transcript...)
	s.status = status
	s.pending = strings.TrimSpace(pending)
	return s, nil
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

// Cart is the live cart; mutations through it change the session.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

func (s *Session) Status() Status {
	return s.status
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []Message {
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Say appends a message to the transcript.
func (s *Session) Say(role Role, content string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.transcript = append(s.transcript, Message{Role: role, Content: content})
	return nil
}

// PendingSuggestion returns the item offered on the previous turn, if any.
func (s *Session) PendingSuggestion() (string, bool) {
	return s.pending, s.pending != ""
}

func (s *Session) Suggest(item string) {
	s.pending = strings.TrimSpace(item)
}

func (s *Session) ClearSuggestion() {
	s.pending = ""
}

// StartNewOrder reopens a confirmed session for the next order. It is a
// no-op for a session that is already taking an order.
func (s *Session) StartNewOrder() error {
	if s.status == TakingOrder {
		return nil
	}
	next, err := s.status.StartNewOrder()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

// BeginFinalize locks the cart for checkout.
func (s *Session) BeginFinalize() error {
	next, err := s.status.BeginFinalize()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

// Confirm completes checkout and empties the cart.
func (s *Session) Confirm() error {
	next, err := s.status.Confirm()
	if err != nil {
		return err
	}
	s.status = next
	s.cart.Clear()
	s.pending = ""
	return nil
}

// Reopen abandons a checkout attempt; the cart is kept.
func (s *Session) Reopen() error {
	next, err := s.status.Reopen()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}
