package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/inventory"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

const (
	replyAddedPrefix   = "Added to cart: "
	replySuggestion    = "I didn't find that exactly, but we have %s (%s). Should I add that? "
	replyNotUnderstood = "I didn't catch that. You can ask for fried chicken, pizza, or sides. "
	replyAddress       = "Updated address to: %s. "
	replyIdle          = "Anything else?"
)

var finalizePhrases = []string{"confirm", "place order"}

type (
	// Parser turns an utterance into cart lines and an optional address.
	Parser interface {
		Parse(utterance string) services.Intent
	}

	// Suggester proposes a menu item when the parser found nothing.
	Suggester interface {
		Suggest(query string) (services.Suggestion, bool)
	}

	// Finalizer checks out a session's cart against stock and the fleet.
	Finalizer interface {
		Finalize(s *session.Session, stock *inventory.Stock, agents []*fleet.Agent) (services.Checkout, error)
	}
)

// TurnResult is what the customer sees after one utterance.
type TurnResult struct {
	Reply   string
	Status  session.Status
	Outcome services.Outcome
	Receipt *services.Receipt
	Cart    []cart.Line
	Address string
}

// ProcessTurnCommandHandler runs one conversational turn:
//
//  1. parsed menu items are merged into the cart; otherwise a bare "yes"
//     accepts the pending suggestion, and anything else gets a suggestion
//     or a hint
//  2. a parsed address replaces the cart address
//  3. "confirm" or "place order" runs checkout, whose message replaces the reply
//  4. both sides of the exchange are appended to the transcript
//
// Business outcomes never surface as errors; only storage failures and
// unknown sessions do.
type ProcessTurnCommandHandler struct {
	uowFactory UoWFactory
	menu       *catalog.Catalog
	parser     Parser
	suggester  Suggester
	finalizer  Finalizer
	logger     *zap.Logger
}

func NewProcessTurnCommandHandler(
	uowFactory UoWFactory,
	menu *catalog.Catalog,
	parser Parser,
	suggester Suggester,
	finalizer Finalizer,
	logger *zap.Logger,
) (ProcessTurnCommandHandler, error) {
	switch {
	case uowFactory == nil:
		return ProcessTurnCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	case menu == nil:
		return ProcessTurnCommandHandler{}, errs.NewValueIsRequiredError("menu")
	case parser == nil:
		return ProcessTurnCommandHandler{}, errs.NewValueIsRequiredError("parser")
	case suggester == nil:
		return ProcessTurnCommandHandler{}, errs.NewValueIsRequiredError("suggester")
	case finalizer == nil:
		return ProcessTurnCommandHandler{}, errs.NewValueIsRequiredError("finalizer")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return ProcessTurnCommandHandler{
		uowFactory: uowFactory,
		menu:       menu,
		parser:     parser,
		suggester:  suggester,
		finalizer:  finalizer,
		logger:     logger,
	}, nil
}

func (h ProcessTurnCommandHandler) Handle(ctx context.Context, cmd ProcessTurnCommand) (TurnResult, error) {
	if err := cmd.Validate(); err != nil {
		return TurnResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TurnResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessions := uow.SessionRepository()
	s, err := sessions.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return TurnResult{}, err
	}
	if err = s.StartNewOrder(); err != nil {
		return TurnResult{}, err
	}

	utterance := cmd.Utterance()
	lowered := strings.ToLower(utterance)
	intent := h.parser.Parse(utterance)

	finalize := isFinalizeRequest(lowered)

	var reply strings.Builder
	h.applyItems(s, utterance, intent, finalize, &reply)

	if intent.Address != "" {
		if err = s.Cart().SetAddress(intent.Address); err != nil {
			return TurnResult{}, err
		}
		fmt.Fprintf(&reply, replyAddress, intent.Address)
	}

	result := TurnResult{}
	text := reply.String()
	if finalize {
		checkout, err := h.checkout(ctx, uow, s)
		if err != nil {
			return TurnResult{}, err
		}
		text = checkout.Message
		result.Outcome = checkout.Outcome
		result.Receipt = checkout.Receipt
	}
	if text == "" {
		text = replyIdle
	}

	if err = s.Say(session.RoleUser, utterance); err != nil {
		return TurnResult{}, err
	}
	if err = s.Say(session.RoleAssistant, text); err != nil {
		return TurnResult{}, err
	}

	if err = sessions.Update(ctx, s); err != nil {
		return TurnResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return TurnResult{}, err
	}

	result.Reply = text
	result.Status = s.Status()
	result.Cart = s.Cart().Lines()
	result.Address = s.Cart().Address()
	return result, nil
}

// applyItems updates the cart from the parsed intent. On a finalize request
// the checkout message replaces the reply, so no suggestion is offered: one the
// customer never saw must not be accepted by a later "yes".
func (h ProcessTurnCommandHandler) applyItems(
	s *session.Session,
	utterance string,
	intent services.Intent,
	finalize bool,
	reply *strings.Builder,
) {
	known := make([]cart.Line, 0, len(intent.Items))
	for _, l := range intent.Items {
		if h.menu.Contains(l.Item) {
			known = append(known, l)
		}
	}

	switch {
	case len(known) > 0:
		s.ClearSuggestion()
		writeAdded(reply, s.Cart().Merge(known))
	case len(intent.Items) > 0:
		// Parsed, but nothing on the menu: say nothing about items.
	case isAffirmation(utterance):
		pending, ok := s.PendingSuggestion()
		if !ok {
			return
		}
		s.ClearSuggestion()
		writeAdded(reply, s.Cart().Merge([]cart.Line{{Item: pending, Quantity: 1}}))
	case finalize:
		s.ClearSuggestion()
	default:
		suggestion, ok := h.suggester.Suggest(utterance)
		if !ok {
			s.ClearSuggestion()
			reply.WriteString(replyNotUnderstood)
			return
		}
		s.Suggest(suggestion.Name)
		fmt.Fprintf(reply, replySuggestion, suggestion.Name, suggestion.Description)
	}
}

func (h ProcessTurnCommandHandler) checkout(ctx context.Context, uow UoW, s *session.Session) (services.Checkout, error) {
	ids := make([]string, 0)
	for _, l := range s.Cart().Lines() {
		if entry, ok := h.menu.Get(l.Item); ok {
			ids = append(ids, entry.ID())
		}
	}

	stockRepo := uow.InventoryRepository()
	stock, err := stockRepo.GetForUpdate(ctx, ids)
	if err != nil {
		return services.Checkout{}, err
	}

	fleetRepo := uow.FleetRepository()
	agents, err := fleetRepo.GetAll(ctx)
	if err != nil {
		return services.Checkout{}, err
	}

	checkout, err := h.finalizer.Finalize(s, stock, agents)
	if err != nil {
		return services.Checkout{}, err
	}

	if checkout.Outcome != services.OutcomeConfirmed {
		h.logger.Info("checkout declined",
			zap.Stringer("session_id", s.ID()),
			zap.Stringer("outcome", checkout.Outcome),
			zap.Strings("missing", checkout.Missing),
		)
		return checkout, nil
	}

	if err = stockRepo.Update(ctx, stock); err != nil {
		return services.Checkout{}, err
	}
	if err = fleetRepo.Update(ctx, checkout.Agent); err != nil {
		return services.Checkout{}, err
	}
	if err = uow.OrderRepository().Add(ctx, checkout.Order); err != nil {
		return services.Checkout{}, err
	}

	h.logger.Info("order confirmed",
		zap.Stringer("session_id", s.ID()),
		zap.Stringer("order_id", checkout.Order.ID()),
		zap.String("agent_id", checkout.Agent.ID()),
		zap.Int("eta_minutes", checkout.Order.ETAMinutes()),
		zap.Stringer("total", checkout.Order.Total()),
	)
	return checkout, nil
}

func writeAdded(reply *strings.Builder, added []string) {
	if len(added) == 0 {
		return
	}
	reply.WriteString(replyAddedPrefix)
	reply.WriteString(strings.Join(added, ", "))
	reply.WriteString(". ")
}

func isFinalizeRequest(lowered string) bool {
	for _, p := range finalizePhrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// isAffirmation reports whether the utterance contains the word "yes".
func isAffirmation(utterance string) bool {
	words := strings.FieldsFunc(strings.ToLower(utterance), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	return slices.Contains(words, "yes")
}
