package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	startSessionHandler commands.StartSessionCommandHandler
	setAddressHandler   commands.SetAddressCommandHandler
	processTurnHandler  commands.ProcessTurnCommandHandler

	// Query handlers
	getSessionHandler   queries.GetSessionQueryHandler
	getMenuHandler      queries.GetMenuQueryHandler
	getInventoryHandler queries.GetInventoryQueryHandler
	getFleetHandler     queries.GetFleetQueryHandler

	logger *zap.Logger
}

func NewServer(
	startSessionHandler commands.StartSessionCommandHandler,
	setAddressHandler commands.SetAddressCommandHandler,
	processTurnHandler commands.ProcessTurnCommandHandler,
	getSessionHandler queries.GetSessionQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getFleetHandler queries.GetFleetQueryHandler,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		startSessionHandler: startSessionHandler,
		setAddressHandler:   setAddressHandler,
		processTurnHandler:  processTurnHandler,
		getSessionHandler:   getSessionHandler,
		getMenuHandler:      getMenuHandler,
		getInventoryHandler: getInventoryHandler,
		getFleetHandler:     getFleetHandler,
		logger:              logger,
	}
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	id := kernel.NewUUID()

	cmd, err := commands.NewStartSessionCommand(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid session")
	}
	if err := s.startSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to start session")
	}

	return ctx.JSON(http.StatusCreated, SessionCreated{Id: id.Google()})
}

// GetSession handles GET /api/v1/sessions/{sessionId}.
func (s *Server) GetSession(ctx echo.Context, sessionId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(sessionId)
	if err != nil {
		return s.fail(ctx, err, "Invalid session id")
	}
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid session id")
	}

	res, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve session")
	}

	transcript := make([]Message, 0, len(res.Transcript))
	for _, m := range res.Transcript {
		transcript = append(transcript, Message{Role: string(m.Role), Content: m.Content})
	}
	orders := make([]OrderSummary, 0, len(res.Orders))
	for _, o := range res.Orders {
		orders = append(orders, OrderSummary{
			Id:         o.ID.Google(),
			Receipt:    o.Receipt,
			Total:      o.Total.Dollars(),
			AgentId:    o.AgentID,
			EtaMinutes: o.ETAMinutes,
			Status:     o.Status,
		})
	}

	return ctx.JSON(http.StatusOK, Session{
		Id:                res.ID.Google(),
		Status:            res.Status,
		Transcript:        transcript,
		Cart:              toCartLines(res.Cart),
		Address:           optional(res.Address),
		PendingSuggestion: optional(res.PendingSuggestion),
		Orders:            orders,
	})
}

// ProcessTurn handles POST /api/v1/sessions/{sessionId}/turns.
func (s *Server) ProcessTurn(ctx echo.Context, sessionId openapi_types.UUID) error {
	var req TurnRequest
	if err := bindValidated(ctx, "TurnRequest", &req); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(sessionId)
	if err != nil {
		return s.fail(ctx, err, "Invalid session id")
	}
	cmd, err := commands.NewProcessTurnCommand(id, req.Utterance)
	if err != nil {
		return s.fail(ctx, err, "Invalid turn")
	}

	res, err := s.processTurnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to process turn")
	}

	turn := Turn{
		Reply:   res.Reply,
		Status:  res.Status.String(),
		Cart:    toCartLines(res.Cart),
		Address: optional(res.Address),
	}
	if res.Outcome != 0 {
		outcome := res.Outcome.String()
		turn.Outcome = &outcome
	}
	if r := res.Receipt; r != nil {
		turn.Receipt = &Receipt{
			OrderId:    r.OrderID.Google(),
			Lines:      r.Lines,
			Total:      r.Total.Dollars(),
			Driver:     r.Driver,
			Vehicle:    r.Vehicle,
			EtaMinutes: r.ETAMinutes,
			Text:       r.String(),
		}
	}

	return ctx.JSON(http.StatusOK, turn)
}

// SetAddress handles PUT /api/v1/sessions/{sessionId}/address.
func (s *Server) SetAddress(ctx echo.Context, sessionId openapi_types.UUID) error {
	var req AddressRequest
	if err := bindValidated(ctx, "AddressRequest", &req); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	id, err := kernel.UUIDFromGoogle(sessionId)
	if err != nil {
		return s.fail(ctx, err, "Invalid session id")
	}
	cmd, err := commands.NewSetAddressCommand(id, req.Address)
	if err != nil {
		return s.fail(ctx, err, "Invalid address")
	}

	if err := s.setAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to set address")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve menu")
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			Id:          item.ID,
			Name:        item.Name,
			Price:       item.Price.Dollars(),
			Description: item.Description,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetInventory handles GET /api/v1/inventory.
func (s *Server) GetInventory(ctx echo.Context) error {
	items, err := s.getInventoryHandler.Handle(ctx.Request().Context(), queries.NewGetInventoryQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve inventory")
	}

	response := make([]StockLevel, len(items))
	for i, item := range items {
		response[i] = StockLevel{Id: item.ID, Name: item.Name, Stock: item.Stock}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetFleet handles GET /api/v1/fleet.
func (s *Server) GetFleet(ctx echo.Context) error {
	agents, err := s.getFleetHandler.Handle(ctx.Request().Context(), queries.NewGetFleetQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve fleet")
	}

	response := make([]Agent, len(agents))
	for i, a := range agents {
		response[i] = Agent{
			Id:       a.ID,
			Name:     a.Name,
			Vehicle:  a.Vehicle,
			Capacity: a.Capacity,
			Status:   a.Status,
			Location: Location{
				X: int(a.Location.X()),
				Y: int(a.Location.Y()),
			},
			BusyUntil: a.BusyUntil,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// fail maps err to a status code and writes an Error body.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error(message, zap.Error(err), zap.String("path", ctx.Path()))
	} else {
		message += ": " + err.Error()
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bindValidated checks the body against the contract, then hands it to
// echo's binder. BodyLimit has already capped what ReadAll can see.
func bindValidated(ctx echo.Context, schemaName string, dest any) error {
	req := ctx.Request()
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validateBody(schemaName, raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Body = io.NopCloser(bytes.NewReader(raw))
	return ctx.Bind(dest)
}

func toCartLines(lines []cart.Line) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLine{Item: l.Item, Quantity: l.Quantity})
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
