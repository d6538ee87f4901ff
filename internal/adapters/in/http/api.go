package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface has one method per operation in openapi.yaml.
type ServerInterface interface {
	// (POST /api/v1/sessions)
	CreateSession(ctx echo.Context) error
	// (GET /api/v1/sessions/{sessionId})
	GetSession(ctx echo.Context, sessionId openapi_types.UUID) error
	// (POST /api/v1/sessions/{sessionId}/turns)
	ProcessTurn(ctx echo.Context, sessionId openapi_types.UUID) error
	// (PUT /api/v1/sessions/{sessionId}/address)
	SetAddress(ctx echo.Context, sessionId openapi_types.UUID) error
	// (GET /api/v1/menu)
	GetMenu(ctx echo.Context) error
	// (GET /api/v1/inventory)
	GetInventory(ctx echo.Context) error
	// (GET /api/v1/fleet)
	GetFleet(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateSession(ctx echo.Context) error {
	return w.Handler.CreateSession(ctx)
}

func (w *ServerInterfaceWrapper) GetSession(ctx echo.Context) error {
	sessionId, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetSession(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) ProcessTurn(ctx echo.Context) error {
	sessionId, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ProcessTurn(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) SetAddress(ctx echo.Context) error {
	sessionId, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetAddress(ctx, sessionId)
}

func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	return w.Handler.GetMenu(ctx)
}

func (w *ServerInterfaceWrapper) GetInventory(ctx echo.Context) error {
	return w.Handler.GetInventory(ctx)
}

func (w *ServerInterfaceWrapper) GetFleet(ctx echo.Context) error {
	return w.Handler.GetFleet(ctx)
}

func bindSessionID(ctx echo.Context) (openapi_types.UUID, error) {
	var sessionId openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return sessionId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sessionId: %s", err))
	}
	return sessionId, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/sessions", wrapper.CreateSession)
	router.GET("/api/v1/sessions/:sessionId", wrapper.GetSession)
	router.POST("/api/v1/sessions/:sessionId/turns", wrapper.ProcessTurn)
	router.PUT("/api/v1/sessions/:sessionId/address", wrapper.SetAddress)
	router.GET("/api/v1/menu", wrapper.GetMenu)
	router.GET("/api/v1/inventory", wrapper.GetInventory)
	router.GET("/api/v1/fleet", wrapper.GetFleet)
}
