// Package http exposes the application over a JSON-over-HTTP surface built on
// echo. Every response carries a message field; error responses add the
// underlying error text. Handlers translate transport input into commands and
// queries and map application errors onto status codes at this boundary.
package http

import (
	"errors"
	"net/http"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the application's command and query
// handlers.
type Server struct {
	registerUserHandler         commands.RegisterUserCommandHandler
	registerRiderHandler        commands.RegisterRiderCommandHandler
	updateUserRoleHandler       commands.UpdateUserRoleCommandHandler
	createDeliveryHandler       commands.CreateDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	appendStatusImageHandler    commands.AppendStatusImageCommandHandler
	setRiderLocationHandler     commands.SetRiderLocationCommandHandler

	authenticateHandler           queries.AuthenticateQueryHandler
	findUserByPhoneHandler        queries.FindUserByPhoneQueryHandler
	getMyDeliveriesHandler        queries.GetMyDeliveriesQueryHandler
	getAvailableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler
	getRiderDeliveriesHandler     queries.GetRiderDeliveriesQueryHandler
	getDeliveryStatusHandler      queries.GetDeliveryStatusQueryHandler
	getRiderLocationHandler       queries.GetRiderLocationQueryHandler

	jwtSecret        string
	unifyLoginErrors bool
}

// NewServer creates the HTTP server. When unifyLoginErrors is set, failed
// logins return one opaque message regardless of whether the phone or the
// password was wrong.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	registerRiderHandler commands.RegisterRiderCommandHandler,
	updateUserRoleHandler commands.UpdateUserRoleCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	appendStatusImageHandler commands.AppendStatusImageCommandHandler,
	setRiderLocationHandler commands.SetRiderLocationCommandHandler,
	authenticateHandler queries.AuthenticateQueryHandler,
	findUserByPhoneHandler queries.FindUserByPhoneQueryHandler,
	getMyDeliveriesHandler queries.GetMyDeliveriesQueryHandler,
	getAvailableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler,
	getRiderDeliveriesHandler queries.GetRiderDeliveriesQueryHandler,
	getDeliveryStatusHandler queries.GetDeliveryStatusQueryHandler,
	getRiderLocationHandler queries.GetRiderLocationQueryHandler,
	jwtSecret string,
	unifyLoginErrors bool,
) *Server {
	return &Server{
		registerUserHandler:           registerUserHandler,
		registerRiderHandler:          registerRiderHandler,
		updateUserRoleHandler:         updateUserRoleHandler,
		createDeliveryHandler:         createDeliveryHandler,
		updateDeliveryStatusHandler:   updateDeliveryStatusHandler,
		appendStatusImageHandler:      appendStatusImageHandler,
		setRiderLocationHandler:       setRiderLocationHandler,
		authenticateHandler:           authenticateHandler,
		findUserByPhoneHandler:        findUserByPhoneHandler,
		getMyDeliveriesHandler:        getMyDeliveriesHandler,
		getAvailableDeliveriesHandler: getAvailableDeliveriesHandler,
		getRiderDeliveriesHandler:     getRiderDeliveriesHandler,
		getDeliveryStatusHandler:      getDeliveryStatusHandler,
		getRiderLocationHandler:       getRiderLocationHandler,
		jwtSecret:                     jwtSecret,
		unifyLoginErrors:              unifyLoginErrors,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	users := e.Group("/users")
	users.POST("/register", s.RegisterUser)
	users.POST("/login", s.LoginUser)
	users.GET("/search/:phone_number", s.SearchUserByPhone)
	users.PUT("/update_type/:user_id", s.UpdateUserRole)
	users.POST("/deliveries/create", s.CreateDelivery)
	users.GET("/deliveries/my", s.GetMyDeliveries)
	users.GET("/deliveries/status/:delivery_id", s.GetDeliveryStatus)

	riders := e.Group("/riders")
	riders.POST("/register", s.RegisterRider)
	riders.POST("/login", s.LoginRider)
	riders.GET("/available-deliveries", s.GetAvailableDeliveries)
	riders.PUT("/deliveries/:delivery_id/status", s.UpdateDeliveryStatus)
	riders.POST("/deliveries/:delivery_id/status-image", s.AppendStatusImage)
	riders.GET("/my-deliveries/:rider_id", s.GetRiderDeliveries)
	riders.PUT("/:rider_id/location", s.SetRiderLocation)
	riders.GET("/:rider_id/location", s.GetRiderLocation)
}

// errorResponse is the error envelope: a human-readable message plus the
// underlying error text.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func respondError(ctx echo.Context, status int, message string, err error) error {
	resp := errorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return ctx.JSON(status, resp)
}

// respondAppError maps an application error onto the HTTP status codes of the
// wire contract: missing/invalid input and a busy rider are 400, unknown
// objects 404, duplicate unique keys 409, everything else 500.
func respondAppError(ctx echo.Context, message string, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, message, err)
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return respondError(ctx, http.StatusConflict, message, err)
	case errors.Is(err, commands.ErrRiderIsBusy),
		errors.Is(err, commands.ErrPasswordIsRequired),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, message, err)
	default:
		return respondError(ctx, http.StatusInternalServerError, message, err)
	}
}
