package http

import (
	"errors"
	"net/http"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type registerUserRequest struct {
	Phone    string   `json:"phone_number"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Image    string   `json:"image"`
	Address  string   `json:"address"`
	Lon      *float64 `json:"lon"`
	Lat      *float64 `json:"lat"`
	Location string   `json:"location"`
}

// RegisterUser handles POST /users/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req registerUserRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID, req.Phone, req.Password, req.Name, user.Role(req.Role))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid registration data", err)
	}

	cmd.SetImageRef(req.Image)
	cmd.SetAddress(req.Address)
	// Malformed or non-finite coordinates mean no stored point, not a failed
	// registration.
	if location, ok := optionalGeoPoint(req.Lon, req.Lat, req.Location); ok {
		_ = cmd.SetLocation(location)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondAppError(ctx, "Failed to register user", err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user_id": userID.String(),
	})
}

type loginRequest struct {
	Phone    string `json:"phone_number"`
	Password string `json:"password"`
}

// LoginUser handles POST /users/login.
func (s *Server) LoginUser(ctx echo.Context) error {
	return s.login(ctx, queries.AccountKindUser)
}

// LoginRider handles POST /riders/login.
func (s *Server) LoginRider(ctx echo.Context) error {
	return s.login(ctx, queries.AccountKindRider)
}

func (s *Server) login(ctx echo.Context, kind queries.AccountKind) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	query, err := queries.NewAuthenticateQuery(kind, req.Phone, req.Password)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid login data", err)
	}

	profile, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondLoginError(ctx, err)
	}

	token, err := s.issueToken(profile)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to issue token", err)
	}

	account := echo.Map{
		"id":           profile.ID.String(),
		"name":         profile.Name,
		"phone_number": profile.Phone,
	}
	if profile.ImageRef != "" {
		account["image"] = profile.ImageRef
	}
	if kind == queries.AccountKindRider {
		account["vehicle_registration"] = profile.VehicleRegistration
	} else {
		account["role"] = profile.Role
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
		"account": account,
	})
}

// respondLoginError keeps the source behavior of distinct 401 messages for
// "no account" versus "wrong password", unless configured to collapse them
// into one opaque message.
func (s *Server) respondLoginError(ctx echo.Context, err error) error {
	if s.unifyLoginErrors {
		return respondError(ctx, http.StatusUnauthorized, "Invalid phone number or password", nil)
	}

	switch {
	case errors.Is(err, queries.ErrAccountNotFound):
		return respondError(ctx, http.StatusUnauthorized, "Account not found", err)
	case errors.Is(err, queries.ErrInvalidCredentials):
		return respondError(ctx, http.StatusUnauthorized, "Invalid credentials", err)
	default:
		return respondError(ctx, http.StatusInternalServerError, "Login failed", err)
	}
}

// SearchUserByPhone handles GET /users/search/:phone_number.
func (s *Server) SearchUserByPhone(ctx echo.Context) error {
	query, err := queries.NewFindUserByPhoneQuery(ctx.Param("phone_number"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Phone number is required", err)
	}

	profile, err := s.findUserByPhoneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondAppError(ctx, "Failed to find user", err)
	}

	out := partyJSON{
		ID:       profile.ID.String(),
		Name:     profile.Name,
		Phone:    profile.Phone,
		ImageRef: profile.ImageRef,
		Address:  profile.Address,
		Role:     profile.Role,
	}
	if profile.Location != nil {
		out.Location = geoToJSON(*profile.Location)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "User found",
		"user":    out,
	})
}

type updateUserRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserRole handles PUT /users/update_type/:user_id.
func (s *Server) UpdateUserRole(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("user_id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid user id", err)
	}

	var req updateUserRoleRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	cmd, err := commands.NewUpdateUserRoleCommand(userID, user.Role(req.Role))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid role", err)
	}

	if err = s.updateUserRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondAppError(ctx, "Failed to update role", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Role updated successfully",
		"user_id": userID.String(),
		"role":    req.Role,
	})
}

type createDeliveryRequest struct {
	SenderID      string `json:"sender_id"`
	ReceiverPhone string `json:"receiver_phone"`
	ProductImage  string `json:"product_image"`
	Items         []struct {
		Description string `json:"description"`
		Image       string `json:"image"`
	} `json:"items"`
}

// CreateDelivery handles POST /users/deliveries/create.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req createDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid sender id", err)
	}

	items := make([]commands.DeliveryItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.DeliveryItemInput{
			Description: item.Description,
			ImageRef:    item.Image,
		}
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, senderID, req.ReceiverPhone, req.ProductImage, items)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid delivery data", err)
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondAppError(ctx, "Failed to create delivery", err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message":     "Delivery created successfully",
		"delivery_id": deliveryID.String(),
	})
}

// GetMyDeliveries handles GET /users/deliveries/my. The caller identifies
// itself by user_id, phone_number, or both.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	var userID *kernel.UUID
	if raw := ctx.QueryParam("user_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, "Invalid user id", err)
		}
		userID = &parsed
	}

	query, err := queries.NewGetMyDeliveriesQuery(userID, ctx.QueryParam("phone_number"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "user_id or phone_number is required", err)
	}

	views, err := s.getMyDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondAppError(ctx, "Failed to retrieve deliveries", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":    "Deliveries retrieved successfully",
		"deliveries": deliveriesToJSON(views),
	})
}

// GetDeliveryStatus handles GET /users/deliveries/status/:delivery_id.
func (s *Server) GetDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("delivery_id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid delivery id", err)
	}

	query, err := queries.NewGetDeliveryStatusQuery(deliveryID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid delivery id", err)
	}

	status, err := s.getDeliveryStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondAppError(ctx, "Failed to retrieve delivery status", err)
	}

	response := echo.Map{
		"message":         "Delivery status retrieved successfully",
		"delivery_id":     status.DeliveryID.String(),
		"delivery_status": status.Status.String(),
		"status_images":   statusImagesToJSON(status.StatusImages),
		"updated_at":      status.UpdatedAt,
	}
	if status.Rider != nil {
		assigned := riderToJSON(*status.Rider)
		response["rider"] = assigned
	}

	return ctx.JSON(http.StatusOK, response)
}
