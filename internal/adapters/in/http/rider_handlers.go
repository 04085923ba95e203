package http

import (
	"net/http"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/delivery"
	"swiftdrop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type registerRiderRequest struct {
	Phone               string   `json:"phone_number"`
	Password            string   `json:"password"`
	Name                string   `json:"name"`
	VehicleRegistration string   `json:"vehicle_registration"`
	Image               string   `json:"image"`
	Lon                 *float64 `json:"lon"`
	Lat                 *float64 `json:"lat"`
	Location            string   `json:"location"`
}

// RegisterRider handles POST /riders/register.
func (s *Server) RegisterRider(ctx echo.Context) error {
	var req registerRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRiderCommand(
		riderID, req.Phone, req.Password, req.Name, req.VehicleRegistration)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid registration data", err)
	}

	cmd.SetImageRef(req.Image)
	if location, ok := optionalGeoPoint(req.Lon, req.Lat, req.Location); ok {
		_ = cmd.SetLocation(location)
	}

	if err = s.registerRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondAppError(ctx, "Failed to register rider", err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message":  "Rider registered successfully",
		"rider_id": riderID.String(),
	})
}

// GetAvailableDeliveries handles GET /riders/available-deliveries.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	views, err := s.getAvailableDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableDeliveriesQuery())
	if err != nil {
		return respondAppError(ctx, "Failed to retrieve available deliveries", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":    "Available deliveries retrieved successfully",
		"deliveries": deliveriesToJSON(views),
	})
}

type updateDeliveryStatusRequest struct {
	Status  string `json:"delivery_status"`
	RiderID string `json:"rider_id"`
}

// UpdateDeliveryStatus handles PUT /riders/deliveries/:delivery_id/status,
// the write path of the lifecycle engine.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("delivery_id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid delivery id", err)
	}

	var req updateDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	var riderID *kernel.UUID
	if req.RiderID != "" {
		parsed, idErr := kernel.UUIDFromString(req.RiderID)
		if idErr != nil {
			return respondError(ctx, http.StatusBadRequest, "Invalid rider id", idErr)
		}
		riderID = &parsed
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		deliveryID, delivery.Status(req.Status), riderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid status data", err)
	}

	if err = s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondAppError(ctx, "Failed to update delivery status", err)
	}

	response := echo.Map{
		"message":         "Delivery status updated successfully",
		"delivery_id":     deliveryID.String(),
		"delivery_status": req.Status,
	}
	if riderID != nil {
		response["rider_id"] = riderID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

type appendStatusImageRequest struct {
	Image  string `json:"image"`
	Status string `json:"status"`
}

// AppendStatusImage handles POST /riders/deliveries/:delivery_id/status-image.
func (s *Server) AppendStatusImage(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("delivery_id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid delivery id", err)
	}

	var req appendStatusImageRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	cmd, err := commands.NewAppendStatusImageCommand(
		deliveryID, req.Image, delivery.Status(req.Status))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid status image data", err)
	}

	imageID, err := s.appendStatusImageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondAppError(ctx, "Failed to upload status image", err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message":     "Status image uploaded successfully",
		"image_id":    imageID.String(),
		"delivery_id": deliveryID.String(),
	})
}

// GetRiderDeliveries handles GET /riders/my-deliveries/:rider_id.
func (s *Server) GetRiderDeliveries(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("rider_id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid rider id", err)
	}

	query, err := queries.NewGetRiderDeliveriesQuery(riderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid rider id", err)
	}

	views, err := s.getRiderDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondAppError(ctx, "Failed to retrieve deliveries", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":    "Deliveries retrieved successfully",
		"deliveries": deliveriesToJSON(views),
	})
}

type setRiderLocationRequest struct {
	Lon      *float64 `json:"lon"`
	Lat      *float64 `json:"lat"`
	Location string   `json:"location"`
}

// SetRiderLocation handles PUT /riders/:rider_id/location. Unlike the
// optional points elsewhere, this endpoint requires valid coordinates, either
// discrete lon/lat fields or the textual "<lon> <lat>" form.
func (s *Server) SetRiderLocation(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("rider_id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid rider id", err)
	}

	var req setRiderLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body", err)
	}

	var location kernel.GeoPoint
	if req.Lon != nil && req.Lat != nil {
		location, err = kernel.NewGeoPoint(*req.Lon, *req.Lat)
	} else {
		location, err = kernel.ParseGeoPoint(req.Location)
	}
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Valid coordinates are required", err)
	}

	cmd, err := commands.NewSetRiderLocationCommand(riderID, location)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid location data", err)
	}

	if err = s.setRiderLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondAppError(ctx, "Failed to update location", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Location updated successfully",
		"rider_id": riderID.String(),
		"location": geoToJSON(location),
	})
}

// GetRiderLocation handles GET /riders/:rider_id/location.
func (s *Server) GetRiderLocation(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("rider_id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid rider id", err)
	}

	query, err := queries.NewGetRiderLocationQuery(riderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid rider id", err)
	}

	position, err := s.getRiderLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondAppError(ctx, "Failed to retrieve location", err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Location retrieved successfully",
		"rider_id": position.RiderID.String(),
		"name":     position.Name,
		"location": geoToJSON(position.Location),
	})
}
