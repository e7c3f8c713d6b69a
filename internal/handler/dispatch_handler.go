package handler

import (
	"fmt"

	"github.com/DriveSync-Logistics/service-dispatch/internal/application"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/request"
	"github.com/DriveSync-Logistics/service-dispatch/internal/geo"
	"github.com/DriveSync-Logistics/service-dispatch/internal/response"
	"github.com/gin-gonic/gin"
)

// DispatchHandler handles HTTP requests for request intake and trip
// processing.
type DispatchHandler struct {
	service *application.DispatchService
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(service *application.DispatchService) *DispatchHandler {
	return &DispatchHandler{service: service}
}

// RegisterRoutes registers all dispatch routes on the given router group.
func (h *DispatchHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.POST("/requests", h.SubmitRequest)
		api.GET("/requests", h.ListRequests)
		api.POST("/trips", h.ProcessTrip)
		api.GET("/trips", h.ListTrips)
		api.GET("/locations", h.ListLocations)
	}
}

type submitRequestRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Contact          string `json:"contact" binding:"required"`
	GoodsDescription string `json:"goods_description" binding:"required"`
	PickUpPoint      string `json:"pick_up_point" binding:"required"`
	DropOffPoint     string `json:"drop_off_point" binding:"required"`
	Comments         string `json:"comments"`
}

// SubmitRequest handles POST /api/v1/requests. Pickup and drop-off are named
// locations resolved against the static table before the engine is called;
// the resolved client's id is backfilled onto the recorded request.
func (h *DispatchHandler) SubmitRequest(c *gin.Context) {
	var req submitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pickup, ok := resolveLocation(req.PickUpPoint)
	if !ok {
		response.BadRequest(c, fmt.Sprintf("unknown pick-up point: %s", req.PickUpPoint))
		return
	}
	dropoff, ok := resolveLocation(req.DropOffPoint)
	if !ok {
		response.BadRequest(c, fmt.Sprintf("unknown drop-off point: %s", req.DropOffPoint))
		return
	}

	clientRequest := request.New(req.Name, req.Email, req.Contact, req.GoodsDescription,
		pickup, dropoff, req.PickUpPoint, req.DropOffPoint, req.Comments)

	client, err := h.service.AddClientRequest(c.Request.Context(), clientRequest)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := clientRequest.AttachClient(client.AccountID()); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"client_id":   client.AccountID(),
		"client_name": client.Name(),
		"request":     application.ToRequestDTO(clientRequest),
	})
}

// ListRequests handles GET /api/v1/requests.
func (h *DispatchHandler) ListRequests(c *gin.Context) {
	response.Success(c, h.service.ListRequests(c.Request.Context()))
}

type processTripRequest struct {
	ClientID      string   `json:"client_id" binding:"required"`
	DriverID      string   `json:"driver_id" binding:"required"`
	StartLocation string   `json:"start_location"`
	StartLat      *float64 `json:"start_location_lat"`
	StartLon      *float64 `json:"start_location_lon"`
	EndLocation   string   `json:"end_location"`
	EndLat        *float64 `json:"end_location_lat"`
	EndLon        *float64 `json:"end_location_lon"`
	FuelCost      float64  `json:"fuel_cost" binding:"gte=0"`
}

// resolveEndpoint picks a named location when one is given, otherwise the
// raw coordinate override.
func resolveEndpoint(name string, lat, lon *float64) (geo.Point, bool) {
	if name != "" {
		return resolveLocation(name)
	}
	if lat != nil && lon != nil {
		return geo.Point{Lat: *lat, Lon: *lon}, true
	}
	return geo.Point{}, false
}

// ProcessTrip handles POST /api/v1/trips. Rejections map to 404 (unknown
// client or driver) and 409 (driver without a vehicle).
func (h *DispatchHandler) ProcessTrip(c *gin.Context) {
	var req processTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	start, ok := resolveEndpoint(req.StartLocation, req.StartLat, req.StartLon)
	if !ok {
		response.BadRequest(c, "provide a valid start location name or coordinates")
		return
	}
	end, ok := resolveEndpoint(req.EndLocation, req.EndLat, req.EndLon)
	if !ok {
		response.BadRequest(c, "provide a valid end location name or coordinates")
		return
	}

	result := h.service.ProcessTrip(c.Request.Context(), req.ClientID, req.DriverID, start, end, req.FuelCost)
	switch result.Reason {
	case application.RejectNotFound:
		response.NotFound(c, result.Message)
	case application.RejectNoVehicle:
		response.Conflict(c, result.Message)
	default:
		response.Success(c, result)
	}
}

// ListTrips handles GET /api/v1/trips.
func (h *DispatchHandler) ListTrips(c *gin.Context) {
	response.Success(c, h.service.ListTrips(c.Request.Context()))
}

// ListLocations handles GET /api/v1/locations.
func (h *DispatchHandler) ListLocations(c *gin.Context) {
	response.Success(c, namedLocations)
}
