package handler

import (
	"github.com/DriveSync-Logistics/service-dispatch/internal/application"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/fleet"
	"github.com/DriveSync-Logistics/service-dispatch/internal/response"
	"github.com/gin-gonic/gin"
)

// FleetHandler handles HTTP requests for vehicle onboarding and listing.
type FleetHandler struct {
	service *application.DispatchService
}

// NewFleetHandler creates a new FleetHandler.
func NewFleetHandler(service *application.DispatchService) *FleetHandler {
	return &FleetHandler{service: service}
}

// RegisterRoutes registers all fleet routes on the given router group.
func (h *FleetHandler) RegisterRoutes(r *gin.RouterGroup) {
	vehicles := r.Group("/api/v1/vehicles")
	{
		vehicles.POST("", h.OnboardVehicle)
		vehicles.GET("", h.ListVehicles)
	}
}

type onboardVehicleRequest struct {
	VehicleType     string  `json:"vehicle_type" binding:"required"`
	VehicleRegNo    string  `json:"vehicle_reg_no" binding:"required"`
	FuelLitresPerKm float64 `json:"fuel_litres_per_km" binding:"gte=0"`
	DailyCharges    float64 `json:"daily_vehicle_charges" binding:"gte=0"`
}

// OnboardVehicle handles POST /api/v1/vehicles.
func (h *FleetHandler) OnboardVehicle(c *gin.Context) {
	var req onboardVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vehicleType, err := fleet.ParseVehicleType(req.VehicleType)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	v := fleet.NewVehicle(vehicleType, req.VehicleRegNo, req.FuelLitresPerKm, req.DailyCharges)
	h.service.OnboardVehicle(c.Request.Context(), v)

	response.Created(c, gin.H{"vehicle_reg_no": v.RegNo()})
}

// ListVehicles handles GET /api/v1/vehicles.
func (h *FleetHandler) ListVehicles(c *gin.Context) {
	response.Success(c, h.service.ListVehicles(c.Request.Context()))
}
