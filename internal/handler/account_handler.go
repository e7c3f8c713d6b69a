package handler

import (
	"github.com/DriveSync-Logistics/service-dispatch/internal/application"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/account"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/fleet"
	"github.com/DriveSync-Logistics/service-dispatch/internal/response"
	"github.com/gin-gonic/gin"
)

// driverWithoutVehicleWarning mirrors the onboarding flow's behavior when the
// named registration is not in the fleet: the driver is still added.
const driverWithoutVehicleWarning = "Vehicle not found. Driver added without vehicle assignment."

// AccountHandler handles HTTP requests for account registration and listing.
type AccountHandler struct {
	service *application.DispatchService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *application.DispatchService) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterRoutes registers all account routes on the given router group.
func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/api/v1/accounts")
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("/clients", h.CreateClient)
		accounts.POST("/drivers", h.CreateDriver)
	}
}

type createClientRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Contact   string `json:"contact" binding:"required"`
}

// CreateClient handles POST /api/v1/accounts/clients.
func (h *AccountHandler) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	client := account.NewClient(req.AccountID, req.Name, req.Email, req.Contact)
	if err := h.service.AddAccount(c.Request.Context(), client); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"account_id": client.AccountID(), "details": client.Details()})
}

type createDriverRequest struct {
	AccountID      string  `json:"account_id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Contact        string  `json:"contact" binding:"required"`
	VehicleType    string  `json:"vehicle_type" binding:"required"`
	VehicleRegNo   string  `json:"vehicle_reg_no" binding:"required"`
	DayAllowance   float64 `json:"driver_day_allowance" binding:"gte=0"`
	NightAllowance float64 `json:"driver_night_allowance" binding:"gte=0"`
}

// CreateDriver handles POST /api/v1/accounts/drivers. The named vehicle
// registration is looked up in the fleet; a miss adds the driver without a
// vehicle and reports a warning rather than failing.
func (h *AccountHandler) CreateDriver(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := fleet.ParseVehicleType(req.VehicleType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	driver := account.NewDriver(req.AccountID, req.Name, req.Email, req.Contact,
		req.VehicleType, req.VehicleRegNo, req.DayAllowance, req.NightAllowance)

	var warning string
	if vehicle, ok := h.service.FindVehicle(c.Request.Context(), req.VehicleRegNo); ok {
		if err := driver.AssignVehicle(vehicle); err != nil {
			response.Error(c, err)
			return
		}
	} else {
		warning = driverWithoutVehicleWarning
	}

	if err := h.service.AddAccount(c.Request.Context(), driver); err != nil {
		response.Error(c, err)
		return
	}

	body := gin.H{"account_id": driver.AccountID(), "details": driver.Details()}
	if warning != "" {
		body["warning"] = warning
	}
	response.Created(c, body)
}

// ListAccounts handles GET /api/v1/accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	response.Success(c, h.service.ListAllAccounts(c.Request.Context()))
}
