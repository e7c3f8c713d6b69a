package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/account"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/fleet"
	"github.com/DriveSync-Logistics/service-dispatch/internal/domain/request"
	tripDomain "github.com/DriveSync-Logistics/service-dispatch/internal/domain/trip"
	"github.com/DriveSync-Logistics/service-dispatch/internal/geo"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result strings for rejected trip requests. The ⚠️ marker is the error-level
// convention callers key on.
const (
	msgNotFound  = "⚠️ Client or Driver not found"
	msgNoVehicle = "⚠️ Driver has no vehicle assigned"
)

var moneyPrinter = message.NewPrinter(language.English)

// RejectReason identifies why a trip request was rejected.
type RejectReason string

const (
	RejectNone      RejectReason = ""
	RejectNotFound  RejectReason = "not_found"
	RejectNoVehicle RejectReason = "no_vehicle_assigned"
)

// ProcessTripResult is the outcome of a trip request. Message carries the
// human-readable result string; Trip is set only when the request was
// accepted.
type ProcessTripResult struct {
	Status  tripDomain.DispatchStatus `json:"status"`
	Reason  RejectReason              `json:"reason,omitempty"`
	Message string                    `json:"message"`
	Trip    *TripDTO                  `json:"trip,omitempty"`
}

// DispatchService is the in-memory dispatch ledger. It owns the vehicle,
// driver, client, trip, and pending-request collections and orchestrates
// request intake and trip processing against them.
//
// All collections and counters are guarded by a single mutex so the service
// is safe to drive from a concurrent HTTP server; each operation runs to
// completion under the lock.
type DispatchService struct {
	mu sync.Mutex

	vehicles []*fleet.Vehicle
	drivers  []*account.Driver
	clients  []*account.Client
	trips    []*tripDomain.Trip
	requests []*request.ClientRequest

	// clientSeq is a monotonic counter for generated client account ids. It
	// advances with every registered client so generated ids stay unique
	// even when ids are also supplied externally.
	clientSeq int

	// Synthetic vehicle/driver used only for intake cost estimates, never
	// dispatched on real trips.
	defaultVehicle *fleet.Vehicle
	defaultDriver  *account.Driver

	defaultFuelPrice float64
	logger           *zap.Logger
}

// NewDispatchService creates an empty ledger. defaultFuelPrice is the fixed
// per-litre price used for intake cost estimates.
func NewDispatchService(defaultFuelPrice float64, logger *zap.Logger) *DispatchService {
	defaultVehicle := fleet.NewVehicle(fleet.VehicleTypeVan, "DEFAULT001", 0.1, 50000)
	defaultDriver := account.NewDriver("D000", "Default Driver", "default@example.com",
		"0000000000", "Van", "DEFAULT001", 10000, 15000)
	// The default driver always carries the default vehicle.
	_ = defaultDriver.AssignVehicle(defaultVehicle)

	return &DispatchService{
		defaultVehicle:   defaultVehicle,
		defaultDriver:    defaultDriver,
		defaultFuelPrice: defaultFuelPrice,
		logger:           logger,
	}
}

// OnboardVehicle appends a vehicle to the fleet. Registration uniqueness is
// the caller's responsibility; the ledger appends unconditionally.
func (s *DispatchService) OnboardVehicle(ctx context.Context, v *fleet.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicles = append(s.vehicles, v)
	s.logger.Info("vehicle onboarded",
		zap.String("reg_no", v.RegNo()),
		zap.String("type", v.Type().String()),
	)
}

// FindVehicle returns the first fleet vehicle with the given registration
// number, or false if none matches.
func (s *DispatchService) FindVehicle(ctx context.Context, regNo string) (*fleet.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findVehicleLocked(regNo)
}

func (s *DispatchService) findVehicleLocked(regNo string) (*fleet.Vehicle, bool) {
	for _, v := range s.vehicles {
		if v.RegNo() == regNo {
			return v, true
		}
	}
	return nil, false
}

// AddAccount registers an account, routing on its kind tag into the driver
// or client collection.
func (s *DispatchService) AddAccount(ctx context.Context, acc account.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAccountLocked(acc)
}

func (s *DispatchService) addAccountLocked(acc account.Account) error {
	switch a := acc.(type) {
	case *account.Driver:
		s.drivers = append(s.drivers, a)
	case *account.Client:
		s.clients = append(s.clients, a)
		s.clientSeq++
	default:
		return fmt.Errorf("unknown account kind: %s", acc.Kind())
	}
	s.logger.Info("account registered",
		zap.String("account_id", acc.AccountID()),
		zap.String("kind", string(acc.Kind())),
	)
	return nil
}

// ListAllAccounts returns one human-readable summary per account in
// insertion order, drivers first, then clients.
func (s *DispatchService) ListAllAccounts(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]string, 0, len(s.drivers)+len(s.clients))
	for _, d := range s.drivers {
		summaries = append(summaries, fmt.Sprintf("%s: %s", d.Kind(), d.Details()))
	}
	for _, c := range s.clients {
		summaries = append(summaries, fmt.Sprintf("%s: %s", c.Kind(), c.Details()))
	}
	return summaries
}

// AddClientRequest records a pending request, fills its intake cost estimate,
// and resolves the requesting client, creating one when the email is unknown.
//
// The estimate is a throwaway trip on the ledger's default vehicle and driver
// at the default fuel price. Estimation failure degrades the estimate to zero
// and is logged, never surfaced; the request is recorded and the client
// resolved regardless.
//
// The returned client is not written into the request; callers that want the
// back-link attach it themselves.
func (s *DispatchService) AddClientRequest(ctx context.Context, req *request.ClientRequest) (*account.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)

	estimate := 0.0
	est, err := tripDomain.New(req.Pickup(), req.Dropoff(), s.defaultFuelPrice,
		s.defaultVehicle, s.defaultDriver, "")
	if err != nil {
		s.logger.Warn("cost estimation failed, estimate degraded to zero",
			zap.String("request_id", req.ID().String()),
			zap.Error(err),
		)
	} else {
		estimate = est.TotalCost()
	}
	if err := req.SetEstimatedCost(estimate); err != nil {
		return nil, fmt.Errorf("fill request estimate: %w", err)
	}

	for _, c := range s.clients {
		if c.Email() == req.Email() {
			return c, nil
		}
	}

	accountID := fmt.Sprintf("C%03d", s.clientSeq+1)
	client := account.NewClient(accountID, req.Name(), req.Email(), req.Contact())
	if err := s.addAccountLocked(client); err != nil {
		return nil, err
	}
	return client, nil
}

// ProcessTrip converts a trip request into a recorded trip. A request is
// rejected, with no side effects beyond its message, when the client or
// driver is unknown or the driver has no vehicle; otherwise the trip is
// costed on the driver's actual vehicle, recorded, and the driver and client
// are updated.
func (s *DispatchService) ProcessTrip(ctx context.Context, clientID, driverID string, start, end geo.Point, fuelCost float64) ProcessTripResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var client *account.Client
	for _, c := range s.clients {
		if c.AccountID() == clientID {
			client = c
			break
		}
	}
	var driver *account.Driver
	for _, d := range s.drivers {
		if d.AccountID() == driverID {
			driver = d
			break
		}
	}

	if client == nil || driver == nil {
		return ProcessTripResult{
			Status:  tripDomain.StatusRejected,
			Reason:  RejectNotFound,
			Message: msgNotFound,
		}
	}
	if driver.Vehicle() == nil {
		return ProcessTripResult{
			Status:  tripDomain.StatusRejected,
			Reason:  RejectNoVehicle,
			Message: msgNoVehicle,
		}
	}

	t, err := tripDomain.New(start, end, fuelCost, driver.Vehicle(), driver, clientID)
	if err != nil {
		s.logger.Warn("trip costed with degraded distance",
			zap.String("client_id", clientID),
			zap.String("driver_id", driverID),
			zap.Error(err),
		)
	}
	s.trips = append(s.trips, t)

	ack := driver.AcknowledgeTrip(start, end)
	s.logger.Info("driver assigned to trip",
		zap.String("driver_id", driverID),
		zap.String("ack", ack),
	)

	result := client.RecordTrip(t.TotalCost())
	dto := toTripDTO(t)
	return ProcessTripResult{
		Status:  tripDomain.StatusAccepted,
		Message: moneyPrinter.Sprintf("%s (Total Cost: UGX %.2f)", result, t.TotalCost()),
		Trip:    &dto,
	}
}
