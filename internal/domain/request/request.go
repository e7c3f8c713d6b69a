package request

import (
	"fmt"
	"time"

	"github.com/DriveSync-Logistics/service-dispatch/internal/geo"
	"github.com/google/uuid"
)

// ClientRequest is a pending goods-movement inquiry awaiting conversion into
// a real trip. After submission it is mutated at most twice: once to fill the
// intake cost estimate and once to attach the resolved client.
type ClientRequest struct {
	id               uuid.UUID
	name             string
	email            string
	contact          string
	goodsDescription string
	pickup           geo.Point
	dropoff          geo.Point
	pickupName       string
	dropoffName      string
	comments         string
	estimatedCost    float64
	estimateFilled   bool
	clientID         string
	createdAt        time.Time
}

// New creates a pending request from already-validated inputs. The optional
// pickup/dropoff names are the human-readable labels for the coordinates.
func New(name, email, contact, goodsDescription string, pickup, dropoff geo.Point, pickupName, dropoffName, comments string) *ClientRequest {
	return &ClientRequest{
		id:               uuid.New(),
		name:             name,
		email:            email,
		contact:          contact,
		goodsDescription: goodsDescription,
		pickup:           pickup,
		dropoff:          dropoff,
		pickupName:       pickupName,
		dropoffName:      dropoffName,
		comments:         comments,
		createdAt:        time.Now().UTC(),
	}
}

// ID returns the request's unique identifier.
func (r *ClientRequest) ID() uuid.UUID { return r.id }

// Name returns the requester's name.
func (r *ClientRequest) Name() string { return r.name }

// Email returns the requester's email address.
func (r *ClientRequest) Email() string { return r.email }

// Contact returns the requester's contact number.
func (r *ClientRequest) Contact() string { return r.contact }

// GoodsDescription returns the description of the goods to move.
func (r *ClientRequest) GoodsDescription() string { return r.goodsDescription }

// Pickup returns the pickup coordinates.
func (r *ClientRequest) Pickup() geo.Point { return r.pickup }

// Dropoff returns the drop-off coordinates.
func (r *ClientRequest) Dropoff() geo.Point { return r.dropoff }

// PickupName returns the human-readable pickup label, if any.
func (r *ClientRequest) PickupName() string { return r.pickupName }

// DropoffName returns the human-readable drop-off label, if any.
func (r *ClientRequest) DropoffName() string { return r.dropoffName }

// Comments returns the requester's free-text comments.
func (r *ClientRequest) Comments() string { return r.comments }

// EstimatedCost returns the provisional cost computed at intake.
func (r *ClientRequest) EstimatedCost() float64 { return r.estimatedCost }

// ClientID returns the resolved client's account id, or "" if unresolved.
func (r *ClientRequest) ClientID() string { return r.clientID }

// CreatedAt returns the submission timestamp.
func (r *ClientRequest) CreatedAt() time.Time { return r.createdAt }

// SetEstimatedCost fills the intake cost estimate. The estimate is written
// exactly once; a second call is an error.
func (r *ClientRequest) SetEstimatedCost(cost float64) error {
	if r.estimateFilled {
		return fmt.Errorf("estimated cost already set for request %s", r.id)
	}
	r.estimatedCost = cost
	r.estimateFilled = true
	return nil
}

// AttachClient links the request to its resolved client. The link is written
// exactly once; a second call is an error.
func (r *ClientRequest) AttachClient(clientID string) error {
	if r.clientID != "" {
		return fmt.Errorf("request %s already attached to client %s", r.id, r.clientID)
	}
	if clientID == "" {
		return fmt.Errorf("client id must not be empty")
	}
	r.clientID = clientID
	return nil
}

// Details returns a one-line summary of the request.
func (r *ClientRequest) Details() string {
	return fmt.Sprintf("Name: %s, Email: %s, Contact: %s, Goods: %s, Pick-up: (%g, %g), Drop-off: (%g, %g), Comments: %s, Estimated Cost: UGX %v",
		r.name, r.email, r.contact, r.goodsDescription,
		r.pickup.Lat, r.pickup.Lon, r.dropoff.Lat, r.dropoff.Lon,
		r.comments, r.estimatedCost)
}
