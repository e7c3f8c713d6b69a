package account

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var clientPrinter = message.NewPrinter(language.English)

// Client is a client account. TripCost tracks the cost of the most recent
// trip requested for this client.
type Client struct {
	accountID string
	name      string
	email     string
	contact   string
	tripCost  float64
}

// NewClient creates a client account from already-validated inputs.
func NewClient(accountID, name, email, contact string) *Client {
	return &Client{
		accountID: accountID,
		name:      name,
		email:     email,
		contact:   contact,
	}
}

// AccountID returns the client's unique account identifier.
func (c *Client) AccountID() string { return c.accountID }

// Name returns the client's display name.
func (c *Client) Name() string { return c.name }

// Email returns the client's email address.
func (c *Client) Email() string { return c.email }

// Contact returns the client's contact number.
func (c *Client) Contact() string { return c.contact }

// TripCost returns the cost of the last trip requested for this client.
func (c *Client) TripCost() float64 { return c.tripCost }

// RecordTrip updates the client's last-known trip cost and returns the
// client-facing confirmation message.
func (c *Client) RecordTrip(totalCost float64) string {
	c.tripCost = totalCost
	return clientPrinter.Sprintf("🛣️ Client %s requested trip. Estimated cost: UGX %.2f", c.name, c.tripCost)
}

// Details returns a one-line summary of the client account.
func (c *Client) Details() string {
	return fmt.Sprintf("Client ID: %s, Name: %s", c.accountID, c.name)
}

// Kind returns KindClient.
func (c *Client) Kind() Kind { return KindClient }
