// Package account holds the registered parties of the dispatch ledger:
// drivers, who run trips, and clients, who request them. Both share the
// Account capability set and are routed by their kind tag.
package account

// Kind tags the two account variants.
type Kind string

const (
	KindDriver Kind = "Driver"
	KindClient Kind = "Client"
)

// Account is the shared capability set of a registered party. The ledger
// dispatches on Kind rather than inspecting concrete types.
type Account interface {
	// AccountID returns the unique account identifier within its collection.
	AccountID() string

	// Name returns the account holder's display name.
	Name() string

	// Email returns the account holder's email address.
	Email() string

	// Contact returns the account holder's contact number.
	Contact() string

	// Details returns a human-readable one-line summary of the account.
	Details() string

	// Kind returns the account variant tag.
	Kind() Kind
}
