// Package customer defines the external customer directory this engine
// projects verification outcomes onto. The directory itself is an external
// collaborator; only its contract and an in-memory implementation live here.
package customer

import "context"

// IdentityStatus is the verification state projected onto a customer record.
type IdentityStatus string

const (
	IdentityApproved IdentityStatus = "approved"
	IdentityRejected IdentityStatus = "rejected"
	IdentityPending  IdentityStatus = "pending"
)

// Customer is the consuming system's record of a person.
type Customer struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	DateOfBirth    string         `json:"date_of_birth,omitempty"`
	LicenseNumber  string         `json:"license_number,omitempty"`
	IdentityStatus IdentityStatus `json:"identity_status,omitempty"`
	// InquiryID correlates the customer to an in-flight verification
	// session; cleared when the session expires so a fresh one can start.
	InquiryID string `json:"inquiry_id,omitempty"`
}

// Update is a partial customer mutation. Nil fields are left untouched.
type Update struct {
	FirstName      *string
	LastName       *string
	DateOfBirth    *string
	LicenseNumber  *string
	IdentityStatus *IdentityStatus
	InquiryID      *string
}

// Directory is the external customer store.
type Directory interface {
	FindCustomer(ctx context.Context, id string) (Customer, error)
	UpdateCustomer(ctx context.Context, id string, update Update) (Customer, error)
}
