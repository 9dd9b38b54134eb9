// Package consumer reacts to inquiry lifecycle events and projects
// verification outcomes onto the external customer directory.
package consumer

import (
	"context"
	"log/slog"

	"veristub/internal/customer"
	"veristub/internal/inquiry"
	"veristub/internal/webhook"
)

// CallbackName is the adapter's registration name with the dispatcher.
const CallbackName = "customer-directory-projection"

// InquiryRetriever is the slice of the lifecycle engine the adapter reads
// from. Terminal events carry a snapshot, but the adapter re-fetches the
// record so it always projects current state.
type InquiryRetriever interface {
	Retrieve(ctx context.Context, id string) (*inquiry.Inquiry, error)
}

// Adapter is the registered webhook consumer. It reacts only to terminal
// events; everything else is ignored. Failures inside the callback are caught
// by the dispatcher and logged, never propagated.
type Adapter struct {
	inquiries InquiryRetriever
	directory customer.Directory
	logger    *slog.Logger
}

func NewAdapter(inquiries InquiryRetriever, directory customer.Directory, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		inquiries: inquiries,
		directory: directory,
		logger:    logger,
	}
}

// Register wires the adapter into the dispatcher under CallbackName.
func (a *Adapter) Register(d *webhook.Dispatcher) {
	d.Register(CallbackName, a.Handle)
}

// Handle is the webhook callback.
func (a *Adapter) Handle(ctx context.Context, event webhook.Event) error {
	switch event.Type {
	case webhook.EventInquiryCompleted:
		return a.projectApproval(ctx, event.Data.ID)
	case webhook.EventInquiryFailed:
		return a.projectRejection(ctx, event.Data.ID)
	case webhook.EventInquiryExpired:
		return a.projectExpiry(ctx, event.Data.ID)
	default:
		return nil
	}
}

func (a *Adapter) projectApproval(ctx context.Context, inquiryID string) error {
	inq, err := a.inquiries.Retrieve(ctx, inquiryID)
	if err != nil {
		return err
	}
	if inq.ReferenceID == "" {
		a.logger.WarnContext(ctx, "completed inquiry has no reference id", "inquiry_id", inquiryID)
		return nil
	}

	firstName := inq.Fields.StringValue(inquiry.FieldNameFirst)
	lastName := inq.Fields.StringValue(inquiry.FieldNameLast)
	birthdate := inq.Fields.StringValue(inquiry.FieldBirthdate)
	idNumber := inq.Fields.StringValue(inquiry.FieldIdentificationNumber)
	approved := customer.IdentityApproved

	update := customer.Update{IdentityStatus: &approved}
	if firstName != "" {
		update.FirstName = &firstName
	}
	if lastName != "" {
		update.LastName = &lastName
	}
	if birthdate != "" {
		update.DateOfBirth = &birthdate
	}
	if idNumber != "" {
		update.LicenseNumber = &idNumber
	}

	if _, err := a.directory.UpdateCustomer(ctx, inq.ReferenceID, update); err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "customer verification approved",
		"inquiry_id", inquiryID,
		"customer_id", inq.ReferenceID,
	)
	return nil
}

func (a *Adapter) projectRejection(ctx context.Context, inquiryID string) error {
	inq, err := a.inquiries.Retrieve(ctx, inquiryID)
	if err != nil {
		return err
	}
	if inq.ReferenceID == "" {
		return nil
	}

	rejected := customer.IdentityRejected
	if _, err := a.directory.UpdateCustomer(ctx, inq.ReferenceID, customer.Update{IdentityStatus: &rejected}); err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "customer verification rejected",
		"inquiry_id", inquiryID,
		"customer_id", inq.ReferenceID,
	)
	return nil
}

// projectExpiry resets the customer to pending and clears the inquiry
// correlation so a fresh session can be created.
func (a *Adapter) projectExpiry(ctx context.Context, inquiryID string) error {
	inq, err := a.inquiries.Retrieve(ctx, inquiryID)
	if err != nil {
		return err
	}
	if inq.ReferenceID == "" {
		return nil
	}

	pending := customer.IdentityPending
	cleared := ""
	_, err = a.directory.UpdateCustomer(ctx, inq.ReferenceID, customer.Update{
		IdentityStatus: &pending,
		InquiryID:      &cleared,
	})
	return err
}
