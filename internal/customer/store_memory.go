package customer

import (
	"context"
	"sync"

	"veristub/pkg/platform/sentinel"
)

// InMemoryDirectory keeps customer records in memory so the engine can be
// exercised end-to-end without the consuming system.
type InMemoryDirectory struct {
	mu        sync.RWMutex
	customers map[string]Customer
}

func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{customers: make(map[string]Customer)}
}

// Put seeds or replaces a customer record.
func (d *InMemoryDirectory) Put(_ context.Context, c Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers[c.ID] = c
}

func (d *InMemoryDirectory) FindCustomer(_ context.Context, id string) (Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if c, ok := d.customers[id]; ok {
		return c, nil
	}
	return Customer{}, sentinel.ErrNotFound
}

func (d *InMemoryDirectory) UpdateCustomer(_ context.Context, id string, update Update) (Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.customers[id]
	if !ok {
		return Customer{}, sentinel.ErrNotFound
	}
	if update.FirstName != nil {
		c.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		c.LastName = *update.LastName
	}
	if update.DateOfBirth != nil {
		c.DateOfBirth = *update.DateOfBirth
	}
	if update.LicenseNumber != nil {
		c.LicenseNumber = *update.LicenseNumber
	}
	if update.IdentityStatus != nil {
		c.IdentityStatus = *update.IdentityStatus
	}
	if update.InquiryID != nil {
		c.InquiryID = *update.InquiryID
	}
	d.customers[id] = c
	return c, nil
}
