package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veristub/pkg/platform/sentinel"
)

func TestInMemoryDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("find returns a seeded record", func(t *testing.T) {
		d := NewInMemoryDirectory()
		d.Put(ctx, Customer{ID: "cust-1", FirstName: "Ada"})

		found, err := d.FindCustomer(ctx, "cust-1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", found.FirstName)
	})

	t.Run("find on an unknown id yields ErrNotFound", func(t *testing.T) {
		d := NewInMemoryDirectory()
		_, err := d.FindCustomer(ctx, "cust-absent")
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("update merges only the provided fields", func(t *testing.T) {
		d := NewInMemoryDirectory()
		d.Put(ctx, Customer{ID: "cust-1", FirstName: "Ada", LastName: "Lovelace", InquiryID: "inq_mock_1"})

		approved := IdentityApproved
		first := "John"
		updated, err := d.UpdateCustomer(ctx, "cust-1", Update{
			FirstName:      &first,
			IdentityStatus: &approved,
		})
		require.NoError(t, err)
		assert.Equal(t, "John", updated.FirstName)
		assert.Equal(t, "Lovelace", updated.LastName, "unset fields stay untouched")
		assert.Equal(t, IdentityApproved, updated.IdentityStatus)
		assert.Equal(t, "inq_mock_1", updated.InquiryID)
	})

	t.Run("update can clear the inquiry correlation", func(t *testing.T) {
		d := NewInMemoryDirectory()
		d.Put(ctx, Customer{ID: "cust-1", InquiryID: "inq_mock_1"})

		cleared := ""
		updated, err := d.UpdateCustomer(ctx, "cust-1", Update{InquiryID: &cleared})
		require.NoError(t, err)
		assert.Empty(t, updated.InquiryID)
	})

	t.Run("update on an unknown id yields ErrNotFound", func(t *testing.T) {
		d := NewInMemoryDirectory()
		_, err := d.UpdateCustomer(ctx, "cust-absent", Update{})
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
