package kernel_test

import (
	"testing"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address", func(t *testing.T) {
		a, err := kernel.NewAddress("100 Main St", "Springfield", "IL", "62704")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "100 Main St", a.Street())
		assert.Equal(t, "Springfield", a.City())
		assert.Equal(t, "IL", a.State())
		assert.Equal(t, "62704", a.Zip())
	})

	t.Run("should allow empty city and state", func(t *testing.T) {
		a, err := kernel.NewAddress("100 Main St", "", "", "62704")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
	})

	t.Run("should fail without street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Springfield", "IL", "62704")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without zip", func(t *testing.T) {
		_, err := kernel.NewAddress("100 Main St", "Springfield", "IL", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with short zip", func(t *testing.T) {
		_, err := kernel.NewAddress("100 Main St", "Springfield", "IL", "627")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with non numeric zip", func(t *testing.T) {
		_, err := kernel.NewAddress("100 Main St", "Springfield", "IL", "6270a")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value address is not constructed", func(t *testing.T) {
		var a kernel.Address

		require.Error(t, a.Validate())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("100 Main St", "Springfield", "IL", "62704")
	b, _ := kernel.NewAddress("100 Main St", "Springfield", "IL", "62704")
	c, _ := kernel.NewAddress("200 Oak Ave", "Springfield", "IL", "62704")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
