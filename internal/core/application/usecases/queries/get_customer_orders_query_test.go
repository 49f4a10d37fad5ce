package queries_test

import (
	"testing"

	"procserve/internal/core/application/usecases/queries"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetCustomerOrdersQuery_EmptyCustomerID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{})

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetCustomerOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.GetCustomerOrdersQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}
