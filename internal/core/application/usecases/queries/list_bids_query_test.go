package queries_test

import (
	"testing"

	"procserve/internal/core/application/usecases/queries"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListBidsQuery_Valid(t *testing.T) {
	query, err := queries.NewListBidsQuery(kernel.NewUUID())

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewListBidsQuery_EmptyOrderID_ReturnsError(t *testing.T) {
	_, err := queries.NewListBidsQuery(kernel.UUID{})

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestListBidsQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.ListBidsQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrListBidsQueryIsNotConstructed)
}
