package queries_test

import (
	"testing"

	"procserve/internal/core/application/usecases/queries"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetContactListQuery_Valid(t *testing.T) {
	query, err := queries.NewGetContactListQuery(kernel.NewUUID())

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetContactListQuery_EmptyCustomerID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetContactListQuery(kernel.UUID{})

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetContactListQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.GetContactListQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrGetContactListQueryIsNotConstructed)
}
