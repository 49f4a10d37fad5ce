package queries_test

import (
	"testing"

	"procserve/internal/core/application/usecases/queries"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProcessServerDetailsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetProcessServerDetailsQuery(kernel.NewUUID())

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetProcessServerDetailsQuery_EmptyServerID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetProcessServerDetailsQuery(kernel.UUID{})

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetProcessServerDetailsQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.GetProcessServerDetailsQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrGetProcessServerDetailsQueryIsNotConstructed)
}
