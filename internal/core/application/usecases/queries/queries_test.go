package queries_test

import (
	"testing"

	"salesdelivery/internal/core/application/usecases/queries"
	"salesdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllCarriersQuery_Valid(t *testing.T) {
	require.NoError(t, queries.NewGetAllCarriersQuery().Validate())
}

func TestGetAllCarriersQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetAllCarriersQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrGetAllCarriersQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	id := kernel.NewUUID()
	q, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, q.OrderID())
	assert.NoError(t, q.Validate())
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetOrderQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
