package queries_test

import (
	"testing"

	"servicetrack/internal/core/application/usecases/queries"
	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ByID(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	assert.True(t, query.ByID())
	assert.True(t, query.OrderID().IsEqual(id))
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetOrderQueryByTrackNumber_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQueryByTrackNumber(" TNS-00034 ")
	require.NoError(t, err)
	assert.False(t, query.ByID())
	assert.Equal(t, "TNS-00034", query.TrackNumber())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderQueryByTrackNumber_Blank(t *testing.T) {
	_, err := queries.NewGetOrderQueryByTrackNumber("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetActiveOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetActiveOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetAuditTrailQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetAuditTrailQuery(id)
	require.NoError(t, err)
	assert.True(t, query.TargetID().IsEqual(id))
	assert.NoError(t, query.Validate())
}

func TestNewGetAuditTrailQuery_InvalidTarget(t *testing.T) {
	_, err := queries.NewGetAuditTrailQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetTechnicianCandidatesQuery_Valid(t *testing.T) {
	query := queries.NewGetTechnicianCandidatesQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetSalesCandidatesQuery_Valid(t *testing.T) {
	query := queries.NewGetSalesCandidatesQuery()
	require.NoError(t, query.Validate())
}
