package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/dineboard/internal/state"
	"github.com/tair/dineboard/internal/table/domain"
	"github.com/tair/dineboard/internal/table/repository"
)

func seedFloor(t *testing.T) domain.TableRepository {
	t.Helper()
	repo := repository.NewMemoryTableRepository(state.NewContainer())
	tables := []domain.Table{
		{ID: "tbl-01", Name: "T-01", Capacity: 2, Area: "window", Status: domain.StatusAvailable},
		{ID: "tbl-02", Name: "T-02", Capacity: 4, Area: "window", Status: domain.StatusOccupied, GuestCount: 3},
		{ID: "tbl-03", Name: "T-03", Capacity: 6, Area: "patio", Status: domain.StatusOccupied, GuestCount: 5},
		{ID: "tbl-04", Name: "T-04", Capacity: 4, Area: "patio", Status: domain.StatusReserved},
		{ID: "tbl-05", Name: "T-05", Capacity: 4, Area: "main", Status: domain.StatusCleaning},
	}
	for i := range tables {
		require.NoError(t, repo.Create(&tables[i]))
	}
	return repo
}

func TestGetOccupancy(t *testing.T) {
	handler := NewGetOccupancyHandler(seedFloor(t))

	summary, err := handler.Handle()
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalTables)
	assert.Equal(t, 1, summary.Available)
	assert.Equal(t, 2, summary.Occupied)
	assert.Equal(t, 1, summary.Reserved)
	assert.Equal(t, 1, summary.Cleaning)
	assert.Equal(t, 20, summary.TotalCapacity)
	assert.Equal(t, 8, summary.SeatedGuests)
	assert.InDelta(t, 0.4, summary.OccupancyRatio, 1e-9)
}

func TestGetOccupancy_EmptyFloor(t *testing.T) {
	handler := NewGetOccupancyHandler(repository.NewMemoryTableRepository(state.NewContainer()))

	summary, err := handler.Handle()
	require.NoError(t, err)

	assert.Zero(t, summary.TotalTables)
	assert.Zero(t, summary.OccupancyRatio)
}
