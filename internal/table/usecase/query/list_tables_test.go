package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/dineboard/internal/table/domain"
)

func TestListTables_Filters(t *testing.T) {
	handler := NewListTablesHandler(seedFloor(t))

	all, err := handler.Handle(ListTablesQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	patio, err := handler.Handle(ListTablesQuery{Area: "patio"})
	require.NoError(t, err)
	assert.Len(t, patio, 2)

	occupied, err := handler.Handle(ListTablesQuery{Status: domain.StatusOccupied})
	require.NoError(t, err)
	assert.Len(t, occupied, 2)

	both, err := handler.Handle(ListTablesQuery{Area: "patio", Status: domain.StatusOccupied})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "tbl-03", both[0].ID)
}

func TestListTables_SortedByName(t *testing.T) {
	handler := NewListTablesHandler(seedFloor(t))

	tables, err := handler.Handle(ListTablesQuery{})
	require.NoError(t, err)

	for i := 1; i < len(tables); i++ {
		assert.LessOrEqual(t, tables[i-1].Name, tables[i].Name)
	}
}
