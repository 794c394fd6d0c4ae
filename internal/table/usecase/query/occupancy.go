package query

import (
	"fmt"

	"github.com/tair/dineboard/internal/table/domain"
)

// OccupancySummary aggregates the current floor state
type OccupancySummary struct {
	TotalTables    int     `json:"total_tables"`
	Available      int     `json:"available"`
	Occupied       int     `json:"occupied"`
	Reserved       int     `json:"reserved"`
	Cleaning       int     `json:"cleaning"`
	TotalCapacity  int     `json:"total_capacity"`
	SeatedGuests   int     `json:"seated_guests"`
	OccupancyRatio float64 `json:"occupancy_ratio"`
}

// GetOccupancyHandler handles occupancy summary queries
type GetOccupancyHandler struct {
	repo domain.TableRepository
}

// NewGetOccupancyHandler creates a new occupancy summary handler
func NewGetOccupancyHandler(repo domain.TableRepository) *GetOccupancyHandler {
	return &GetOccupancyHandler{repo: repo}
}

// Handle computes the floor occupancy summary
func (h *GetOccupancyHandler) Handle() (*OccupancySummary, error) {
	tables, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	summary := &OccupancySummary{TotalTables: len(tables)}
	for _, t := range tables {
		summary.TotalCapacity += t.Capacity
		summary.SeatedGuests += t.GuestCount

		switch t.Status {
		case domain.StatusAvailable:
			summary.Available++
		case domain.StatusOccupied:
			summary.Occupied++
		case domain.StatusReserved:
			summary.Reserved++
		case domain.StatusCleaning:
			summary.Cleaning++
		}
	}

	// An empty floor is simply unoccupied
	if summary.TotalCapacity > 0 {
		summary.OccupancyRatio = float64(summary.SeatedGuests) / float64(summary.TotalCapacity)
	}

	return summary, nil
}
