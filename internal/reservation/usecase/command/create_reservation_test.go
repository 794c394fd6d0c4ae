package command

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/reservation/domain"
	"github.com/tair/dineboard/internal/reservation/repository"
	"github.com/tair/dineboard/internal/state"
)

func TestCreateReservation(t *testing.T) {
	repo := repository.NewMemoryReservationRepository(state.NewContainer())
	handler := NewCreateReservationHandler(repo)

	reservation, err := handler.Handle(CreateReservationCommand{
		CustomerName:    "Nora Patel",
		CustomerContact: "555-0142",
		Date:            "2026-09-01",
		Time:            "19:30",
		PartySize:       4,
		Occasion:        "anniversary",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, reservation.Status)
	assert.Regexp(t, regexp.MustCompile(`^DNB-[0-9A-F]{8}$`), reservation.ConfirmationCode)
	assert.Empty(t, reservation.TableID, "tables are assigned later")

	// Lookup by confirmation code resolves the same reservation
	found, err := repo.FindByCode(reservation.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, reservation.ID, found.ID)
}

func TestCreateReservation_Validation(t *testing.T) {
	handler := NewCreateReservationHandler(repository.NewMemoryReservationRepository(state.NewContainer()))

	tests := []struct {
		name string
		cmd  CreateReservationCommand
	}{
		{"missing_name", CreateReservationCommand{Date: "2026-09-01", Time: "19:30", PartySize: 2}},
		{"zero_party", CreateReservationCommand{CustomerName: "X", Date: "2026-09-01", Time: "19:30"}},
		{"bad_date", CreateReservationCommand{CustomerName: "X", Date: "01/09/2026", Time: "19:30", PartySize: 2}},
		{"bad_time", CreateReservationCommand{CustomerName: "X", Date: "2026-09-01", Time: "7pm", PartySize: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(tt.cmd)
			assert.True(t, errors.Is(err, appdomain.ErrInvalidArgument), "got %v", err)
		})
	}
}
