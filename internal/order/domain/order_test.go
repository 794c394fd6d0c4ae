package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name      string
		orderType string
		from      string
		to        string
		want      bool
	}{
		{"pending_to_confirmed", TypeDineIn, StatusPending, StatusConfirmed, true},
		{"confirmed_to_preparing", TypeDineIn, StatusConfirmed, StatusPreparing, true},
		{"preparing_to_ready", TypeTakeout, StatusPreparing, StatusReady, true},
		{"ready_to_completed_dine_in", TypeDineIn, StatusReady, StatusCompleted, true},
		{"ready_to_completed_takeout", TypeTakeout, StatusReady, StatusCompleted, true},
		{"ready_to_delivered_delivery", TypeDelivery, StatusReady, StatusDelivered, true},
		{"ready_to_delivered_dine_in", TypeDineIn, StatusReady, StatusDelivered, false},
		{"ready_to_completed_delivery", TypeDelivery, StatusReady, StatusCompleted, false},
		{"pending_to_preparing_skips", TypeDineIn, StatusPending, StatusPreparing, false},
		{"pending_to_ready_skips", TypeDineIn, StatusPending, StatusReady, false},
		{"backwards_confirmed_to_pending", TypeDineIn, StatusConfirmed, StatusPending, false},
		{"cancel_from_pending", TypeDineIn, StatusPending, StatusCancelled, true},
		{"cancel_from_confirmed", TypeDelivery, StatusConfirmed, StatusCancelled, true},
		{"cancel_from_preparing", TypeTakeout, StatusPreparing, StatusCancelled, true},
		{"cancel_from_ready", TypeDineIn, StatusReady, StatusCancelled, true},
		{"cancel_from_completed", TypeDineIn, StatusCompleted, StatusCancelled, false},
		{"cancel_from_delivered", TypeDelivery, StatusDelivered, StatusCancelled, false},
		{"cancel_from_cancelled", TypeDineIn, StatusCancelled, StatusCancelled, false},
		{"out_of_completed", TypeDineIn, StatusCompleted, StatusConfirmed, false},
		{"unknown_status", TypeDineIn, "bogus", StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.orderType, tt.from, tt.to))
		})
	}
}

func TestTerminalStatus(t *testing.T) {
	assert.Equal(t, StatusCompleted, (&Order{Type: TypeDineIn}).TerminalStatus())
	assert.Equal(t, StatusCompleted, (&Order{Type: TypeTakeout}).TerminalStatus())
	assert.Equal(t, StatusDelivered, (&Order{Type: TypeDelivery}).TerminalStatus())
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []string{StatusCompleted, StatusDelivered, StatusCancelled} {
		assert.True(t, (&Order{Status: status}).IsTerminal(), status)
	}
	for _, status := range []string{StatusPending, StatusConfirmed, StatusPreparing, StatusReady} {
		assert.False(t, (&Order{Status: status}).IsTerminal(), status)
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{StatusCompleted, StatusCancelled},
		ValidTransitionsFrom(TypeDineIn, StatusReady))
	assert.ElementsMatch(t,
		[]string{StatusDelivered, StatusCancelled},
		ValidTransitionsFrom(TypeDelivery, StatusReady))
	assert.Empty(t, ValidTransitionsFrom(TypeDineIn, StatusCompleted))
}
