package httpx

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/dineboard/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("order x: %w", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("cannot move: %w", domain.ErrInvalidTransition), http.StatusConflict},
		{fmt.Errorf("stale: %w", domain.ErrConflict), http.StatusConflict},
		{fmt.Errorf("no table: %w", domain.ErrPreconditionFailed), http.StatusPreconditionFailed},
		{fmt.Errorf("bad qty: %w", domain.ErrInvalidArgument), http.StatusBadRequest},
		{fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}
