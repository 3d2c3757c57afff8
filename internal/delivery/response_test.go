package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sahil00000001/SMFurnishAdmin/internal/clients"
	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"order lookup miss", domain.ErrOrderNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("failed to load product p1: %w", domain.ErrProductNotFound), http.StatusNotFound},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"backend transport failure", fmt.Errorf("failed to load products: %w", &clients.APIError{StatusCode: 500, Body: "boom"}), http.StatusBadGateway},
		{"validation", errors.New("invalid price \"abc\""), http.StatusBadRequest},
		{"unknown", errors.New("something odd"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, mapErrorToStatus(tc.err))
		})
	}
}
