package delivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sahil00000001/SMFurnishAdmin/internal/clients"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// mapErrorToStatus turns a facade error into an HTTP status. Lookup misses
// are normal outcomes (404); backend transport failures surface as 502 so the
// dashboard can render its retry state.
func mapErrorToStatus(err error) int {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "invalid credentials") {
		return http.StatusUnauthorized
	}
	if strings.Contains(errMsg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, logger logrus.FieldLogger, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("Handler Error: %v (status %d)", err, status)
	} else {
		logger.Warnf("Handler Error: %v (status %d)", err, status)
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
