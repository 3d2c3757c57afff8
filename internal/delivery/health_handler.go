package delivery

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports liveness for deployment platforms.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
