package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

type AuthHandler struct {
	auth domain.AuthUseCase
	log  *logrus.Logger
}

func NewAuthHandler(auth domain.AuthUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	User LoginUser `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Login")
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind login request: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password required"})
		return
	}

	user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		handlerLogger.Warnf("Authentication failed for user %q", req.Username)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	handlerLogger.Infof("Authentication successful for user %q", user.Username)
	c.JSON(http.StatusOK, LoginResponse{User: LoginUser{ID: user.ID, Username: user.Username}})
}
