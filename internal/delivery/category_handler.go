package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

type CategoryHandler struct {
	categories domain.CategoryUseCase
	log        *logrus.Logger
}

func NewCategoryHandler(categories domain.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		log:        logger,
	}
}

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListCategories")

	categories, err := h.categories.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, handlerLogger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "GetCategory")

	category, err := h.categories.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, handlerLogger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "CreateCategory")
	var req CategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind request: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	category, err := h.categories.Create(c.Request.Context(), domain.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, handlerLogger, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "DeleteCategory")

	body, err := h.categories.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, handlerLogger, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
