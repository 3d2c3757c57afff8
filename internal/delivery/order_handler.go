package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

type OrderHandler struct {
	orders domain.OrderUseCase
	log    *logrus.Logger
}

func NewOrderHandler(orders domain.OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    logger,
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListOrders")

	params := domain.ListOrdersParams{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
	}
	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			params.Page = page
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	page, err := h.orders.GetAll(c.Request.Context(), params)
	if err != nil {
		respondError(c, handlerLogger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "GetOrder")

	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, handlerLogger, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
