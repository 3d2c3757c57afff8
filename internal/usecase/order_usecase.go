package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/sahil00000001/SMFurnishAdmin/internal/clients"
	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
	"github.com/sahil00000001/SMFurnishAdmin/internal/mapper"
)

// fallbackScanLimit caps the order page pulled when every direct lookup
// pattern has failed.
const fallbackScanLimit = 1000

var _ domain.OrderUseCase = (*orderUseCase)(nil)

type orderUseCase struct {
	backend clients.BackendClient
	log     *logrus.Logger
}

func NewOrderUseCase(backend clients.BackendClient, logger *logrus.Logger) domain.OrderUseCase {
	return &orderUseCase{
		backend: backend,
		log:     logger,
	}
}

type orderListResponse struct {
	Orders     []map[string]any `json:"orders"`
	Pagination map[string]any   `json:"pagination"`
	Count      *int             `json:"count"`
	Total      *int             `json:"total"`
}

func (uc *orderUseCase) GetAll(ctx context.Context, params domain.ListOrdersParams) (*domain.OrderPage, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.PaymentStatus != "" {
		query.Set("payment_status", params.PaymentStatus)
	}

	path := "/api/orders"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var res orderListResponse
	if err := uc.backend.DoJSON(ctx, http.MethodGet, path, nil, &res); err != nil {
		uc.log.Errorf("Use Case: Failed to load orders: %v", err)
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	page := &domain.OrderPage{
		Orders:     mapper.Orders(res.Orders),
		Pagination: res.Pagination,
	}
	if page.Pagination == nil {
		page.Pagination = map[string]any{}
	}
	switch {
	case res.Count != nil:
		page.Total = *res.Count
	case res.Total != nil:
		page.Total = *res.Total
	}

	uc.log.Infof("Use Case: Loaded %d orders (total %d)", len(page.Orders), page.Total)
	return page, nil
}

// GetByID probes the backend's inconsistent single-order endpoints in order,
// swallowing per-attempt failures, then falls back to scanning a large list
// page. A terminal miss is ErrOrderNotFound, never a loud failure.
func (uc *orderUseCase) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	patterns := []string{
		"/api/orders/" + orderID,
		"/api/orders/by-id/" + orderID,
		"/api/order/" + orderID,
	}

	for i, path := range patterns {
		var envelope map[string]any
		if err := uc.backend.DoJSON(ctx, http.MethodGet, path, nil, &envelope); err != nil {
			uc.log.Warnf("Use Case: Order lookup pattern %d failed for order %s: %v", i+1, orderID, err)
			continue
		}
		record, ok := extractOrderRecord(envelope)
		if !ok {
			uc.log.Warnf("Use Case: Order lookup pattern %d returned no usable data for order %s", i+1, orderID)
			continue
		}
		order := mapper.Order(record)
		uc.log.Infof("Use Case: Found order %s via lookup pattern %d", orderID, i+1)
		return &order, nil
	}

	uc.log.Warnf("Use Case: All lookup patterns failed for order %s, scanning full order list", orderID)
	page, err := uc.GetAll(ctx, domain.ListOrdersParams{Limit: fallbackScanLimit})
	if err != nil {
		uc.log.Errorf("Use Case: Fallback order scan failed for order %s: %v", orderID, err)
		return nil, domain.ErrOrderNotFound
	}
	for i := range page.Orders {
		if page.Orders[i].OrderID == orderID {
			uc.log.Infof("Use Case: Found order %s via fallback scan", orderID)
			return &page.Orders[i], nil
		}
	}

	return nil, domain.ErrOrderNotFound
}

// extractOrderRecord unwraps the single-order envelope: data, then order,
// then the body itself.
func extractOrderRecord(envelope map[string]any) (map[string]any, bool) {
	if data, ok := envelope["data"].(map[string]any); ok && len(data) > 0 {
		return data, true
	}
	if order, ok := envelope["order"].(map[string]any); ok && len(order) > 0 {
		return order, true
	}
	if len(envelope) > 0 {
		return envelope, true
	}
	return nil, false
}
