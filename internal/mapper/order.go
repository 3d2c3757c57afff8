package mapper

import (
	"encoding/json"
	"time"

	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

// modeledOrderKeys are the top-level fields the normalized Order consumes.
// Anything else is preserved verbatim in Order.Extra.
var modeledOrderKeys = map[string]struct{}{
	"_id": {}, "id": {},
	"order_id": {}, "orderId": {},
	"customer": {}, "user": {}, "payment": {}, "pricing": {},
	"customerName": {}, "customerEmail": {}, "customerPhone": {}, "customerAddress": {},
	"status": {}, "paymentStatus": {}, "totalAmount": {},
	"items": {}, "notes": {},
	"order_date": {}, "orderDate": {},
	"delivery_date": {}, "deliveryDate": {},
	"createdAt": {}, "updatedAt": {},
}

// Order normalizes a raw backend order. The backend has shipped two layouts
// (customer/payment/pricing nested, or everything flat), so each field is
// resolved through an ordered chain of candidate paths, first present value
// wins. Feeding an already-normalized order back through leaves the
// defaulted fields unchanged.
func Order(raw map[string]any) domain.Order {
	now := time.Now().UTC()

	order := domain.Order{
		ID:              firstStringOr(raw, "", "_id", "id"),
		OrderID:         firstStringOr(raw, "", "order_id", "orderId"),
		CustomerName:    firstString(raw, "customer.name", "user.username", "customerName"),
		CustomerEmail:   firstString(raw, "customer.email", "user.user_email", "customerEmail"),
		CustomerPhone:   firstString(raw, "customer.phone", "customerPhone"),
		CustomerAddress: firstString(raw, "customer.address", "customerAddress"),
		Status:          firstStringOr(raw, domain.OrderStatusPending, "status"),
		PaymentStatus:   firstStringOr(raw, domain.OrderStatusPending, "payment.status", "paymentStatus"),
		TotalAmount:     firstNumberOr(raw, 0, "pricing.total", "totalAmount"),
		Items:           orderItems(raw["items"]),
		Notes:           firstString(raw, "notes"),
		OrderDate:       firstTimeOr(raw, now, "order_date", "orderDate"),
		DeliveryDate:    firstTime(raw, "delivery_date", "deliveryDate"),
		CreatedAt:       firstTimeOr(raw, now, "createdAt"),
		UpdatedAt:       firstTimeOr(raw, now, "updatedAt"),
	}

	for key, value := range raw {
		if _, modeled := modeledOrderKeys[key]; modeled {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			continue
		}
		if order.Extra == nil {
			order.Extra = make(map[string]json.RawMessage)
		}
		order.Extra[key] = encoded
	}

	return order
}

func Orders(raw []map[string]any) []domain.Order {
	orders := make([]domain.Order, 0, len(raw))
	for _, r := range raw {
		orders = append(orders, Order(r))
	}
	return orders
}

func orderItems(v any) []domain.OrderItem {
	list, ok := v.([]any)
	if !ok {
		return []domain.OrderItem{}
	}

	items := make([]domain.OrderItem, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := domain.OrderItem{
			Name:        firstStringOr(m, "", "name"),
			Description: firstString(m, "description"),
			Quantity:    int(firstNumberOr(m, 1, "quantity")),
			Price:       firstNumberOr(m, 0, "price"),
		}
		items = append(items, item)
	}
	return items
}
