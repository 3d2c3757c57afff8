package domain

import (
	"context"
	"encoding/json"
	"time"
)

const OrderStatusPending = "pending"

type OrderItem struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is the normalized order shape. The backend has shipped orders in two
// layouts (customer/payment/pricing nested, or flat), so everything the
// dashboard does not model explicitly is preserved in Extra and re-emitted
// when the order is marshalled.
type Order struct {
	ID              string      `json:"id"`
	OrderID         string      `json:"orderId"`
	CustomerName    *string     `json:"customerName"`
	CustomerEmail   *string     `json:"customerEmail"`
	CustomerPhone   *string     `json:"customerPhone"`
	CustomerAddress *string     `json:"customerAddress"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"paymentStatus"`
	TotalAmount     float64     `json:"totalAmount"`
	Items           []OrderItem `json:"items"`
	Notes           *string     `json:"notes"`
	OrderDate       time.Time   `json:"orderDate"`
	DeliveryDate    *time.Time  `json:"deliveryDate"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`

	Extra map[string]json.RawMessage `json:"-"`
}

// MarshalJSON emits the preserved upstream fields first and overlays the
// normalized ones, so normalized values always win on key collisions.
func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order
	base, err := json.Marshal(plain(o))
	if err != nil {
		return nil, err
	}
	if len(o.Extra) == 0 {
		return base, nil
	}

	merged := make(map[string]json.RawMessage, len(o.Extra)+16)
	for k, v := range o.Extra {
		merged[k] = v
	}
	var normalized map[string]json.RawMessage
	if err := json.Unmarshal(base, &normalized); err != nil {
		return nil, err
	}
	for k, v := range normalized {
		merged[k] = v
	}
	return json.Marshal(merged)
}

type ListOrdersParams struct {
	Page          int
	Limit         int
	Status        string
	PaymentStatus string
}

// OrderPage is the result of a list call: normalized orders plus whatever
// pagination metadata the backend supplied.
type OrderPage struct {
	Orders     []Order        `json:"orders"`
	Pagination map[string]any `json:"pagination"`
	Total      int            `json:"total"`
}

type OrderUseCase interface {
	GetAll(ctx context.Context, params ListOrdersParams) (*OrderPage, error)
	GetByID(ctx context.Context, orderID string) (*Order, error)
}
