package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

func decodeOrder(t *testing.T, payload string) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestOrderNestedShape(t *testing.T) {
	raw := decodeOrder(t, `{
		"_id": "o1",
		"order_id": "ORD-100",
		"customer": {"name": "Asha", "email": "asha@example.com", "phone": "+91111", "address": "12 Teak Lane"},
		"payment": {"status": "paid"},
		"pricing": {"total": 4500.5},
		"status": "shipped",
		"order_date": "2024-04-02T09:00:00Z",
		"items": [{"name": "Sofa", "quantity": 2, "price": 2250.25}]
	}`)

	got := Order(raw)

	require.Equal(t, "o1", got.ID)
	require.Equal(t, "ORD-100", got.OrderID)
	require.Equal(t, "Asha", *got.CustomerName)
	require.Equal(t, "asha@example.com", *got.CustomerEmail)
	require.Equal(t, "+91111", *got.CustomerPhone)
	require.Equal(t, "12 Teak Lane", *got.CustomerAddress)
	require.Equal(t, "shipped", got.Status)
	require.Equal(t, "paid", got.PaymentStatus)
	require.Equal(t, 4500.5, got.TotalAmount)
	require.Equal(t, time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC), got.OrderDate.UTC())
	require.Len(t, got.Items, 1)
	require.Equal(t, "Sofa", got.Items[0].Name)
	require.Equal(t, 2, got.Items[0].Quantity)
	require.Equal(t, 2250.25, got.Items[0].Price)
}

func TestOrderShapeInvariance(t *testing.T) {
	nested := Order(decodeOrder(t, `{
		"_id": "o1",
		"order_id": "ORD-100",
		"customer": {"name": "Asha", "email": "asha@example.com", "phone": "+91111", "address": "12 Teak Lane"}
	}`))
	flat := Order(decodeOrder(t, `{
		"_id": "o1",
		"order_id": "ORD-100",
		"customerName": "Asha",
		"customerEmail": "asha@example.com",
		"customerPhone": "+91111",
		"customerAddress": "12 Teak Lane"
	}`))
	legacy := Order(decodeOrder(t, `{
		"_id": "o1",
		"order_id": "ORD-100",
		"user": {"username": "Asha", "user_email": "asha@example.com"}
	}`))

	require.Equal(t, *nested.CustomerName, *flat.CustomerName)
	require.Equal(t, *nested.CustomerEmail, *flat.CustomerEmail)
	require.Equal(t, *nested.CustomerPhone, *flat.CustomerPhone)
	require.Equal(t, *nested.CustomerAddress, *flat.CustomerAddress)
	require.Equal(t, *nested.CustomerName, *legacy.CustomerName)
	require.Equal(t, *nested.CustomerEmail, *legacy.CustomerEmail)
}

func TestOrderDefaults(t *testing.T) {
	before := time.Now().UTC()
	got := Order(decodeOrder(t, `{"_id": "o2", "order_id": "ORD-200"}`))
	after := time.Now().UTC()

	require.Equal(t, domain.OrderStatusPending, got.Status)
	require.Equal(t, domain.OrderStatusPending, got.PaymentStatus)
	require.Equal(t, float64(0), got.TotalAmount)
	require.Empty(t, got.Items)
	require.Nil(t, got.CustomerName)
	require.Nil(t, got.Notes)
	require.Nil(t, got.DeliveryDate)
	require.False(t, got.OrderDate.Before(before))
	require.False(t, got.OrderDate.After(after))
}

func TestOrderItemDefaults(t *testing.T) {
	got := Order(decodeOrder(t, `{"_id": "o3", "items": [{"name": "Chair"}, {"name": "Desk", "quantity": 3}]}`))

	require.Len(t, got.Items, 2)
	require.Equal(t, 1, got.Items[0].Quantity)
	require.Equal(t, float64(0), got.Items[0].Price)
	require.Equal(t, 3, got.Items[1].Quantity)
}

func TestOrderPreservesExtraFields(t *testing.T) {
	got := Order(decodeOrder(t, `{
		"_id": "o4",
		"order_id": "ORD-400",
		"status": "pending",
		"courier_tracking": "TRK-77",
		"warehouse": {"code": "WH-2"}
	}`))

	require.Contains(t, got.Extra, "courier_tracking")
	require.Contains(t, got.Extra, "warehouse")
	require.NotContains(t, got.Extra, "status")

	encoded, err := json.Marshal(got)
	require.NoError(t, err)

	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal(encoded, &roundTrip))
	require.Equal(t, "TRK-77", roundTrip["courier_tracking"])
	require.Equal(t, "o4", roundTrip["id"])
	require.Equal(t, "ORD-400", roundTrip["orderId"])
}

func TestOrderIdempotentOverOwnOutput(t *testing.T) {
	first := Order(decodeOrder(t, `{
		"_id": "o5",
		"order_id": "ORD-500",
		"customer": {"name": "Ravi", "email": "ravi@example.com"},
		"payment": {"status": "paid"},
		"pricing": {"total": 999}
	}`))

	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	second := Order(decodeOrder(t, string(encoded)))

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.OrderID, second.OrderID)
	require.Equal(t, *first.CustomerName, *second.CustomerName)
	require.Equal(t, *first.CustomerEmail, *second.CustomerEmail)
	require.Equal(t, first.Status, second.Status)
	require.Equal(t, first.PaymentStatus, second.PaymentStatus)
	require.Equal(t, first.TotalAmount, second.TotalAmount)
}
