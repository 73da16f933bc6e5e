package invoice_test

import (
	"testing"

	"quitq/internal/models"
	"quitq/pkg/invoice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	order := &models.Order{
		ID:              "order-1",
		UserID:          "user-1",
		TotalPrice:      25.0,
		Status:          models.OrderStatusPending,
		PaymentMethod:   models.PaymentCreditCard,
		ShippingAddress: "12 Main St",
		Items: []models.OrderItem{
			{ProductID: "prod-a", Quantity: 2, Price: 10.0},
			{ProductID: "prod-b", Quantity: 1, Price: 5.0},
		},
	}
	user := &models.User{ID: "user-1", Name: "Test User", Email: "test@example.com"}
	names := map[string]string{"prod-a": "Product A", "prod-b": "Product B"}

	text, err := invoice.Render(order, user, names)
	require.NoError(t, err)

	assert.Contains(t, text, "Order ID: order-1")
	assert.Contains(t, text, "Test User (test@example.com)")
	assert.Contains(t, text, "Ship to: 12 Main St")
	assert.Contains(t, text, "Product A x 2 - $20.00")
	assert.Contains(t, text, "Product B x 1 - $5.00")
	assert.Contains(t, text, "Total: $25.00")
}

func TestRenderUnknownProductFallsBackToID(t *testing.T) {
	order := &models.Order{
		ID:            "order-2",
		TotalPrice:    10.0,
		PaymentMethod: models.PaymentUPI,
		Items: []models.OrderItem{
			{ProductID: "prod-gone", Quantity: 1, Price: 10.0},
		},
	}
	user := &models.User{Name: "Test User", Email: "test@example.com"}

	text, err := invoice.Render(order, user, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "prod-gone x 1 - $10.00")
}
