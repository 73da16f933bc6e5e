package repositories

import (
	"quitq/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateFromCart converts the user's cart into a new Pending order in a
	// single transaction: cart rows are locked and read, one order item is
	// created per row freezing the current unit price, the total is computed,
	// and the cart is cleared. Either everything persists or nothing does.
	CreateFromCart(userID, paymentMethod, shippingAddress string) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	ListAll() ([]models.Order, error)
	UpdateStatus(id string, status string) error
	// Delete(id string) error // Deletion of orders might be complex, so we'll omit for now.
}
