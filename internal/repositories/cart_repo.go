package repositories

import (
	"quitq/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// Upsert adds qty to the (userID, productID) entry, creating it when
	// absent, and returns the resulting item. The increment is serialized
	// with a row lock so concurrent adds do not lose updates.
	Upsert(userID, productID string, qty int) (*models.CartItem, error)
	// Decrement lowers the (userID, productID) entry's quantity by one
	// under the same row lock as Upsert, deleting the entry at quantity 1.
	// The returned item is nil when the entry was deleted.
	Decrement(userID, productID string) (*models.CartItem, error)
	ListByUser(userID string) ([]models.CartItem, error)
	DeleteItem(userID, productID string) error
}
