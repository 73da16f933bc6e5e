package repositories

import (
	"errors"
	"fmt"
	"quitq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// lockForUpdate adds a SELECT ... FOR UPDATE clause where the dialect
// supports it. SQLite has no row locks; its single-writer lock already
// serializes concurrent mutations.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Upsert increments the quantity of an existing (userID, productID) entry or
// creates a new one. The read takes a row lock so two concurrent adds for the
// same product cannot lose an increment.
func (r *GORMCartRepository) Upsert(userID, productID string, qty int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				item = models.CartItem{
					ID:        uuid.New().String(),
					UserID:    userID,
					ProductID: productID,
					Quantity:  qty,
				}
				return tx.Create(&item).Error
			}
			return err
		}
		item.Quantity += qty
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return &item, nil
}

// Decrement lowers the entry's quantity by one, deleting the row at
// quantity 1. The read takes the same row lock as Upsert, so two concurrent
// decrements cannot both read the old quantity and lose one decrement.
func (r *GORMCartRepository) Decrement(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart item for product %s: %w", productID, models.ErrNotFound)
			}
			return fmt.Errorf("failed to get cart item: %w", err)
		}
		if item.Quantity <= 1 {
			deleted = true
			return tx.Delete(&item).Error
		}
		item.Quantity--
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	if deleted {
		return nil, nil
	}
	return &item, nil
}

// ListByUser retrieves all of the user's cart entries.
func (r *GORMCartRepository) ListByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Order("product_id").Find(&items, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart items for user %s: %w", userID, err)
	}
	return items, nil
}

// DeleteItem removes a single cart entry.
func (r *GORMCartRepository) DeleteItem(userID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item for product %s: %w", productID, models.ErrNotFound)
	}
	return nil
}
