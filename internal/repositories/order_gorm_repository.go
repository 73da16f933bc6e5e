package repositories

import (
	"errors"
	"fmt"
	"quitq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CreateFromCart converts the user's cart into a Pending order inside one
// transaction. Cart rows and the referenced products are read under row
// locks, one order item per cart row freezes the current unit price, and the
// cart is cleared before the transaction commits. A failure at any step rolls
// everything back, so a crash can never leave order items without their cart
// having been cleared.
//
// Stock is deliberately not decremented here; the catalog only caps how much
// can be added to a cart.
func (r *GORMOrderRepository) CreateFromCart(userID, paymentMethod, shippingAddress string) (*models.Order, error) {
	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Status:          models.OrderStatusPending,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := lockForUpdate(tx).Order("product_id").Find(&cartItems, "user_id = ?", userID).Error; err != nil {
			return fmt.Errorf("failed to read cart for user %s: %w", userID, err)
		}
		if len(cartItems) == 0 {
			return models.ErrCartEmpty
		}
		// checked after the cart read so an empty cart reports as empty
		// even when the payment label is also bad
		if !models.ValidPaymentMethod(paymentMethod) {
			return fmt.Errorf("payment method '%s': %w", paymentMethod, models.ErrInvalidPaymentMethod)
		}

		var total float64
		for _, item := range cartItems {
			var product models.Product
			if err := lockForUpdate(tx).First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product with ID %s: %w", item.ProductID, models.ErrNotFound)
				}
				return fmt.Errorf("failed to get product %s: %w", item.ProductID, err)
			}

			order.Items = append(order.Items, models.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price, // frozen unit price
			})
			total += product.Price * float64(item.Quantity)
		}
		order.TotalPrice = total

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
			return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID retrieves an order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// ListByUser retrieves the user's orders, newest first, with their items.
func (r *GORMOrderRepository) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at desc").Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// ListAll retrieves every order, newest first, with items.
func (r *GORMOrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}
