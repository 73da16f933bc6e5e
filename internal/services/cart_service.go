package services

import (
	"fmt"

	"quitq/internal/models"
	"quitq/internal/repositories"
)

// CartService handles business logic for the per-user cart aggregate.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart adds qty of the product to the user's cart, incrementing an
// existing entry if one exists. The returned line shows the live line total
// computed against the current catalog price.
func (s *CartService) AddToCart(userID, productID string, qty int) (*models.CartLine, error) {
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < qty {
		return nil, fmt.Errorf("product %s (requested: %d, available: %d): %w",
			product.Name, qty, product.Stock, models.ErrInsufficientStock)
	}

	item, err := s.cartRepo.Upsert(userID, productID, qty)
	if err != nil {
		return nil, err
	}

	return &models.CartLine{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  item.Quantity,
		LineTotal: product.Price * float64(item.Quantity),
	}, nil
}

// ViewCart returns the user's cart entries joined with current product
// details. Line totals are recomputed live on every call; they are not frozen
// the way order items are.
func (s *CartService) ViewCart(userID string) ([]models.CartLine, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, models.CartLine{
			ID:        item.ID,
			UserID:    item.UserID,
			ProductID: item.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			LineTotal: product.Price * float64(item.Quantity),
		})
	}
	return lines, nil
}

// DecreaseQuantity decrements the entry's quantity by one. An entry at
// quantity 1 is removed entirely; a quantity-0 row is never stored. The
// repository performs the read-modify-write under a row lock, mirroring
// the add path.
func (s *CartService) DecreaseQuantity(userID, productID string) (*models.CartItem, error) {
	return s.cartRepo.Decrement(userID, productID)
}

// RemoveFromCart deletes the entry unconditionally.
func (s *CartService) RemoveFromCart(userID, productID string) error {
	return s.cartRepo.DeleteItem(userID, productID)
}
