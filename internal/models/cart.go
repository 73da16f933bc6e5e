package models

// CartItem is one (user, product) row in a cart. Quantity is always >= 1;
// reaching zero removes the row instead of storing it.
type CartItem struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// CartLine is a cart item joined with current product details for display.
// Line totals are computed live against the catalog price, unlike order items
// which freeze the price at purchase time.
type CartLine struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"total_price"`
}
