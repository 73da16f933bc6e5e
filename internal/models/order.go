package models

import "time"

// Order statuses. Transitions are linear (Pending -> Shipped -> Delivered)
// and only administrators may change them.
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
)

// Accepted payment method labels. Only the label is recorded; no payment
// processing happens here.
const (
	PaymentCreditCard     = "CreditCard"
	PaymentUPI            = "UPI"
	PaymentNetBanking     = "NetBanking"
	PaymentCashOnDelivery = "CashOnDelivery"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is one of the accepted payment labels.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCreditCard, PaymentUPI, PaymentNetBanking, PaymentCashOnDelivery:
		return true
	}
	return false
}

// OrderItem is an immutable snapshot of a cart entry at purchase time.
// Price is the unit price frozen when the order was placed; later catalog
// price changes never alter it.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderItemView is an order item prepared for display: the unit price stays
// frozen, only the product name is joined live.
type OrderItemView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"total_price"`
}

// OrderView is an order prepared for display.
type OrderView struct {
	OrderID         string          `json:"order_id"`
	TotalPrice      float64         `json:"total_price"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress string          `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []OrderItemView `json:"products"`
}

// Order represents a placed customer order. Everything except Status is
// immutable once created; TotalPrice is set exactly once during placement.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string      `json:"user_id" gorm:"type:varchar(36);index"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice      float64     `json:"total_price"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"payment_method" gorm:"type:varchar(50)"`
	ShippingAddress string      `json:"shipping_address" gorm:"type:varchar(255)"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
