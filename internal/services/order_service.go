package services

import (
	"encoding/json"
	"fmt"
	"log"

	"quitq/internal/models"
	"quitq/internal/repositories"
	"quitq/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client // RabbitMQ client
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// PlaceOrder converts the user's cart into an order. The repository performs
// the atomic cart-to-order conversion (empty-cart check first, then payment
// validation, frozen item prices, total computation, cart clearing). On
// success an order.created event is published best-effort.
func (s *OrderService) PlaceOrder(userID, paymentMethod, shippingAddress string) (*models.Order, error) {
	order, err := s.orderRepo.CreateFromCart(userID, paymentMethod, shippingAddress)
	if err != nil {
		return nil, err
	}

	// Publish an event to RabbitMQ for order creation. Consumers handle
	// invoice rendering and customer notification; a publish failure must
	// not fail the already-committed order.
	if s.mqClient != nil {
		orderCreatedMessage := map[string]interface{}{
			"orderID": order.ID,
			"userID":  order.UserID,
			"status":  order.Status,
			"total":   order.TotalPrice,
		}
		messageBody, err := json.Marshal(orderCreatedMessage)
		if err != nil {
			log.Printf("Failed to marshal order to JSON: %v", err)
		} else if err := s.mqClient.Publish("order", "order.created", messageBody); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetOrdersForUser retrieves the user's orders, newest first, with product
// display names joined live. Item prices stay frozen at what they were when
// the order was placed.
func (s *OrderService) GetOrdersForUser(userID string) ([]models.OrderView, error) {
	orders, err := s.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.OrderView, 0, len(orders))
	for _, order := range orders {
		view := models.OrderView{
			OrderID:         order.ID,
			TotalPrice:      order.TotalPrice,
			Status:          order.Status,
			PaymentMethod:   order.PaymentMethod,
			ShippingAddress: order.ShippingAddress,
			CreatedAt:       order.CreatedAt,
		}
		for _, item := range order.Items {
			name := ""
			if product, err := s.productRepo.GetByID(item.ProductID); err == nil {
				name = product.Name
			}
			view.Items = append(view.Items, models.OrderItemView{
				ProductID: item.ProductID,
				Name:      name,
				Quantity:  item.Quantity,
				Price:     item.Price,
				LineTotal: item.Price * float64(item.Quantity),
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetAllOrders retrieves every order for the admin listing.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.ListAll()
}

// UpdateOrderStatus updates the status of an existing order. The status must
// be one of the known values.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("status '%s': %w", status, models.ErrInvalidOrderStatus)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
