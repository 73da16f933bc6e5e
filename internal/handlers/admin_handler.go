package handlers

import (
	"log"

	"quitq/internal/models"
	"quitq/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin dashboard.
type AdminHandler struct {
	productService *services.ProductService
	orderService   *services.OrderService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(productService *services.ProductService, orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{
		productService: productService,
		orderService:   orderService,
	}
}

// RegisterRoutes registers the dashboard route. The caller is expected to
// mount it behind the admin middleware.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleDashboard)
}

// HandleDashboard summarizes the store for administrators.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	products, err := h.productService.ListProducts(models.ProductFilter{})
	if err != nil {
		log.Printf("Error loading products for dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load dashboard",
			"error":   err.Error(),
		})
	}

	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		log.Printf("Error loading orders for dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load dashboard",
			"error":   err.Error(),
		})
	}

	var revenue float64
	pending := 0
	for _, order := range orders {
		revenue += order.TotalPrice
		if order.Status == models.OrderStatusPending {
			pending++
		}
	}

	return c.JSON(fiber.Map{
		"message":        "Welcome to Admin Panel",
		"product_count":  len(products),
		"order_count":    len(orders),
		"pending_orders": pending,
		"total_revenue":  revenue,
	})
}
