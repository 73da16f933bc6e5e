package handlers

import (
	"fmt"
	"log"

	"quitq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleViewCart)
	cartRoutes.Post("/", h.HandleAddToCart)
	cartRoutes.Put("/:productId/decrease", h.HandleDecreaseQuantity)
	cartRoutes.Delete("/:productId", h.HandleRemoveFromCart)
}

// AddToCartRequest represents the request body for adding a product.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// HandleAddToCart adds a product to the caller's cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	line, err := h.service.AddToCart(userID, req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %s to cart for user %s: %v", req.ProductID, userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not add product to cart",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Product added to cart successfully",
		"cart_item": line,
	})
}

// HandleViewCart retrieves the caller's cart with live line totals.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	lines, err := h.service.ViewCart(userID)
	if err != nil {
		log.Printf("Error viewing cart for user %s: %v", userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(lines)
}

// HandleDecreaseQuantity decrements a cart entry's quantity, removing the
// entry when it hits zero.
func (h *CartHandler) HandleDecreaseQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("productId")

	item, err := h.service.DecreaseQuantity(userID, productID)
	if err != nil {
		log.Printf("Error decreasing quantity of product %s for user %s: %v", productID, userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not decrease product quantity",
			"error":   err.Error(),
		})
	}

	if item == nil {
		return c.JSON(fiber.Map{
			"message": "Product removed from cart",
		})
	}
	return c.JSON(fiber.Map{
		"message":      "Product quantity decreased",
		"new_quantity": item.Quantity,
	})
}

// HandleRemoveFromCart deletes a cart entry unconditionally.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("productId")

	if err := h.service.RemoveFromCart(userID, productID); err != nil {
		log.Printf("Error removing product %s from cart for user %s: %v", productID, userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not remove product from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from cart",
	})
}
