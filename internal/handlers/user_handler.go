package handlers

import (
	"fmt"
	"log"

	"quitq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the caller's own profile.
type UserHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/me", h.HandleGetProfile)
	userRoutes.Put("/me", h.HandleUpdateProfile)
}

// HandleGetProfile returns the resolved caller's profile.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	user, err := h.authService.ResolveUserByID(userID)
	if err != nil {
		log.Printf("Error loading profile for user %s: %v", userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not load profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"omitempty,max=255"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// HandleUpdateProfile updates the caller's name, email, address, and
// optionally their password.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
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

	user, err := h.authService.ResolveUserByID(userID)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not load profile",
			"error":   err.Error(),
		})
	}

	if err := h.authService.UpdateProfile(user, req.Name, req.Email, req.Address, req.Password); err != nil {
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"message": "Could not update profile",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}
