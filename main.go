package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"quitq/internal/config"
	"quitq/internal/handlers"
	"quitq/internal/middleware"
	"quitq/internal/models"
	"quitq/internal/repositories"
	"quitq/internal/services"
	"quitq/pkg/invoice"
	"quitq/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ ---
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL})
	if err != nil {
		log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
	}
	defer mqClient.Close() // Ensure the connection is closed on exit

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWT.Secret)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, mqClient)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(productService, orderService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	apiV1 := app.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(apiV1)

	// Protected routes (require a valid bearer token)
	protected := apiV1.Group("", middleware.AuthRequired(authService))
	userHandler.RegisterRoutes(protected)
	productHandler.RegisterRoutes(protected)
	cartHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)

	// Admin routes (require the admin flag on top of a valid token)
	adminRoutes := protected.Group("", middleware.AdminRequired())
	productHandler.RegisterAdminRoutes(adminRoutes)
	adminGroup := adminRoutes.Group("/admin")
	adminHandler.RegisterRoutes(adminGroup)
	orderHandler.RegisterAdminRoutes(adminGroup)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order Event Consumer ---
	// Renders an invoice for each placed order and logs the notification
	// dispatch. Runs until the channel closes.
	go func() {
		log.Println("Starting RabbitMQ consumer for order events...")
		messageHandler := func(msg amqp.Delivery) error {
			var event struct {
				OrderID string `json:"orderID"`
				UserID  string `json:"userID"`
			}
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				log.Printf("Discarding malformed order event (tag %d): %v", msg.DeliveryTag, err)
				return nil
			}

			order, err := orderService.GetOrderByID(event.OrderID)
			if err != nil {
				return err
			}
			user, err := userRepo.GetByID(event.UserID)
			if err != nil {
				return err
			}

			names := make(map[string]string, len(order.Items))
			for _, item := range order.Items {
				if product, err := productRepo.GetByID(item.ProductID); err == nil {
					names[item.ProductID] = product.Name
				}
			}

			text, err := invoice.Render(order, user, names)
			if err != nil {
				return err
			}
			log.Printf("Invoice for order %s:\n%s", order.ID, text)
			log.Printf("Notification dispatched to %s for order %s", user.Email, order.ID)
			return nil
		}
		if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.Server.Port)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Server.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
