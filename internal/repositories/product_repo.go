package repositories

import (
	"quitq/internal/models"
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	List(filter models.ProductFilter) ([]models.Product, error)
	Categories() ([]string, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
