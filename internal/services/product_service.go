package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to the catalog. Reads are
// public; mutations are gated behind the admin role check.
type ProductService struct {
	repo repositories.ProductRepository
	auth *AuthService
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, auth *AuthService) *ProductService {
	return &ProductService{
		repo: repo,
		auth: auth,
	}
}

// GetAllProducts retrieves all products, optionally filtered by category.
func (s *ProductService) GetAllProducts(categoryID string) ([]models.Product, error) {
	return s.repo.GetAll(categoryID)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product on behalf of an administrator.
func (s *ProductService) CreateProduct(adminID string, product *models.Product) error {
	if _, err := s.auth.RequireAdmin(adminID); err != nil {
		return err
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product on behalf of an administrator.
func (s *ProductService) UpdateProduct(adminID string, product *models.Product) error {
	if _, err := s.auth.RequireAdmin(adminID); err != nil {
		return err
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product on behalf of an administrator.
func (s *ProductService) DeleteProduct(adminID, id string) error {
	if _, err := s.auth.RequireAdmin(adminID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
