package store

import (
	"errors"
	"fmt"
	"log"

	"shoply-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStore owns product records in the catalog.
type ProductStore struct {
	DB *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{DB: db}
}

func (s *ProductStore) List() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.DB.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID looks up a product by its string id. A malformed id behaves
// like a missing product rather than an error.
func (s *ProductStore) GetByID(id string) (*models.Product, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var product models.Product
	if err := s.DB.Where("id = ?", pid).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

// Create validates and inserts a new product, returning its id.
func (s *ProductStore) Create(name string, price float64, image string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if price <= 0 {
		return "", fmt.Errorf("%w: price must be greater than 0", ErrInvalidProduct)
	}

	product := models.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: price,
		Image: image,
	}
	if err := s.DB.Create(&product).Error; err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	return product.ID.String(), nil
}

// Delete removes a product and reports whether a record existed. On a
// successful delete it sweeps the product out of every cart in a single
// statement. The sweep is best-effort: the product row is already gone,
// so a sweep failure is logged and the deletion stands, possibly leaving
// stale lines in some carts.
func (s *ProductStore) Delete(id string) (bool, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	res := s.DB.Where("id = ?", pid).Delete(&models.Product{})
	if res.Error != nil {
		return false, fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	if err := s.DB.Where("product_id = ?", pid.String()).Delete(&models.CartItem{}).Error; err != nil {
		log.Printf("WARNING: product %s deleted but cart sweep failed, stale cart lines may remain: %v", pid, err)
	}
	return true, nil
}
