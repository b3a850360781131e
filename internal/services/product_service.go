package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tradegate/marketplace-backend/internal/dto"
	"github.com/tradegate/marketplace-backend/internal/models"
	"github.com/tradegate/marketplace-backend/internal/principal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotProductOwner = errors.New("product belongs to another seller")
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) List(sellerID, categoryID *uuid.UUID, status string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})
	if sellerID != nil {
		query = query.Where("seller_id = ?", *sellerID)
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

func (s *ProductService) Create(sellerID uuid.UUID, req *dto.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, invalid("name is required")
	}
	if req.Price == nil {
		return nil, invalid("price is required and must be numeric")
	}
	if *req.Price < 0 {
		return nil, invalid("price cannot be negative")
	}

	product := models.Product{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Currency:    "AED",
		MinOrderQty: 1,
		Images:      datatypes.NewJSONSlice(req.Images),
		Status:      models.ProductStatusActive,
	}
	if req.Currency != "" {
		product.Currency = req.Currency
	}
	if req.MinOrderQty != nil {
		if *req.MinOrderQty < 1 {
			return nil, invalid("min order quantity must be at least 1")
		}
		product.MinOrderQty = *req.MinOrderQty
	}
	if req.Status != "" {
		if !validProductStatus(req.Status) {
			return nil, invalid("status must be active, draft or inactive")
		}
		product.Status = req.Status
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, invalid("invalid category id")
		}
		product.CategoryID = &categoryID
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Update overlays the provided fields onto an existing product. Ownership is
// re-checked against the stored row: only the owning seller or an admin may
// mutate it.
func (s *ProductService) Update(id uuid.UUID, actor *principal.Principal, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(product, actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, invalid("name cannot be empty")
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, invalid("price cannot be negative")
		}
		product.Price = *req.Price
	}
	if req.Currency != nil {
		product.Currency = *req.Currency
	}
	if req.MinOrderQty != nil {
		if *req.MinOrderQty < 1 {
			return nil, invalid("min order quantity must be at least 1")
		}
		product.MinOrderQty = *req.MinOrderQty
	}
	if req.Images != nil {
		product.Images = datatypes.NewJSONSlice(req.Images)
	}
	if req.Status != nil {
		if !validProductStatus(*req.Status) {
			return nil, invalid("status must be active, draft or inactive")
		}
		product.Status = *req.Status
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			product.CategoryID = nil
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, invalid("invalid category id")
			}
			product.CategoryID = &categoryID
		}
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(id uuid.UUID, actor *principal.Principal) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(product, actor); err != nil {
		return err
	}
	return s.db.Delete(product).Error
}

func (s *ProductService) checkOwnership(product *models.Product, actor *principal.Principal) error {
	if actor.Role == models.RoleAdmin {
		return nil
	}
	if product.SellerID != actor.ID {
		return ErrNotProductOwner
	}
	return nil
}

func validProductStatus(status string) bool {
	return status == models.ProductStatusActive ||
		status == models.ProductStatusDraft ||
		status == models.ProductStatusInactive
}
