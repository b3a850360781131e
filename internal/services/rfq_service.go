package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tradegate/marketplace-backend/internal/dto"
	"github.com/tradegate/marketplace-backend/internal/models"
)

var ErrRFQNotFound = errors.New("rfq not found")

type RFQService struct {
	db *gorm.DB
}

func NewRFQService(db *gorm.DB) *RFQService {
	return &RFQService{db: db}
}

func (s *RFQService) Create(buyerID uuid.UUID, req *dto.CreateRFQRequest) (*models.RFQ, error) {
	if req.Title == "" || req.Description == "" {
		return nil, invalid("title and description are required")
	}
	if req.Quantity == nil {
		return nil, invalid("quantity is required and must be numeric")
	}
	if *req.Quantity <= 0 {
		return nil, invalid("quantity must be positive")
	}

	rfq := models.RFQ{
		ID:          uuid.New(),
		BuyerID:     buyerID,
		Title:       req.Title,
		Description: req.Description,
		Quantity:    *req.Quantity,
		TargetPrice: req.TargetPrice,
		Country:     req.Country,
		Status:      models.RFQStatusOpen,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, invalid("invalid category id")
		}
		rfq.CategoryID = &categoryID
	}

	if err := s.db.Create(&rfq).Error; err != nil {
		return nil, fmt.Errorf("failed to create rfq: %w", err)
	}
	return &rfq, nil
}

// List returns the buyer's own RFQs, newest first.
func (s *RFQService) List(buyerID uuid.UUID) ([]models.RFQ, error) {
	var rfqs []models.RFQ
	if err := s.db.Where("buyer_id = ?", buyerID).Order("created_at DESC").Find(&rfqs).Error; err != nil {
		return nil, err
	}
	return rfqs, nil
}

// Get is scoped to the owning buyer; another buyer's RFQ is indistinguishable
// from a missing one.
func (s *RFQService) Get(id, buyerID uuid.UUID) (*models.RFQ, error) {
	var rfq models.RFQ
	if err := s.db.Where("id = ? AND buyer_id = ?", id, buyerID).First(&rfq).Error; err != nil {
		return nil, ErrRFQNotFound
	}
	return &rfq, nil
}

func (s *RFQService) UpdateStatus(id, buyerID uuid.UUID, status string) (*models.RFQ, error) {
	if !models.ValidRFQStatus(status) {
		return nil, invalid("status must be open, closed or cancelled")
	}

	rfq, err := s.Get(id, buyerID)
	if err != nil {
		return nil, err
	}

	rfq.Status = status
	if err := s.db.Save(rfq).Error; err != nil {
		return nil, fmt.Errorf("failed to update rfq: %w", err)
	}
	return rfq, nil
}
