package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tradegate/marketplace-backend/internal/dto"
	"github.com/tradegate/marketplace-backend/internal/models"
	"github.com/tradegate/marketplace-backend/internal/slug"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("category slug already exists")
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(status string, parentID *uuid.UUID) ([]models.Category, error) {
	query := s.db.Model(&models.Category{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	}

	var categories []models.Category
	if err := query.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, invalid("name is required")
	}

	source := req.Slug
	if source == "" {
		source = req.Name
	}
	categorySlug := slug.Make(source)
	if categorySlug == "" {
		return nil, invalid("name must contain at least one alphanumeric character")
	}

	if taken, err := s.slugTaken(categorySlug, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrSlugTaken
	}

	category := models.Category{
		ID:     uuid.New(),
		Name:   req.Name,
		Slug:   categorySlug,
		Icon:   req.Icon,
		Status: models.CategoryStatusActive,
	}
	if req.Status != "" {
		if req.Status != models.CategoryStatusActive && req.Status != models.CategoryStatusInactive {
			return nil, invalid("status must be active or inactive")
		}
		category.Status = req.Status
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, invalid("invalid parent id")
		}
		category.ParentID = &parentID
	}

	if err := s.db.Create(&category).Error; err != nil {
		// A slug created concurrently slips past the pre-check; the
		// unique index catches it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) Update(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, invalid("name cannot be empty")
		}
		category.Name = *req.Name
		// Renaming re-derives the slug unless one was given explicitly.
		if req.Slug == nil {
			category.Slug = slug.Make(*req.Name)
		}
	}
	if req.Slug != nil {
		category.Slug = slug.Make(*req.Slug)
	}
	if category.Slug == "" {
		return nil, invalid("slug cannot be empty")
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.Status != nil {
		if *req.Status != models.CategoryStatusActive && *req.Status != models.CategoryStatusInactive {
			return nil, invalid("status must be active or inactive")
		}
		category.Status = *req.Status
	}
	if req.ParentID != nil {
		if *req.ParentID == "" {
			category.ParentID = nil
		} else {
			parentID, err := uuid.Parse(*req.ParentID)
			if err != nil {
				return nil, invalid("invalid parent id")
			}
			category.ParentID = &parentID
		}
	}

	if taken, err := s.slugTaken(category.Slug, category.ID); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrSlugTaken
	}

	if err := s.db.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) slugTaken(categorySlug string, exclude uuid.UUID) (bool, error) {
	var count int64
	query := s.db.Model(&models.Category{}).Where("slug = ?", categorySlug)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
