package service

import (
	"errors"

	"github.com/greenpark/cms/internal/db"
	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceService wraps the landscaping service catalogue.
type ServiceService struct {
	db *gorm.DB
}

// NewServiceService creates a ServiceService instance.
func NewServiceService(gdb *gorm.DB) *ServiceService {
	return &ServiceService{db: gdb}
}

// ServiceInput represents fields accepted when creating a service.
type ServiceInput struct {
	Title       string
	Description string
	Image       string
	Category    string
	Order       int
	Published   bool
}

// ServiceUpdateInput carries a partial update; nil fields stay unchanged.
type ServiceUpdateInput struct {
	Title       *string
	Description *string
	Image       *string
	Category    *string
	Order       *int
	Published   *bool
}

// List returns services matching the published flag in display order.
func (s *ServiceService) List(published bool) ([]db.Service, error) {
	if s.db == nil {
		return []db.Service{}, nil
	}

	var services []db.Service
	err := s.db.
		Preload("Images").
		Where("published = ?", published).
		Order("sort_order asc").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// ListAll returns every service regardless of publication state.
func (s *ServiceService) ListAll() ([]db.Service, error) {
	if s.db == nil {
		return []db.Service{}, nil
	}

	var services []db.Service
	if err := s.db.Preload("Images").Order("sort_order asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Get fetches one service with its images.
func (s *ServiceService) Get(id uint) (*db.Service, error) {
	if s.db == nil {
		return nil, ErrServiceNotFound
	}

	var svc db.Service
	if err := s.db.Preload("Images").First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// Create persists a new service.
func (s *ServiceService) Create(input ServiceInput) (*db.Service, error) {
	if s.db == nil {
		return nil, nil
	}

	svc := db.Service{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
		Order:       input.Order,
		Published:   input.Published,
	}
	if err := s.db.Create(&svc).Error; err != nil {
		return nil, err
	}
	return s.Get(svc.ID)
}

// Update applies a partial update.
func (s *ServiceService) Update(id uint, input ServiceUpdateInput) (*db.Service, error) {
	if s.db == nil {
		return nil, nil
	}

	var existing db.Service
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Order != nil {
		updates["sort_order"] = *input.Order
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}

	if len(updates) > 0 {
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete removes a service and its images.
func (s *ServiceService) Delete(id uint) error {
	if s.db == nil {
		return nil
	}

	var existing db.Service
	if err := s.db.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&db.ServiceImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db.Service{}, id).Error
	})
}

// UpdateOrder reassigns display positions in one transaction.
func (s *ServiceService) UpdateOrder(updates []OrderUpdate) error {
	if s.db == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return applyOrder[db.Service](tx, updates)
	})
}
