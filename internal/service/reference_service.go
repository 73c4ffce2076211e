package service

import (
	"errors"

	"github.com/greenpark/cms/internal/db"
	"gorm.io/gorm"
)

var ErrReferenceNotFound = errors.New("reference not found")

// ReferenceService wraps client testimonial / logo entries.
type ReferenceService struct {
	db *gorm.DB
}

// NewReferenceService creates a ReferenceService instance.
func NewReferenceService(gdb *gorm.DB) *ReferenceService {
	return &ReferenceService{db: gdb}
}

// ReferenceInput represents fields accepted when creating a reference.
type ReferenceInput struct {
	CompanyName string
	Logo        string
	Description string
	Website     string
	Order       int
	Published   bool
}

// ReferenceUpdateInput carries a partial update; nil fields stay unchanged.
type ReferenceUpdateInput struct {
	CompanyName *string
	Logo        *string
	Description *string
	Website     *string
	Order       *int
	Published   *bool
}

// List returns references matching the published flag in display order.
func (s *ReferenceService) List(published bool) ([]db.Reference, error) {
	if s.db == nil {
		return []db.Reference{}, nil
	}

	var refs []db.Reference
	err := s.db.Where("published = ?", published).Order("sort_order asc").Find(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// ListAll returns every reference regardless of publication state.
func (s *ReferenceService) ListAll() ([]db.Reference, error) {
	if s.db == nil {
		return []db.Reference{}, nil
	}

	var refs []db.Reference
	if err := s.db.Order("sort_order asc").Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

// Get fetches one reference by id.
func (s *ReferenceService) Get(id uint) (*db.Reference, error) {
	if s.db == nil {
		return nil, ErrReferenceNotFound
	}

	var ref db.Reference
	if err := s.db.First(&ref, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferenceNotFound
		}
		return nil, err
	}
	return &ref, nil
}

// Create persists a new reference.
func (s *ReferenceService) Create(input ReferenceInput) (*db.Reference, error) {
	if s.db == nil {
		return nil, nil
	}

	ref := db.Reference{
		CompanyName: input.CompanyName,
		Logo:        input.Logo,
		Description: input.Description,
		Website:     input.Website,
		Order:       input.Order,
		Published:   input.Published,
	}
	if err := s.db.Create(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

// Update applies a partial update.
func (s *ReferenceService) Update(id uint, input ReferenceUpdateInput) (*db.Reference, error) {
	if s.db == nil {
		return nil, nil
	}

	var existing db.Reference
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferenceNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.CompanyName != nil {
		updates["company_name"] = *input.CompanyName
	}
	if input.Logo != nil {
		updates["logo"] = *input.Logo
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Website != nil {
		updates["website"] = *input.Website
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
	return &existing, nil
}

// Delete removes a reference.
func (s *ReferenceService) Delete(id uint) error {
	if s.db == nil {
		return nil
	}

	res := s.db.Delete(&db.Reference{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReferenceNotFound
	}
	return nil
}

// UpdateOrder reassigns display positions in one transaction.
func (s *ReferenceService) UpdateOrder(updates []OrderUpdate) error {
	if s.db == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return applyOrder[db.Reference](tx, updates)
	})
}
