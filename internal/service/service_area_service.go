package service

import (
	"errors"

	"github.com/greenpark/cms/internal/db"
	"gorm.io/gorm"
)

var ErrServiceAreaNotFound = errors.New("service area not found")

// ServiceAreaService wraps the served-districts strip.
type ServiceAreaService struct {
	db *gorm.DB
}

// NewServiceAreaService creates a ServiceAreaService instance.
func NewServiceAreaService(gdb *gorm.DB) *ServiceAreaService {
	return &ServiceAreaService{db: gdb}
}

// ServiceAreaInput represents the full field set; the admin form always
// submits every field, so updates are not partial here.
type ServiceAreaInput struct {
	Name      string
	Image     string
	Order     int
	Published bool
}

// ListPublished returns published areas in display order.
func (s *ServiceAreaService) ListPublished() ([]db.ServiceArea, error) {
	if s.db == nil {
		return []db.ServiceArea{}, nil
	}

	var areas []db.ServiceArea
	err := s.db.Where("published = ?", true).Order("sort_order asc").Find(&areas).Error
	if err != nil {
		return nil, err
	}
	return areas, nil
}

// ListAll returns every area regardless of publication state.
func (s *ServiceAreaService) ListAll() ([]db.ServiceArea, error) {
	if s.db == nil {
		return []db.ServiceArea{}, nil
	}

	var areas []db.ServiceArea
	if err := s.db.Order("sort_order asc").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// Get fetches one area by id.
func (s *ServiceAreaService) Get(id uint) (*db.ServiceArea, error) {
	if s.db == nil {
		return nil, ErrServiceAreaNotFound
	}

	var area db.ServiceArea
	if err := s.db.First(&area, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceAreaNotFound
		}
		return nil, err
	}
	return &area, nil
}

// Create persists a new area.
func (s *ServiceAreaService) Create(input ServiceAreaInput) (*db.ServiceArea, error) {
	if s.db == nil {
		return nil, nil
	}

	area := db.ServiceArea{
		Name:      input.Name,
		Image:     input.Image,
		Order:     input.Order,
		Published: input.Published,
	}
	if err := s.db.Create(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

// Update replaces the area's fields.
func (s *ServiceAreaService) Update(id uint, input ServiceAreaInput) (*db.ServiceArea, error) {
	if s.db == nil {
		return nil, nil
	}

	var existing db.ServiceArea
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceAreaNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"name":       input.Name,
		"image":      input.Image,
		"sort_order": input.Order,
		"published":  input.Published,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// Delete removes an area.
func (s *ServiceAreaService) Delete(id uint) error {
	if s.db == nil {
		return nil
	}

	res := s.db.Delete(&db.ServiceArea{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrServiceAreaNotFound
	}
	return nil
}

// UpdateOrder reassigns display positions in one transaction.
func (s *ServiceAreaService) UpdateOrder(updates []OrderUpdate) error {
	if s.db == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return applyOrder[db.ServiceArea](tx, updates)
	})
}
