package service

import (
	"errors"

	"github.com/greenpark/cms/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound      = errors.New("gallery not found")
	ErrGalleryImageNotFound = errors.New("gallery image not found")
)

// GalleryService wraps gallery related database operations.
type GalleryService struct {
	db *gorm.DB
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// GalleryImageInput is one photo supplied with a gallery create.
type GalleryImageInput struct {
	URL   string
	Alt   string
	Order *int
}

// GalleryInput represents fields accepted when creating a gallery.
type GalleryInput struct {
	Title       string
	Description string
	Order       int
	Published   bool
	Images      []GalleryImageInput
}

// GalleryUpdateInput carries a partial update; nil fields stay unchanged.
type GalleryUpdateInput struct {
	Title       *string
	Description *string
	Order       *int
	Published   *bool
}

// List returns galleries matching the published flag, in display order,
// images ordered within each gallery.
func (s *GalleryService) List(published bool) ([]db.Gallery, error) {
	if s.db == nil {
		return []db.Gallery{}, nil
	}

	var galleries []db.Gallery
	err := s.db.
		Preload("Images", orderImages).
		Where("published = ?", published).
		Order("sort_order asc").
		Find(&galleries).Error
	if err != nil {
		return nil, err
	}
	return galleries, nil
}

// ListAll returns every gallery regardless of publication state.
func (s *GalleryService) ListAll() ([]db.Gallery, error) {
	if s.db == nil {
		return []db.Gallery{}, nil
	}

	var galleries []db.Gallery
	err := s.db.
		Preload("Images", orderImages).
		Order("sort_order asc").
		Find(&galleries).Error
	if err != nil {
		return nil, err
	}
	return galleries, nil
}

// Get fetches one gallery with ordered images.
func (s *GalleryService) Get(id uint) (*db.Gallery, error) {
	if s.db == nil {
		return nil, ErrGalleryNotFound
	}

	var gallery db.Gallery
	if err := s.db.Preload("Images", orderImages).First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &gallery, nil
}

// Create persists a gallery and any nested images. Images missing an
// explicit order keep their position in the submitted list.
func (s *GalleryService) Create(input GalleryInput) (*db.Gallery, error) {
	if s.db == nil {
		return nil, nil
	}

	gallery := db.Gallery{
		Title:       input.Title,
		Description: input.Description,
		Order:       input.Order,
		Published:   input.Published,
	}
	for i, img := range input.Images {
		order := i
		if img.Order != nil {
			order = *img.Order
		}
		gallery.Images = append(gallery.Images, db.GalleryImage{
			URL:   img.URL,
			Alt:   img.Alt,
			Order: order,
		})
	}

	if err := s.db.Create(&gallery).Error; err != nil {
		return nil, err
	}
	return s.Get(gallery.ID)
}

// Update applies a partial update to the gallery row.
func (s *GalleryService) Update(id uint, input GalleryUpdateInput) (*db.Gallery, error) {
	if s.db == nil {
		return nil, nil
	}

	var existing db.Gallery
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
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

// Delete removes a gallery and its images.
func (s *GalleryService) Delete(id uint) error {
	if s.db == nil {
		return nil
	}

	var existing db.Gallery
	if err := s.db.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGalleryNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_id = ?", id).Delete(&db.GalleryImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db.Gallery{}, id).Error
	})
}

// AddImage attaches one photo to an existing gallery.
func (s *GalleryService) AddImage(galleryID uint, input GalleryImageInput) (*db.GalleryImage, error) {
	if s.db == nil {
		return nil, nil
	}

	var gallery db.Gallery
	if err := s.db.Select("id").First(&gallery, galleryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	}
	image := db.GalleryImage{
		GalleryID: galleryID,
		URL:       input.URL,
		Alt:       input.Alt,
		Order:     order,
	}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// RemoveImage deletes a single gallery photo.
func (s *GalleryService) RemoveImage(imageID uint) error {
	if s.db == nil {
		return nil
	}

	res := s.db.Delete(&db.GalleryImage{}, imageID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGalleryImageNotFound
	}
	return nil
}

// UpdateOrder reassigns gallery display positions in one transaction.
func (s *GalleryService) UpdateOrder(updates []OrderUpdate) error {
	if s.db == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return applyOrder[db.Gallery](tx, updates)
	})
}

// UpdateImageOrder reassigns photo positions in one transaction.
func (s *GalleryService) UpdateImageOrder(updates []OrderUpdate) error {
	if s.db == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return applyOrder[db.GalleryImage](tx, updates)
	})
}

func orderImages(tx *gorm.DB) *gorm.DB {
	return tx.Order("sort_order asc")
}
