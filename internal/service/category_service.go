package service

import (
	"errors"
	"strings"

	"github.com/greenpark/cms/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryTaken    = errors.New("category name already in use")
	ErrCategoryHasPosts = errors.New("category still has posts")
)

// CategoryService wraps category related database operations.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// CategoryListItem is a category plus the number of posts referencing it.
type CategoryListItem struct {
	db.Category
	PostCount int64 `json:"postCount"`
}

// CategoryInput represents fields accepted when creating a category.
type CategoryInput struct {
	Name        string
	Description string
	Color       string
}

// CategoryUpdateInput carries a partial update; nil fields stay unchanged.
type CategoryUpdateInput struct {
	Name        *string
	Description *string
	Color       *string
}

// List returns all categories ordered by name with post counts.
func (s *CategoryService) List() ([]CategoryListItem, error) {
	if s.db == nil {
		return []CategoryListItem{}, nil
	}

	var categories []db.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}

	counts, err := s.postCounts()
	if err != nil {
		return nil, err
	}

	items := make([]CategoryListItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, CategoryListItem{Category: c, PostCount: counts[c.ID]})
	}
	return items, nil
}

// GetBySlug fetches a category with its published posts expanded.
func (s *CategoryService) GetBySlug(slug string) (*CategoryListItem, error) {
	if s.db == nil {
		return nil, ErrCategoryNotFound
	}

	var category db.Category
	err := s.db.
		Preload("Posts", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("published = ?", true).
				Preload("Author").
				Preload("Images").
				Order("created_at desc")
		}).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&db.Post{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		return nil, err
	}

	return &CategoryListItem{Category: category, PostCount: count}, nil
}

// Create persists a category; the name and derived slug must both be free.
func (s *CategoryService) Create(input CategoryInput) (*db.Category, error) {
	if s.db == nil {
		return nil, nil
	}

	name := strings.TrimSpace(input.Name)
	slug := GenerateSlug(name)

	var count int64
	if err := s.db.Model(&db.Category{}).
		Where("name = ? OR slug = ?", name, slug).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryTaken
	}

	category := db.Category{
		Name:        name,
		Slug:        slug,
		Description: input.Description,
		Color:       input.Color,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies a partial update, re-deriving the slug on rename.
func (s *CategoryService) Update(id uint, input CategoryUpdateInput) (*db.Category, error) {
	if s.db == nil {
		return nil, nil
	}

	var existing db.Category
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		slug := GenerateSlug(name)

		var count int64
		if err := s.db.Model(&db.Category{}).
			Where("(name = ? OR slug = ?) AND id <> ?", name, slug, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCategoryTaken
		}
		updates["name"] = name
		updates["slug"] = slug
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Color != nil {
		updates["color"] = *input.Color
	}

	if len(updates) > 0 {
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &existing, nil
}

// Delete removes a category unless posts still reference it.
func (s *CategoryService) Delete(id uint) error {
	if s.db == nil {
		return nil
	}

	var existing db.Category
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	var posts int64
	if err := s.db.Model(&db.Post{}).Where("category_id = ?", id).Count(&posts).Error; err != nil {
		return err
	}
	if posts > 0 {
		return ErrCategoryHasPosts
	}

	return s.db.Delete(&db.Category{}, id).Error
}

func (s *CategoryService) postCounts() (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		Count      int64
	}

	var rows []row
	err := s.db.Model(&db.Post{}).
		Select("category_id, count(*) as count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}
