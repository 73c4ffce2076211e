package service

import (
	"errors"
	"strings"

	"github.com/greenpark/cms/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrPostForbidden = errors.New("post does not belong to the caller")
)

// PostService wraps post related database operations. A nil db degrades
// every query to an empty result so the API stays up without persistence.
type PostService struct {
	db *gorm.DB
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// PostFilter describes filters for listing posts.
type PostFilter struct {
	Search     string
	CategoryID *uint
	Published  *bool
	Page       int
	Limit      int
}

// PostListResult aggregates paginated list data.
type PostListResult struct {
	Posts      []db.Post  `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// PostInput represents fields accepted when creating a post.
type PostInput struct {
	Title       string
	Description string
	Content     string
	Published   bool
	Featured    bool
	CategoryID  *uint
	TagIDs      []uint
	AuthorID    uint
}

// PostUpdateInput carries a partial update; nil fields are left unchanged.
type PostUpdateInput struct {
	Title       *string
	Description *string
	Content     *string
	Published   *bool
	Featured    *bool
	CategoryID  *uint
	TagIDs      []uint
}

// List provides paginated posts matching the filter, newest first.
func (s *PostService) List(filter PostFilter) (*PostListResult, error) {
	page, limit := filter.Page, filter.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	if s.db == nil {
		return &PostListResult{Posts: []db.Post{}, Pagination: paginate(page, limit, 0)}, nil
	}

	query := s.db.Model(&db.Post{})
	query = s.applyFilters(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []db.Post
	dataQuery := s.db.Model(&db.Post{}).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Preload("Images")
	dataQuery = s.applyFilters(dataQuery, filter)

	offset := (page - 1) * limit
	if err := dataQuery.Order("created_at desc").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		return nil, err
	}

	return &PostListResult{Posts: posts, Pagination: paginate(page, limit, total)}, nil
}

func (s *PostService) applyFilters(query *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.Published != nil {
		query = query.Where("published = ?", *filter.Published)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"lower(title) LIKE ? OR lower(description) LIKE ? OR lower(content) LIKE ?",
			like, like, like,
		)
	}
	return query
}

// GetBySlug fetches a post with its standard relations expanded.
func (s *PostService) GetBySlug(slug string) (*db.Post, error) {
	if s.db == nil {
		return nil, ErrPostNotFound
	}

	var post db.Post
	err := s.db.
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Preload("Images").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// Featured returns up to limit published featured posts, newest first.
func (s *PostService) Featured(limit int) ([]db.Post, error) {
	if limit <= 0 {
		limit = 5
	}
	if s.db == nil {
		return []db.Post{}, nil
	}

	var posts []db.Post
	err := s.db.
		Preload("Author").
		Preload("Category").
		Preload("Images").
		Where("published = ? AND featured = ?", true, true).
		Order("created_at desc").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Create persists a post with a collision-free slug derived from the title
// and associates tags.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	if s.db == nil {
		return nil, nil
	}

	slug, err := s.uniqueSlug(input.Title, 0)
	if err != nil {
		return nil, err
	}

	post := db.Post{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Description: input.Description,
		Content:     input.Content,
		Published:   input.Published,
		Featured:    input.Featured,
		CategoryID:  input.CategoryID,
		AuthorID:    input.AuthorID,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return replaceTags(tx, &post, input.TagIDs)
	}); err != nil {
		return nil, err
	}

	return s.getByID(post.ID)
}

// Update applies a partial update after checking the caller owns the post.
// The slug is re-derived when the title changes.
func (s *PostService) Update(id, userID uint, input PostUpdateInput) (*db.Post, error) {
	if s.db == nil {
		return nil, nil
	}

	var existing db.Post
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if existing.AuthorID != userID {
		return nil, ErrPostForbidden
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		slug, err := s.uniqueSlug(*input.Title, id)
		if err != nil {
			return nil, err
		}
		updates["title"] = strings.TrimSpace(*input.Title)
		updates["slug"] = slug
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		}
		return replaceTags(tx, &existing, input.TagIDs)
	}); err != nil {
		return nil, err
	}

	return s.getByID(id)
}

// Delete removes a post, its images and its tag links after the ownership
// check.
func (s *PostService) Delete(id, userID uint) error {
	if s.db == nil {
		return nil
	}

	var existing db.Post
	if err := s.db.Select("id", "author_id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if existing.AuthorID != userID {
		return ErrPostForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&db.PostImage{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&db.Post{}, id).Error
	})
}

func (s *PostService) getByID(id uint) (*db.Post, error) {
	var post db.Post
	err := s.db.
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Preload("Images").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// uniqueSlug derives a slug from title and appends a millisecond timestamp
// when another post (excluding excludeID) already uses it.
func (s *PostService) uniqueSlug(title string, excludeID uint) (string, error) {
	slug := GenerateSlug(title)

	query := s.db.Model(&db.Post{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return timestampSlug(slug), nil
	}
	return slug, nil
}

// replaceTags swaps the post's tag set for the given ids. A nil slice means
// "leave tags alone"; an empty one clears them.
func replaceTags(tx *gorm.DB, post *db.Post, tagIDs []uint) error {
	if tagIDs == nil {
		return nil
	}

	var tags []db.Tag
	if len(tagIDs) > 0 {
		if err := tx.Find(&tags, tagIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(post).Association("Tags").Replace(tags)
}
