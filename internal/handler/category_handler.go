package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/service"
)

type createCategoryPayload struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	Color       string `json:"color" binding:"max=20"`
}

type updateCategoryPayload struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Color       *string `json:"color" binding:"omitempty,max=20"`
}

// ListCategories returns all categories with post counts, name order.
func (a *API) ListCategories(c *gin.Context) {
	items, err := a.categories.List()
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": items})
}

// GetCategoryBySlug returns one category with its published posts.
func (a *API) GetCategoryBySlug(c *gin.Context) {
	item, err := a.categories.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "category not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": item})
}

// CreateCategory creates a category; name and slug must be unused.
func (a *API) CreateCategory(c *gin.Context) {
	var payload createCategoryPayload
	if !bindJSON(c, &payload) {
		return
	}

	category, err := a.categories.Create(service.CategoryInput{
		Name:        payload.Name,
		Description: payload.Description,
		Color:       payload.Color,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryTaken) {
			respondError(c, http.StatusConflict, CodeConflict, "category name already in use")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory applies a partial update.
func (a *API) UpdateCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid category id")
		return
	}

	var payload updateCategoryPayload
	if !bindJSON(c, &payload) {
		return
	}

	category, err := a.categories.Update(id, service.CategoryUpdateInput{
		Name:        payload.Name,
		Description: payload.Description,
		Color:       payload.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "category not found")
		case errors.Is(err, service.ErrCategoryTaken):
			respondError(c, http.StatusConflict, CodeConflict, "category name already in use")
		default:
			respondInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes a category; refused while posts reference it.
func (a *API) DeleteCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid category id")
		return
	}

	if err := a.categories.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "category not found")
		case errors.Is(err, service.ErrCategoryHasPosts):
			respondError(c, http.StatusConflict, CodeConflict, "category still has posts")
		default:
			respondInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
