package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/service"
)

type galleryImagePayload struct {
	URL   string `json:"url" binding:"required"`
	Alt   string `json:"alt"`
	Order *int   `json:"order"`
}

type createGalleryPayload struct {
	Title       string                `json:"title" binding:"required,min=1,max=200"`
	Description string                `json:"description" binding:"max=1000"`
	Order       int                   `json:"order"`
	Published   *bool                 `json:"published"`
	Images      []galleryImagePayload `json:"images" binding:"omitempty,dive"`
}

type updateGalleryPayload struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Order       *int    `json:"order"`
	Published   *bool   `json:"published"`
}

type orderPayload struct {
	Items []service.OrderUpdate `json:"items" binding:"required,min=1,dive"`
}

// ListGalleries returns galleries; published by default, ?published=false
// for drafts.
func (a *API) ListGalleries(c *gin.Context) {
	published := true
	if v := parseBoolQuery(c, "published"); v != nil {
		published = *v
	}

	galleries, err := a.galleries.List(published)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"galleries": galleries})
}

// ListGalleriesAdmin returns every gallery, drafts included.
func (a *API) ListGalleriesAdmin(c *gin.Context) {
	galleries, err := a.galleries.ListAll()
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"galleries": galleries})
}

// GetGallery returns one gallery with its ordered images.
func (a *API) GetGallery(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid gallery id")
		return
	}

	gallery, err := a.galleries.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "gallery not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gallery": gallery})
}

// CreateGallery creates a gallery together with any nested images.
func (a *API) CreateGallery(c *gin.Context) {
	var payload createGalleryPayload
	if !bindJSON(c, &payload) {
		return
	}

	input := service.GalleryInput{
		Title:       payload.Title,
		Description: payload.Description,
		Order:       payload.Order,
		Published:   true,
	}
	if payload.Published != nil {
		input.Published = *payload.Published
	}
	for _, img := range payload.Images {
		input.Images = append(input.Images, service.GalleryImageInput{
			URL:   img.URL,
			Alt:   img.Alt,
			Order: img.Order,
		})
	}

	gallery, err := a.galleries.Create(input)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"gallery": gallery})
}

// UpdateGallery applies a partial update to a gallery.
func (a *API) UpdateGallery(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid gallery id")
		return
	}

	var payload updateGalleryPayload
	if !bindJSON(c, &payload) {
		return
	}

	gallery, err := a.galleries.Update(id, service.GalleryUpdateInput{
		Title:       payload.Title,
		Description: payload.Description,
		Order:       payload.Order,
		Published:   payload.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "gallery not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gallery": gallery})
}

// DeleteGallery removes a gallery and its images.
func (a *API) DeleteGallery(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid gallery id")
		return
	}

	if err := a.galleries.Delete(id); err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "gallery not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddGalleryImage attaches one photo to a gallery.
func (a *API) AddGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid gallery id")
		return
	}

	var payload galleryImagePayload
	if !bindJSON(c, &payload) {
		return
	}

	image, err := a.galleries.AddImage(id, service.GalleryImageInput{
		URL:   payload.URL,
		Alt:   payload.Alt,
		Order: payload.Order,
	})
	if err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "gallery not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image": image})
}

// RemoveGalleryImage deletes one photo.
func (a *API) RemoveGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid image id")
		return
	}

	if err := a.galleries.RemoveImage(id); err != nil {
		if errors.Is(err, service.ErrGalleryImageNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "gallery image not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateGalleryOrder reorders galleries atomically.
func (a *API) UpdateGalleryOrder(c *gin.Context) {
	var payload orderPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := a.galleries.UpdateOrder(payload.Items); err != nil {
		if errors.Is(err, service.ErrOrderTargetMissing) {
			respondError(c, http.StatusNotFound, CodeNotFound, "gallery not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateGalleryImageOrder reorders photos atomically.
func (a *API) UpdateGalleryImageOrder(c *gin.Context) {
	var payload orderPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := a.galleries.UpdateImageOrder(payload.Items); err != nil {
		if errors.Is(err, service.ErrOrderTargetMissing) {
			respondError(c, http.StatusNotFound, CodeNotFound, "gallery image not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
