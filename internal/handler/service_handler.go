package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/service"
)

type createServicePayload struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Image       string `json:"image"`
	Category    string `json:"category" binding:"max=100"`
	Order       int    `json:"order"`
	Published   *bool  `json:"published"`
}

type updateServicePayload struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Image       *string `json:"image"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Order       *int    `json:"order"`
	Published   *bool   `json:"published"`
}

// ListServices returns services; published by default.
func (a *API) ListServices(c *gin.Context) {
	published := true
	if v := parseBoolQuery(c, "published"); v != nil {
		published = *v
	}

	services, err := a.services.List(published)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListServicesAdmin returns every service, drafts included.
func (a *API) ListServicesAdmin(c *gin.Context) {
	services, err := a.services.ListAll()
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService returns one service with its images.
func (a *API) GetService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid service id")
		return
	}

	svc, err := a.services.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "service not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// CreateService creates a service listing.
func (a *API) CreateService(c *gin.Context) {
	var payload createServicePayload
	if !bindJSON(c, &payload) {
		return
	}

	input := service.ServiceInput{
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
		Category:    payload.Category,
		Order:       payload.Order,
		Published:   true,
	}
	if payload.Published != nil {
		input.Published = *payload.Published
	}

	svc, err := a.services.Create(input)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateService applies a partial update.
func (a *API) UpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid service id")
		return
	}

	var payload updateServicePayload
	if !bindJSON(c, &payload) {
		return
	}

	svc, err := a.services.Update(id, service.ServiceUpdateInput{
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
		Category:    payload.Category,
		Order:       payload.Order,
		Published:   payload.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "service not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeleteService removes a service and its images.
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid service id")
		return
	}

	if err := a.services.Delete(id); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "service not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateServiceOrder reorders services atomically.
func (a *API) UpdateServiceOrder(c *gin.Context) {
	var payload orderPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := a.services.UpdateOrder(payload.Items); err != nil {
		if errors.Is(err, service.ErrOrderTargetMissing) {
			respondError(c, http.StatusNotFound, CodeNotFound, "service not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
