package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/service"
)

type serviceAreaPayload struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Image     string `json:"image" binding:"required"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

func (p serviceAreaPayload) toInput() service.ServiceAreaInput {
	input := service.ServiceAreaInput{
		Name:      p.Name,
		Image:     p.Image,
		Order:     p.Order,
		Published: true,
	}
	if p.Published != nil {
		input.Published = *p.Published
	}
	return input
}

// ListServiceAreas returns published areas in display order.
func (a *API) ListServiceAreas(c *gin.Context) {
	areas, err := a.serviceAreas.ListPublished()
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"serviceAreas": areas})
}

// ListServiceAreasAdmin returns every area, drafts included.
func (a *API) ListServiceAreasAdmin(c *gin.Context) {
	areas, err := a.serviceAreas.ListAll()
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"serviceAreas": areas})
}

// GetServiceArea returns one area by id.
func (a *API) GetServiceArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid service area id")
		return
	}

	area, err := a.serviceAreas.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrServiceAreaNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "service area not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"serviceArea": area})
}

// CreateServiceArea creates an area.
func (a *API) CreateServiceArea(c *gin.Context) {
	var payload serviceAreaPayload
	if !bindJSON(c, &payload) {
		return
	}

	area, err := a.serviceAreas.Create(payload.toInput())
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"serviceArea": area})
}

// UpdateServiceArea replaces an area's fields.
func (a *API) UpdateServiceArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid service area id")
		return
	}

	var payload serviceAreaPayload
	if !bindJSON(c, &payload) {
		return
	}

	area, err := a.serviceAreas.Update(id, payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrServiceAreaNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "service area not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"serviceArea": area})
}

// DeleteServiceArea removes an area.
func (a *API) DeleteServiceArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid service area id")
		return
	}

	if err := a.serviceAreas.Delete(id); err != nil {
		if errors.Is(err, service.ErrServiceAreaNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "service area not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateServiceAreaOrder reorders areas atomically.
func (a *API) UpdateServiceAreaOrder(c *gin.Context) {
	var payload orderPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := a.serviceAreas.UpdateOrder(payload.Items); err != nil {
		if errors.Is(err, service.ErrOrderTargetMissing) {
			respondError(c, http.StatusNotFound, CodeNotFound, "service area not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
