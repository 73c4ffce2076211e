package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/service"
)

type createReferencePayload struct {
	CompanyName string `json:"companyName" binding:"required,min=1,max=200"`
	Logo        string `json:"logo"`
	Description string `json:"description" binding:"max=1000"`
	Website     string `json:"website" binding:"omitempty,url"`
	Order       int    `json:"order"`
	Published   *bool  `json:"published"`
}

type updateReferencePayload struct {
	CompanyName *string `json:"companyName" binding:"omitempty,min=1,max=200"`
	Logo        *string `json:"logo"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Order       *int    `json:"order"`
	Published   *bool   `json:"published"`
}

// ListReferences returns references; published by default.
func (a *API) ListReferences(c *gin.Context) {
	published := true
	if v := parseBoolQuery(c, "published"); v != nil {
		published = *v
	}

	refs, err := a.references.List(published)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"references": refs})
}

// ListReferencesAdmin returns every reference, drafts included.
func (a *API) ListReferencesAdmin(c *gin.Context) {
	refs, err := a.references.ListAll()
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"references": refs})
}

// GetReference returns one reference by id.
func (a *API) GetReference(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid reference id")
		return
	}

	ref, err := a.references.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrReferenceNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "reference not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reference": ref})
}

// CreateReference creates a reference entry.
func (a *API) CreateReference(c *gin.Context) {
	var payload createReferencePayload
	if !bindJSON(c, &payload) {
		return
	}

	input := service.ReferenceInput{
		CompanyName: payload.CompanyName,
		Logo:        payload.Logo,
		Description: payload.Description,
		Website:     payload.Website,
		Order:       payload.Order,
		Published:   true,
	}
	if payload.Published != nil {
		input.Published = *payload.Published
	}

	ref, err := a.references.Create(input)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reference": ref})
}

// UpdateReference applies a partial update.
func (a *API) UpdateReference(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid reference id")
		return
	}

	var payload updateReferencePayload
	if !bindJSON(c, &payload) {
		return
	}

	ref, err := a.references.Update(id, service.ReferenceUpdateInput{
		CompanyName: payload.CompanyName,
		Logo:        payload.Logo,
		Description: payload.Description,
		Website:     payload.Website,
		Order:       payload.Order,
		Published:   payload.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrReferenceNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "reference not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reference": ref})
}

// DeleteReference removes a reference.
func (a *API) DeleteReference(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid reference id")
		return
	}

	if err := a.references.Delete(id); err != nil {
		if errors.Is(err, service.ErrReferenceNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "reference not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateReferenceOrder reorders references atomically.
func (a *API) UpdateReferenceOrder(c *gin.Context) {
	var payload orderPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := a.references.UpdateOrder(payload.Items); err != nil {
		if errors.Is(err, service.ErrOrderTargetMissing) {
			respondError(c, http.StatusNotFound, CodeNotFound, "reference not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
