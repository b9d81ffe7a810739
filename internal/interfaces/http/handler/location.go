package handler

import (
	"github.com/estuaire/backend/internal/application/location"
	"github.com/gin-gonic/gin"
)

// LocationHandler handles delivery location HTTP requests
type LocationHandler struct {
	BaseHandler
	locationService *location.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *location.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// Create adds a delivery location for the authenticated user
func (h *LocationHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req location.UpsertLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.locationService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Update modifies one of the authenticated user's locations
func (h *LocationHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	var req location.UpsertLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.locationService.Update(c.Request.Context(), userID, locationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns the authenticated user's locations, default first
func (h *LocationHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.locationService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes one of the authenticated user's locations
func (h *LocationHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	if err := h.locationService.Delete(c.Request.Context(), userID, locationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
