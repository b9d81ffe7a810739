package handler

import (
	"strconv"

	"github.com/estuaire/backend/internal/application/review"
	"github.com/gin-gonic/gin"
)

// ReviewHandler handles review and vendor rating HTTP requests
type ReviewHandler struct {
	BaseHandler
	reviewService *review.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *review.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create adds a review and recomputes the vendor's rating
func (h *ReviewHandler) Create(c *gin.Context) {
	authorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.reviewService.Create(c.Request.Context(), authorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Update modifies the caller's own review
func (h *ReviewHandler) Update(c *gin.Context) {
	authorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	var req review.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.reviewService.Update(c.Request.Context(), authorID, reviewID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes the caller's own review
func (h *ReviewHandler) Delete(c *gin.Context) {
	authorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), authorID, reviewID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListForProduct returns a product's reviews, newest first
func (h *ReviewHandler) ListForProduct(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	page, pageSize := pageParams(c)
	result, err := h.reviewService.ListForProduct(c.Request.Context(), productID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// MyReviews returns the caller's own reviews
func (h *ReviewHandler) MyReviews(c *gin.Context) {
	authorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	page, pageSize := pageParams(c)
	result, err := h.reviewService.MyReviews(c.Request.Context(), authorID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// GetVendorRating returns a vendor's rating aggregate
func (h *ReviewHandler) GetVendorRating(c *gin.Context) {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	result, err := h.reviewService.GetVendorRating(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetProductStats returns a product's review count and average rating
func (h *ReviewHandler) GetProductStats(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.reviewService.GetProductStats(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// PendingReviews returns delivered purchases the caller has not reviewed yet
func (h *ReviewHandler) PendingReviews(c *gin.Context) {
	authorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.reviewService.PendingReviews(c.Request.Context(), authorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// pageParams reads page/page_size query parameters with defaults
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
