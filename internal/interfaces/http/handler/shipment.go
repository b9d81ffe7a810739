package handler

import (
	"github.com/estuaire/backend/internal/application/shipping"
	"github.com/gin-gonic/gin"
)

// ShipmentHandler handles shipment and delivery option HTTP requests
type ShipmentHandler struct {
	BaseHandler
	shipmentService       *shipping.ShipmentService
	deliveryOptionService *shipping.DeliveryOptionService
}

// NewShipmentHandler creates a new shipment handler
func NewShipmentHandler(shipmentService *shipping.ShipmentService, deliveryOptionService *shipping.DeliveryOptionService) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentService:       shipmentService,
		deliveryOptionService: deliveryOptionService,
	}
}

// Create registers a shipment for an order the vendor sells in
func (h *ShipmentHandler) Create(c *gin.Context) {
	vendorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req shipping.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.shipmentService.Create(c.Request.Context(), vendorID, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// UpdateStatus moves a shipment through its lifecycle
func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	vendorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shipmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID")
		return
	}

	var req shipping.UpdateShipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.shipmentService.UpdateStatus(c.Request.Context(), vendorID, shipmentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetForOrder returns the shipment of an order visible to the caller
func (h *ShipmentHandler) GetForOrder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	result, err := h.shipmentService.GetForOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Track resolves a shipment by tracking number
func (h *ShipmentHandler) Track(c *gin.Context) {
	trackingNumber := c.Param("tracking_number")
	if trackingNumber == "" {
		h.BadRequest(c, "Missing tracking number")
		return
	}

	result, err := h.shipmentService.Track(c.Request.Context(), trackingNumber)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateDeliveryOption adds a delivery option to the catalog
func (h *ShipmentHandler) CreateDeliveryOption(c *gin.Context) {
	var req shipping.CreateDeliveryOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.deliveryOptionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListDeliveryOptions returns the active delivery options, cheapest first
func (h *ShipmentHandler) ListDeliveryOptions(c *gin.Context) {
	result, err := h.deliveryOptionService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteDeliveryOption retires a delivery option
func (h *ShipmentHandler) DeleteDeliveryOption(c *gin.Context) {
	optionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid delivery option ID")
		return
	}

	if err := h.deliveryOptionService.Delete(c.Request.Context(), optionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
