package notification

import (
	"context"
	"strings"
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationType classifies in-app notifications
type NotificationType string

const (
	TypeOrderPlaced      NotificationType = "order_placed"
	TypeOrderStatus      NotificationType = "order_status"
	TypeShipmentStatus   NotificationType = "shipment_status"
	TypeReviewReceived   NotificationType = "review_received"
)

// Notification is an in-app message delivered to one user
type Notification struct {
	shared.BaseEntity
	UserID  uuid.UUID
	Type    NotificationType
	Title   string
	Message string
	OrderID *uuid.UUID
	IsRead  bool
	ReadAt  *time.Time
}

// NewNotification creates an unread notification for a user
func NewNotification(userID uuid.UUID, kind NotificationType, title, message string) (*Notification, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Type:       kind,
		Title:      title,
		Message:    message,
	}, nil
}

// AttachOrder links the notification to an order
func (n *Notification) AttachOrder(orderID uuid.UUID) {
	n.OrderID = &orderID
}

// MarkRead stamps the notification as read once
func (n *Notification) MarkRead() {
	if n.IsRead {
		return
	}
	now := time.Now()
	n.IsRead = true
	n.ReadAt = &now
	n.UpdatedAt = now
}

// NotificationRepository defines persistence operations for notifications
type NotificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Notification, int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	Save(ctx context.Context, n *Notification) error
	SaveAll(ctx context.Context, ns []*Notification) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
