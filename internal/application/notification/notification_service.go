package notification

import (
	"context"

	"github.com/estuaire/backend/internal/domain/notification"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationService manages a user's in-app notifications
type NotificationService struct {
	notificationRepo notification.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo notification.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns the caller's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, page, pageSize int) (*shared.Paginated[NotificationResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	notifications, total, err := s.notificationRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(ToNotificationResponses(notifications), total, filter.Page, filter.PageSize)
	return &result, nil
}

// UnreadCount returns the caller's unread notification count
func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (*UnreadCountResponse, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResponse{Unread: count}, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationResponse, error) {
	n, err := s.owned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}
	n.MarkRead()
	if err := s.notificationRepo.Save(ctx, n); err != nil {
		return nil, err
	}
	resp := ToNotificationResponse(n)
	return &resp, nil
}

// MarkAllRead marks every unread notification of the caller as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes one of the caller's notifications
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	n, err := s.owned(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	return s.notificationRepo.Delete(ctx, n.ID)
}

// owned loads a notification and hides other users' notifications
// behind a not found error.
func (s *NotificationService) owned(ctx context.Context, userID, notificationID uuid.UUID) (*notification.Notification, error) {
	n, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, shared.ErrNotFound
	}
	return n, nil
}
