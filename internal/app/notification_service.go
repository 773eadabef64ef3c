package app

import (
	"context"

	"careerassign/internal/common"
	"careerassign/internal/domain/notification"
)

type NotificationService struct {
	notifications notification.Repository
}

func NewNotificationService(notifications notification.Repository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) List(ctx context.Context, userID common.UUID) ([]notification.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id common.UUID) error {
	return s.notifications.MarkRead(ctx, userID, id)
}

func (s *NotificationService) Delete(ctx context.Context, userID, id common.UUID) error {
	return s.notifications.Delete(ctx, userID, id)
}
