package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, renterName string, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.ListByRenter(ctx, renterName, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, renterName string, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, renterName)
}
