package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/repository"
)

// Notifier is the narrow interface other services use to emit notifications.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, message string, requestID *uuid.UUID)
}

type NotificationService interface {
	Notifier
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	repo        repository.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo repository.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

// NotificationChannel is the pub/sub channel carrying a user's notifications.
func NotificationChannel(userID uuid.UUID) string {
	return fmt.Sprintf("user_notifications:%s", userID.String())
}

func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, kind, message string, requestID *uuid.UUID) {
	n := &model.Notification{
		UserID:    userID,
		Type:      kind,
		Message:   message,
		RequestID: requestID,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		// Notifications are best-effort; the triggering mutation already
		// succeeded.
		log.Printf("failed to persist notification for %s: %v", userID, err)
		return
	}

	if s.redisClient != nil {
		payload, err := json.Marshal(n)
		if err == nil {
			s.redisClient.Publish(ctx, NotificationChannel(userID), payload)
		}
	}
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error) {
	return s.repo.FindByUser(ctx, userID, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
