package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type NotificationService interface {
	// NotifyAdmins fans a notification out to every active user holding
	// can_manage_users (or the super admin role). Failures are logged; the
	// triggering write never fails because of a notification.
	NotifyAdmins(ctx context.Context, notifType string, entityID uuid.UUID, entityType, message string)
	GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	repo        repository.NotificationRepository
	userRepo    repository.UserRepository
	redisClient *redis.Client
}

func NewNotificationService(repo repository.NotificationRepository, userRepo repository.UserRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

func (s *notificationService) NotifyAdmins(ctx context.Context, notifType string, entityID uuid.UUID, entityType, message string) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		log.Printf("notification: failed to load admins: %v", err)
		return
	}

	for _, u := range users {
		if u.Status != model.StatusActive {
			continue
		}
		isAdmin := u.Role.Name == model.RoleSuperAdmin ||
			(u.Permission != nil && u.Permission.CanManageUsers)
		if !isAdmin {
			continue
		}

		notification := &model.Notification{
			UserID:     u.ID,
			Type:       notifType,
			EntityID:   entityID,
			EntityType: entityType,
			Message:    message,
		}

		if err := s.repo.Create(ctx, notification); err != nil {
			log.Printf("notification: failed to create for %s: %v", u.ID, err)
			continue
		}

		s.publish(ctx, notification)
	}
}

// publish pushes the notification onto the per-user redis channel consumed
// by the websocket stream.
func (s *notificationService) publish(ctx context.Context, notification *model.Notification) {
	if s.redisClient == nil {
		return
	}

	channel := fmt.Sprintf("admin_notifications:%s", notification.UserID.String())

	payload, err := json.Marshal(notification)
	if err != nil {
		return
	}
	s.redisClient.Publish(ctx, channel, payload)
}

func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
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
