package service

import (
	"context"
	"fmt"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"github.com/microcosm-cc/bluemonday"
)

type MessageService interface {
	// Submit stores a visitor message. Content is sanitized; whether it is
	// immediately visible follows the auto_publish setting.
	Submit(ctx context.Context, input dto.MessageInput) (*model.Message, error)
	ListPublished(ctx context.Context) ([]*model.Message, error)
	ListAll(ctx context.Context) ([]*model.Message, error)
	SetPublished(ctx context.Context, id string, published bool) (*model.Message, error)
	Delete(ctx context.Context, id string) error
}

type messageService struct {
	repo      repository.MessageRepository
	settings  SettingsService
	notifier  NotificationService
	sanitizer *bluemonday.Policy
}

func NewMessageService(repo repository.MessageRepository, settings SettingsService, notifier NotificationService) MessageService {
	return &messageService{
		repo:      repo,
		settings:  settings,
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *messageService) Submit(ctx context.Context, input dto.MessageInput) (*model.Message, error) {
	autoPublish := false
	if s.settings != nil {
		if msgSettings, err := s.settings.GetMessageSettings(ctx); err == nil {
			autoPublish = msgSettings.AutoPublish
		}
	}

	message := &model.Message{
		Name:        s.sanitizer.Sanitize(input.Name),
		Email:       input.Email,
		Content:     s.sanitizer.Sanitize(input.Content),
		Rating:      input.Rating,
		IsPublished: autoPublish,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyAdmins(ctx, model.NotifNewMessage, message.ID, "message",
			fmt.Sprintf("Pesan baru dari %s", message.Name))
	}

	return message, nil
}

func (s *messageService) ListPublished(ctx context.Context) ([]*model.Message, error) {
	limit := 10
	if s.settings != nil {
		if msgSettings, err := s.settings.GetMessageSettings(ctx); err == nil {
			limit = msgSettings.MaxPerPage
		}
	}

	return s.repo.FindPublished(ctx, limit)
}

func (s *messageService) ListAll(ctx context.Context) ([]*model.Message, error) {
	return s.repo.FindAll(ctx)
}

func (s *messageService) SetPublished(ctx context.Context, id string, published bool) (*model.Message, error) {
	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
