package repository

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/model"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id string) (*model.Message, error)
	FindAll(ctx context.Context) ([]*model.Message, error)
	FindPublished(ctx context.Context, limit int) ([]*model.Message, error)
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByID(ctx context.Context, id string) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}

	return &message, nil
}

func (r *messageRepository) FindAll(ctx context.Context) ([]*model.Message, error) {
	var messages []*model.Message
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *messageRepository) FindPublished(ctx context.Context, limit int) ([]*model.Message, error) {
	q := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var messages []*model.Message
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *messageRepository) SetPublished(ctx context.Context, id string, published bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("id = ?", id).
		Update("is_published", published)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Message{}, "id = ?", id).Error
}
