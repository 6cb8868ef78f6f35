package repository

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User, perm *model.Permission) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindRoleByName(ctx context.Context, name string) (*model.Role, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	FindPermission(ctx context.Context, userID string) (*model.Permission, error)
	// UpdatePermission applies the whole flag bundle as one UPDATE.
	UpdatePermission(ctx context.Context, userID string, updates map[string]interface{}) error
	// Approve flips status and the permission bundle in a single transaction.
	Approve(ctx context.Context, userID string, roleID *uint, updates map[string]interface{}) error
	// Delete removes the permission row first, then the user.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User, perm *model.Permission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if perm != nil {
			perm.UserID = user.ID
			if err := tx.Create(perm).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Permission").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Permission").
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}

	return &role, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Permission").
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindPermission(ctx context.Context, userID string) (*model.Permission, error) {
	var perm model.Permission
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&perm).Error; err != nil {
		return nil, err
	}

	return &perm, nil
}

func (r *userRepository) UpdatePermission(ctx context.Context, userID string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Permission{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) Approve(ctx context.Context, userID string, roleID *uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{"status": model.StatusActive}
		if roleID != nil {
			userUpdates["role_id"] = *roleID
		}

		res := tx.Model(&model.User{}).Where("id = ?", userID).Updates(userUpdates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&model.Permission{}).
			Where("user_id = ?", userID).
			Updates(updates).Error
	})
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	// No cascade is relied on: the permission row goes first.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Permission{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.User{}, "id = ?", id).Error
	})
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
