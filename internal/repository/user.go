package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsernames(ctx context.Context, usernames []string) ([]entity.User, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.User, error)
	UpdateByID(ctx context.Context, id string, data *entity.User) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return xcontext.DB(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "email=?", email).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByUsernames(ctx context.Context, usernames []string) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Where("username IN (?)", usernames).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) GetList(ctx context.Context, offset, limit int) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, data *entity.User) error {
	return xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", id).
		Updates(data).Error
}
