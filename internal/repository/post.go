package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type PostFilter struct {
	AuthorIDs []string
	Offset    int
	Limit     int
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetList(ctx context.Context, filter PostFilter) ([]entity.Post, error)
	UpdateByID(ctx context.Context, id string, data *entity.Post) error
	DeleteByID(ctx context.Context, id string) error
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return xcontext.DB(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var result entity.Post
	err := xcontext.DB(ctx).
		Preload("Author").
		Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *postRepository) GetList(ctx context.Context, filter PostFilter) ([]entity.Post, error) {
	tx := xcontext.DB(ctx).Preload("Author")
	if len(filter.AuthorIDs) > 0 {
		tx = tx.Where("author_id IN (?)", filter.AuthorIDs)
	}

	var result []entity.Post
	err := tx.
		Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) UpdateByID(ctx context.Context, id string, data *entity.Post) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *postRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Post{}, "id=?", id).Error
}
