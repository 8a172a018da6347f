package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	GetListByPostID(ctx context.Context, postID string, offset, limit int) ([]entity.Comment, error)
	UpdateByID(ctx context.Context, id string, data *entity.Comment) error
	DeleteByID(ctx context.Context, id string) error
	CountByPostID(ctx context.Context, postID string) (int64, error)
}

type commentRepository struct{}

func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return xcontext.DB(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var result entity.Comment
	err := xcontext.DB(ctx).
		Preload("Author").
		Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *commentRepository) GetListByPostID(
	ctx context.Context, postID string, offset, limit int,
) ([]entity.Comment, error) {
	var result []entity.Comment
	err := xcontext.DB(ctx).
		Preload("Author").
		Where("post_id=?", postID).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) UpdateByID(ctx context.Context, id string, data *entity.Comment) error {
	return xcontext.DB(ctx).
		Model(&entity.Comment{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *commentRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Comment{}, "id=?", id).Error
}

func (r *commentRepository) CountByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Comment{}).
		Where("post_id=?", postID).
		Count(&count).Error
	return count, err
}
