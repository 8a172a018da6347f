package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type PostLikeRepository interface {
	Create(ctx context.Context, like *entity.PostLike) error
	Delete(ctx context.Context, userID, postID string) (int64, error)
	Exist(ctx context.Context, userID, postID string) (bool, error)
	CountByPostID(ctx context.Context, postID string) (int64, error)
}

type postLikeRepository struct{}

func NewPostLikeRepository() *postLikeRepository {
	return &postLikeRepository{}
}

func (r *postLikeRepository) Create(ctx context.Context, like *entity.PostLike) error {
	return xcontext.DB(ctx).Create(like).Error
}

func (r *postLikeRepository) Delete(ctx context.Context, userID, postID string) (int64, error) {
	tx := xcontext.DB(ctx).
		Where("user_id=? AND post_id=?", userID, postID).
		Delete(&entity.PostLike{})
	return tx.RowsAffected, tx.Error
}

func (r *postLikeRepository) Exist(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.PostLike{}).
		Where("user_id=? AND post_id=?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *postLikeRepository) CountByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.PostLike{}).
		Where("post_id=?", postID).
		Count(&count).Error
	return count, err
}

type CommentLikeRepository interface {
	Create(ctx context.Context, like *entity.CommentLike) error
	Delete(ctx context.Context, userID, commentID string) (int64, error)
	CountByCommentID(ctx context.Context, commentID string) (int64, error)
}

type commentLikeRepository struct{}

func NewCommentLikeRepository() *commentLikeRepository {
	return &commentLikeRepository{}
}

func (r *commentLikeRepository) Create(ctx context.Context, like *entity.CommentLike) error {
	return xcontext.DB(ctx).Create(like).Error
}

func (r *commentLikeRepository) Delete(ctx context.Context, userID, commentID string) (int64, error) {
	tx := xcontext.DB(ctx).
		Where("user_id=? AND comment_id=?", userID, commentID).
		Delete(&entity.CommentLike{})
	return tx.RowsAffected, tx.Error
}

func (r *commentLikeRepository) CountByCommentID(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.CommentLike{}).
		Where("comment_id=?", commentID).
		Count(&count).Error
	return count, err
}
