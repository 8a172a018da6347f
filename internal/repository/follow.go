package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *entity.Follow) error
	Delete(ctx context.Context, followerID, followingID string) (int64, error)
	Exist(ctx context.Context, followerID, followingID string) (bool, error)
	GetFollowers(ctx context.Context, userID string, offset, limit int) ([]entity.Follow, error)
	GetFollowing(ctx context.Context, userID string, offset, limit int) ([]entity.Follow, error)
	GetFollowingIDs(ctx context.Context, userID string) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

func (r *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	return xcontext.DB(ctx).Create(follow).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) (int64, error) {
	tx := xcontext.DB(ctx).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Delete(&entity.Follow{})
	return tx.RowsAffected, tx.Error
}

func (r *followRepository) Exist(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *followRepository) GetFollowers(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.Follow, error) {
	var result []entity.Follow
	err := xcontext.DB(ctx).
		Preload("Follower").
		Where("following_id=?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) GetFollowing(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.Follow, error) {
	var result []entity.Follow
	err := xcontext.DB(ctx).
		Preload("Following").
		Where("follower_id=?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var result []string
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("follower_id=?", userID).
		Pluck("following_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("following_id=?", userID).
		Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("follower_id=?", userID).
		Count(&count).Error
	return count, err
}
