package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *entity.ProjectCollaborator) error
	Get(ctx context.Context, projectID, userID string) (*entity.ProjectCollaborator, error)
	GetListByProjectID(ctx context.Context, projectID string) ([]entity.ProjectCollaborator, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.ProjectCollaborator, error)
	Delete(ctx context.Context, projectID, userID string) (int64, error)
	Count(ctx context.Context, projectID string) (int64, error)
}

type collaboratorRepository struct{}

func NewCollaboratorRepository() *collaboratorRepository {
	return &collaboratorRepository{}
}

func (r *collaboratorRepository) Create(ctx context.Context, collaborator *entity.ProjectCollaborator) error {
	return xcontext.DB(ctx).Create(collaborator).Error
}

func (r *collaboratorRepository) Get(
	ctx context.Context, projectID, userID string,
) (*entity.ProjectCollaborator, error) {
	var result entity.ProjectCollaborator
	err := xcontext.DB(ctx).
		Take(&result, "project_id=? AND user_id=?", projectID, userID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *collaboratorRepository) GetListByProjectID(
	ctx context.Context, projectID string,
) ([]entity.ProjectCollaborator, error) {
	var result []entity.ProjectCollaborator
	err := xcontext.DB(ctx).
		Preload("User").
		Where("project_id=?", projectID).
		Order("joined_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collaboratorRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.ProjectCollaborator, error) {
	var result []entity.ProjectCollaborator
	err := xcontext.DB(ctx).
		Preload("Project").
		Preload("Project.Creator").
		Where("user_id=?", userID).
		Order("joined_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collaboratorRepository) Delete(ctx context.Context, projectID, userID string) (int64, error) {
	tx := xcontext.DB(ctx).
		Where("project_id=? AND user_id=?", projectID, userID).
		Delete(&entity.ProjectCollaborator{})
	return tx.RowsAffected, tx.Error
}

func (r *collaboratorRepository) Count(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.ProjectCollaborator{}).
		Where("project_id=?", projectID).
		Count(&count).Error
	return count, err
}
