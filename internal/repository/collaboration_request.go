package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type CollaborationRequestRepository interface {
	Create(ctx context.Context, request *entity.CollaborationRequest) error
	GetByID(ctx context.Context, id string) (*entity.CollaborationRequest, error)
	GetListByProjectID(ctx context.Context, projectID string, offset, limit int) ([]entity.CollaborationRequest, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.CollaborationRequest, error)
	UpdateStatusByID(ctx context.Context, id string, status entity.RequestStatus) error
}

type collaborationRequestRepository struct{}

func NewCollaborationRequestRepository() *collaborationRequestRepository {
	return &collaborationRequestRepository{}
}

func (r *collaborationRequestRepository) Create(ctx context.Context, request *entity.CollaborationRequest) error {
	return xcontext.DB(ctx).Create(request).Error
}

func (r *collaborationRequestRepository) GetByID(
	ctx context.Context, id string,
) (*entity.CollaborationRequest, error) {
	var result entity.CollaborationRequest
	err := xcontext.DB(ctx).
		Preload("User").
		Preload("Project").
		Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *collaborationRequestRepository) GetListByProjectID(
	ctx context.Context, projectID string, offset, limit int,
) ([]entity.CollaborationRequest, error) {
	var result []entity.CollaborationRequest
	err := xcontext.DB(ctx).
		Preload("User").
		Where("project_id=?", projectID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collaborationRequestRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.CollaborationRequest, error) {
	var result []entity.CollaborationRequest
	err := xcontext.DB(ctx).
		Preload("Project").
		Where("user_id=?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collaborationRequestRepository) UpdateStatusByID(
	ctx context.Context, id string, status entity.RequestStatus,
) error {
	return xcontext.DB(ctx).
		Model(&entity.CollaborationRequest{}).
		Where("id=?", id).
		Update("status", status).Error
}
