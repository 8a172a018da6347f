package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

type ProjectFilter struct {
	CreatorID string
	Status    entity.ProjectStatus
	Offset    int
	Limit     int
}

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetList(ctx context.Context, filter ProjectFilter) ([]entity.Project, error)
	UpdateByID(ctx context.Context, id string, data *entity.Project) error
	ReplaceTechStack(ctx context.Context, project *entity.Project, skills []entity.Skill) error
	DeleteByID(ctx context.Context, id string) error
}

type projectRepository struct{}

func NewProjectRepository() *projectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return xcontext.DB(ctx).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	var result entity.Project
	err := xcontext.DB(ctx).
		Preload("Creator").
		Preload("TechStack").
		Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *projectRepository) GetList(ctx context.Context, filter ProjectFilter) ([]entity.Project, error) {
	tx := xcontext.DB(ctx).
		Preload("Creator").
		Preload("TechStack")
	if filter.CreatorID != "" {
		tx = tx.Where("creator_id=?", filter.CreatorID)
	}
	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	var result []entity.Project
	err := tx.
		Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *projectRepository) UpdateByID(ctx context.Context, id string, data *entity.Project) error {
	return xcontext.DB(ctx).
		Model(&entity.Project{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *projectRepository) ReplaceTechStack(
	ctx context.Context, project *entity.Project, skills []entity.Skill,
) error {
	return xcontext.DB(ctx).Model(project).Association("TechStack").Replace(skills)
}

func (r *projectRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Project{}, "id=?", id).Error
}
