package repository

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type SkillRepository interface {
	Upsert(ctx context.Context, skill *entity.Skill) error
	GetByNames(ctx context.Context, names []string) ([]entity.Skill, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Skill, error)
}

type skillRepository struct{}

func NewSkillRepository() *skillRepository {
	return &skillRepository{}
}

func (r *skillRepository) Upsert(ctx context.Context, skill *entity.Skill) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(skill).Error
}

func (r *skillRepository) GetByNames(ctx context.Context, names []string) ([]entity.Skill, error) {
	var result []entity.Skill
	err := xcontext.DB(ctx).
		Where("name IN (?)", names).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *skillRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Skill, error) {
	var result []entity.Skill
	err := xcontext.DB(ctx).
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
