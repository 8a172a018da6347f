package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/enum"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectDomain interface {
	Create(context.Context, *model.CreateProjectRequest) (*model.CreateProjectResponse, error)
	Get(context.Context, *model.GetProjectRequest) (*model.GetProjectResponse, error)
	GetList(context.Context, *model.GetProjectsRequest) (*model.GetProjectsResponse, error)
	GetMyProjects(context.Context, *model.GetMyProjectsRequest) (*model.GetMyProjectsResponse, error)
	Update(context.Context, *model.UpdateProjectRequest) (*model.UpdateProjectResponse, error)
	Delete(context.Context, *model.DeleteProjectRequest) (*model.DeleteProjectResponse, error)
	GetCollaborators(context.Context, *model.GetCollaboratorsRequest) (*model.GetCollaboratorsResponse, error)
	GetSkills(context.Context, *model.GetSkillsRequest) (*model.GetSkillsResponse, error)
	Leave(context.Context, *model.LeaveProjectRequest) (*model.LeaveProjectResponse, error)
	RemoveCollaborator(context.Context, *model.RemoveCollaboratorRequest) (*model.RemoveCollaboratorResponse, error)
}

type projectDomain struct {
	projectRepo      repository.ProjectRepository
	skillRepo        repository.SkillRepository
	collaboratorRepo repository.CollaboratorRepository
	userRepo         repository.UserRepository
}

func NewProjectDomain(
	projectRepo repository.ProjectRepository,
	skillRepo repository.SkillRepository,
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
) *projectDomain {
	return &projectDomain{
		projectRepo:      projectRepo,
		skillRepo:        skillRepo,
		collaboratorRepo: collaboratorRepo,
		userRepo:         userRepo,
	}
}

func (d *projectDomain) Create(
	ctx context.Context, req *model.CreateProjectRequest,
) (*model.CreateProjectResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty title")
	}

	if err := checkRepoURL(req.RepoURL); err != nil {
		return nil, err
	}

	skills, err := d.resolveSkills(ctx, req.TechStack)
	if err != nil {
		return nil, err
	}

	creatorID := xcontext.RequestUserID(ctx)
	project := &entity.Project{
		Base:        entity.Base{ID: uuid.NewString()},
		CreatorID:   creatorID,
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		Status:      entity.ProjectActive,
		TechStack:   skills,
	}

	// The creator becomes the owner collaborator in the same transaction,
	// so no project can exist without exactly one owner.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.projectRepo.Create(ctx, project); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create project: %v", err)
		return nil, errorx.Unknown
	}

	err = d.collaboratorRepo.Create(ctx, &entity.ProjectCollaborator{
		UserID:    creatorID,
		ProjectID: project.ID,
		Role:      entity.RoleOwner,
		JoinedAt:  time.Now(),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create owner collaborator: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	creator, err := d.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get creator: %v", err)
		return nil, errorx.Unknown
	}

	project.Creator = *creator
	return &model.CreateProjectResponse{
		Project: model.ConvertProject(project, 1),
	}, nil
}

func (d *projectDomain) Get(
	ctx context.Context, req *model.GetProjectRequest,
) (*model.GetProjectResponse, error) {
	if req.ProjectID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty project id")
	}

	project, err := d.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	count, err := d.collaboratorRepo.Count(ctx, project.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count collaborators: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetProjectResponse(model.ConvertProject(project, count))
	return &resp, nil
}

func (d *projectDomain) GetList(
	ctx context.Context, req *model.GetProjectsRequest,
) (*model.GetProjectsResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := repository.ProjectFilter{
		CreatorID: req.CreatorID,
		Offset:    offset,
		Limit:     limit,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.ProjectStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid project status %s", req.Status)
		}

		filter.Status = status
	}

	projects, err := d.projectRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get projects: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertProjects(ctx, projects)
	if err != nil {
		return nil, err
	}

	return &model.GetProjectsResponse{Projects: converted}, nil
}

func (d *projectDomain) GetMyProjects(
	ctx context.Context, req *model.GetMyProjectsRequest,
) (*model.GetMyProjectsResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	collaborators, err := d.collaboratorRepo.GetListByUserID(
		ctx, xcontext.RequestUserID(ctx), offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collaborators: %v", err)
		return nil, errorx.Unknown
	}

	projects := []entity.Project{}
	for i := range collaborators {
		projects = append(projects, collaborators[i].Project)
	}

	converted, err := d.convertProjects(ctx, projects)
	if err != nil {
		return nil, err
	}

	return &model.GetMyProjectsResponse{Projects: converted}, nil
}

func (d *projectDomain) Update(
	ctx context.Context, req *model.UpdateProjectRequest,
) (*model.UpdateProjectResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty title")
	}

	if err := checkRepoURL(req.RepoURL); err != nil {
		return nil, err
	}

	project, err := d.getOwnedProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	data := &entity.Project{
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.ProjectStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid project status %s", req.Status)
		}

		data.Status = status
	}

	if err := d.projectRepo.UpdateByID(ctx, project.ID, data); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update project: %v", err)
		return nil, errorx.Unknown
	}

	if req.TechStack != nil {
		skills, err := d.resolveSkills(ctx, req.TechStack)
		if err != nil {
			return nil, err
		}

		if err := d.projectRepo.ReplaceTechStack(ctx, project, skills); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot replace tech stack: %v", err)
			return nil, errorx.Unknown
		}
	}

	updated, err := d.projectRepo.GetByID(ctx, project.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	count, err := d.collaboratorRepo.Count(ctx, updated.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count collaborators: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateProjectResponse{
		Project: model.ConvertProject(updated, count),
	}, nil
}

func (d *projectDomain) Delete(
	ctx context.Context, req *model.DeleteProjectRequest,
) (*model.DeleteProjectResponse, error) {
	project, err := d.getOwnedProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := d.projectRepo.DeleteByID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteProjectResponse{}, nil
}

func (d *projectDomain) GetCollaborators(
	ctx context.Context, req *model.GetCollaboratorsRequest,
) (*model.GetCollaboratorsResponse, error) {
	if req.ProjectID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty project id")
	}

	collaborators, err := d.collaboratorRepo.GetListByProjectID(ctx, req.ProjectID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collaborators: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.Collaborator{}
	for i := range collaborators {
		converted = append(converted, model.ConvertCollaborator(&collaborators[i]))
	}

	return &model.GetCollaboratorsResponse{Collaborators: converted}, nil
}

func (d *projectDomain) GetSkills(
	ctx context.Context, req *model.GetSkillsRequest,
) (*model.GetSkillsResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	skills, err := d.skillRepo.GetList(ctx, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get skills: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetSkillsResponse{Skills: model.ConvertSkills(skills)}, nil
}

func (d *projectDomain) Leave(
	ctx context.Context, req *model.LeaveProjectRequest,
) (*model.LeaveProjectResponse, error) {
	if req.ProjectID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty project id")
	}

	userID := xcontext.RequestUserID(ctx)
	collaborator, err := d.collaboratorRepo.Get(ctx, req.ProjectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not a collaborator of this project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get collaborator: %v", err)
		return nil, errorx.Unknown
	}

	if collaborator.Role == entity.RoleOwner {
		return nil, errorx.New(errorx.PermissionDenied, "Owner cannot leave the project")
	}

	if _, err := d.collaboratorRepo.Delete(ctx, req.ProjectID, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete collaborator: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LeaveProjectResponse{}, nil
}

func (d *projectDomain) RemoveCollaborator(
	ctx context.Context, req *model.RemoveCollaboratorRequest,
) (*model.RemoveCollaboratorResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	project, err := d.getOwnedProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if req.UserID == project.CreatorID {
		return nil, errorx.New(errorx.PermissionDenied, "Cannot remove the project owner")
	}

	rows, err := d.collaboratorRepo.Delete(ctx, project.ID, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete collaborator: %v", err)
		return nil, errorx.Unknown
	}

	if rows == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found collaborator")
	}

	return &model.RemoveCollaboratorResponse{}, nil
}

// getOwnedProject returns the project only to its creator. Projects are
// publicly readable, so a non-creator gets a permission error rather than
// not found.
func (d *projectDomain) getOwnedProject(
	ctx context.Context, projectID string,
) (*entity.Project, error) {
	if projectID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty project id")
	}

	project, err := d.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	if project.CreatorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the project creator can modify it")
	}

	return project, nil
}

func (d *projectDomain) resolveSkills(
	ctx context.Context, names []string,
) ([]entity.Skill, error) {
	normalized := []string{}
	seen := map[string]bool{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}

		seen[name] = true
		normalized = append(normalized, name)
	}

	if len(normalized) == 0 {
		return nil, nil
	}

	for _, name := range normalized {
		err := d.skillRepo.Upsert(ctx, &entity.Skill{
			Base: entity.Base{ID: uuid.NewString()},
			Name: name,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot upsert skill: %v", err)
			return nil, errorx.Unknown
		}
	}

	skills, err := d.skillRepo.GetByNames(ctx, normalized)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get skills: %v", err)
		return nil, errorx.Unknown
	}

	return skills, nil
}

func (d *projectDomain) convertProjects(
	ctx context.Context, projects []entity.Project,
) ([]model.Project, error) {
	converted := []model.Project{}
	for i := range projects {
		count, err := d.collaboratorRepo.Count(ctx, projects[i].ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count collaborators: %v", err)
			return nil, errorx.Unknown
		}

		converted = append(converted, model.ConvertProject(&projects[i], count))
	}

	return converted, nil
}

func checkRepoURL(repoURL string) error {
	if repoURL == "" {
		return nil
	}

	if !strings.HasPrefix(repoURL, "http://") && !strings.HasPrefix(repoURL, "https://") {
		return errorx.New(errorx.BadRequest, "Repository url must start with http:// or https://")
	}

	return nil
}
