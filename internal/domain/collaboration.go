package domain

import (
	"context"
	"errors"
	"time"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollaborationDomain interface {
	Request(context.Context, *model.RequestCollaborationRequest) (*model.RequestCollaborationResponse, error)
	Respond(context.Context, *model.RespondCollaborationRequest) (*model.RespondCollaborationResponse, error)
	GetProjectRequests(context.Context, *model.GetProjectRequestsRequest) (*model.GetProjectRequestsResponse, error)
	GetMyRequests(context.Context, *model.GetMyCollaborationRequestsRequest) (*model.GetMyCollaborationRequestsResponse, error)
}

type collaborationDomain struct {
	requestRepo      repository.CollaborationRequestRepository
	projectRepo      repository.ProjectRepository
	collaboratorRepo repository.CollaboratorRepository
	userRepo         repository.UserRepository
	notifier         *Notifier
}

func NewCollaborationDomain(
	requestRepo repository.CollaborationRequestRepository,
	projectRepo repository.ProjectRepository,
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) *collaborationDomain {
	return &collaborationDomain{
		requestRepo:      requestRepo,
		projectRepo:      projectRepo,
		collaboratorRepo: collaboratorRepo,
		userRepo:         userRepo,
		notifier:         notifier,
	}
}

func (d *collaborationDomain) Request(
	ctx context.Context, req *model.RequestCollaborationRequest,
) (*model.RequestCollaborationResponse, error) {
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

	userID := xcontext.RequestUserID(ctx)
	if userID == project.CreatorID {
		return nil, errorx.New(errorx.BadRequest, "Cannot request to join your own project")
	}

	if _, err := d.collaboratorRepo.Get(ctx, project.ID, userID); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Already a collaborator of this project")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get collaborator: %v", err)
		return nil, errorx.Unknown
	}

	request := &entity.CollaborationRequest{
		Base:      entity.Base{ID: uuid.NewString()},
		UserID:    userID,
		ProjectID: project.ID,
		Message:   req.Message,
		Status:    entity.RequestPending,
	}

	if err := d.requestRepo.Create(ctx, request); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Already requested to join this project")
		}

		xcontext.Logger(ctx).Errorf("Cannot create collaboration request: %v", err)
		return nil, errorx.Unknown
	}

	requester, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get requester: %v", err)
		return nil, errorx.Unknown
	}

	d.notifier.Notify(ctx, project.CreatorID, requester, entity.NotificationProjectRequest,
		entity.TargetCollaborationRequest, request.ID,
		requester.Username+" requested to join "+project.Title)

	request.User = *requester
	request.Project = *project
	return &model.RequestCollaborationResponse{
		Request: model.ConvertCollaborationRequest(request),
	}, nil
}

// Respond resolves a pending request. Approval inserts the contributor in
// the same transaction as the status flip, so an approved request always
// has its collaborator row.
func (d *collaborationDomain) Respond(
	ctx context.Context, req *model.RespondCollaborationRequest,
) (*model.RespondCollaborationResponse, error) {
	if req.RequestID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty request id")
	}

	// The caller says accepted; the stored status is approved.
	var status entity.RequestStatus
	switch req.Status {
	case "accepted":
		status = entity.RequestApproved
	case "rejected":
		status = entity.RequestRejected
	default:
		return nil, errorx.New(errorx.BadRequest, "Status must be accepted or rejected")
	}

	request, err := d.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get collaboration request: %v", err)
		return nil, errorx.Unknown
	}

	// The requester already knows this request exists, so a non-creator
	// gets a permission error rather than not found.
	if request.Project.CreatorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the project creator can respond to this request")
	}

	if request.Status != entity.RequestPending {
		return nil, errorx.New(errorx.BadRequest, "Request is already resolved")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.requestRepo.UpdateStatusByID(ctx, request.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update request status: %v", err)
		return nil, errorx.Unknown
	}

	if status == entity.RequestApproved {
		err := d.collaboratorRepo.Create(ctx, &entity.ProjectCollaborator{
			UserID:    request.UserID,
			ProjectID: request.ProjectID,
			Role:      entity.RoleContributor,
			JoinedAt:  time.Now(),
		})
		if err != nil && !repository.IsDuplicateError(err) {
			xcontext.Logger(ctx).Errorf("Cannot create collaborator: %v", err)
			return nil, errorx.Unknown
		}
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	responder, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get responder: %v", err)
		return nil, errorx.Unknown
	}

	notificationType := entity.NotificationProjectAccepted
	text := "Your request to join " + request.Project.Title + " was approved"
	if status == entity.RequestRejected {
		notificationType = entity.NotificationProjectRejected
		text = "Your request to join " + request.Project.Title + " was rejected"
	}

	d.notifier.Notify(ctx, request.UserID, responder, notificationType,
		entity.TargetProject, request.ProjectID, text)

	request.Status = status
	return &model.RespondCollaborationResponse{
		Request: model.ConvertCollaborationRequest(request),
	}, nil
}

func (d *collaborationDomain) GetProjectRequests(
	ctx context.Context, req *model.GetProjectRequestsRequest,
) (*model.GetProjectRequestsResponse, error) {
	if req.ProjectID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty project id")
	}

	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	project, err := d.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	if project.CreatorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.NotFound, "Not found project")
	}

	requests, err := d.requestRepo.GetListByProjectID(ctx, project.ID, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collaboration requests: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.CollaborationRequest{}
	for i := range requests {
		requests[i].Project = *project
		converted = append(converted, model.ConvertCollaborationRequest(&requests[i]))
	}

	return &model.GetProjectRequestsResponse{Requests: converted}, nil
}

func (d *collaborationDomain) GetMyRequests(
	ctx context.Context, req *model.GetMyCollaborationRequestsRequest,
) (*model.GetMyCollaborationRequestsResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	requests, err := d.requestRepo.GetListByUserID(
		ctx, xcontext.RequestUserID(ctx), offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collaboration requests: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.CollaborationRequest{}
	for i := range requests {
		converted = append(converted, model.ConvertCollaborationRequest(&requests[i]))
	}

	return &model.GetMyCollaborationRequestsResponse{Requests: converted}, nil
}
