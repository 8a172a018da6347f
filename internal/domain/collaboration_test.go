package domain

import (
	"testing"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/testutil"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newCollaborationDomainForTest() (*collaborationDomain, *captureDispatcher) {
	notifier, dispatcher := newTestNotifier()
	d := NewCollaborationDomain(
		repository.NewCollaborationRequestRepository(),
		repository.NewProjectRepository(),
		repository.NewCollaboratorRepository(),
		repository.NewUserRepository(),
		notifier,
	)
	return d, dispatcher
}

func Test_collaborationDomain_Request(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, dispatcher := newCollaborationDomainForTest()

	got, err := d.Request(ctx, &model.RequestCollaborationRequest{
		ProjectID: testutil.Project1.ID,
		Message:   "I can help with the reviewer heuristics",
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.RequestPending), got.Request.Status)
	require.Equal(t, testutil.User2.ID, got.Request.User.ID)

	// One pending request per user and project.
	_, err = d.Request(ctx, &model.RequestCollaborationRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Already requested to join this project").Error(), err.Error())

	// The project creator is notified.
	notifications, err := repository.NewNotificationRepository().GetList(ctx,
		repository.NotificationFilter{RecipientID: testutil.Project1.CreatorID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationProjectRequest, notifications[0].Type)
	require.Equal(t, []string{testutil.Project1.CreatorID}, dispatcher.recipients)
}

func Test_collaborationDomain_Request_validations(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d, _ := newCollaborationDomainForTest()

	// The creator cannot request to join their own project.
	_, err := d.Request(ctx, &model.RequestCollaborationRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Cannot request to join your own project").Error(), err.Error())

	// Neither can an existing collaborator.
	err = repository.NewCollaboratorRepository().Create(ctx, &entity.ProjectCollaborator{
		UserID:    testutil.User3.ID,
		ProjectID: testutil.Project1.ID,
		Role:      entity.RoleContributor,
	})
	require.NoError(t, err)

	ctx3 := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = d.Request(ctx3, &model.RequestCollaborationRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Already a collaborator of this project").Error(), err.Error())
}

func Test_collaborationDomain_Respond_approve(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, dispatcher := newCollaborationDomainForTest()

	created, err := d.Request(ctx, &model.RequestCollaborationRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.NoError(t, err)

	// An accepted response lands as the approved status.
	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	got, err := d.Respond(ctx1, &model.RespondCollaborationRequest{
		RequestID: created.Request.ID,
		Status:    "accepted",
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.RequestApproved), got.Request.Status)

	// Approval and the contributor row land together.
	collaborator, err := repository.NewCollaboratorRepository().Get(
		ctx, testutil.Project1.ID, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.RoleContributor, collaborator.Role)

	notifications, err := repository.NewNotificationRepository().GetList(ctx,
		repository.NotificationFilter{RecipientID: testutil.User2.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationProjectAccepted, notifications[0].Type)
	require.Contains(t, dispatcher.recipients, testutil.User2.ID)

	// A resolved request cannot be resolved again.
	_, err = d.Respond(ctx1, &model.RespondCollaborationRequest{
		RequestID: created.Request.ID,
		Status:    "rejected",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Request is already resolved").Error(), err.Error())
}

func Test_collaborationDomain_Respond_reject(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, _ := newCollaborationDomainForTest()

	created, err := d.Request(ctx, &model.RequestCollaborationRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.NoError(t, err)

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	got, err := d.Respond(ctx1, &model.RespondCollaborationRequest{
		RequestID: created.Request.ID,
		Status:    "rejected",
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.RequestRejected), got.Request.Status)

	// No contributor row on rejection.
	_, err = repository.NewCollaboratorRepository().Get(
		ctx, testutil.Project1.ID, testutil.User2.ID)
	require.Error(t, err)

	notifications, err := repository.NewNotificationRepository().GetList(ctx,
		repository.NotificationFilter{RecipientID: testutil.User2.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationProjectRejected, notifications[0].Type)
}

func Test_collaborationDomain_Respond_permissions(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, _ := newCollaborationDomainForTest()

	created, err := d.Request(ctx, &model.RequestCollaborationRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.NoError(t, err)

	// Only the project creator may respond.
	ctx3 := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = d.Respond(ctx3, &model.RespondCollaborationRequest{
		RequestID: created.Request.ID,
		Status:    "accepted",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied,
		"Only the project creator can respond to this request").Error(), err.Error())

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = d.Respond(ctx1, &model.RespondCollaborationRequest{
		RequestID: created.Request.ID,
		Status:    "maybe",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Status must be accepted or rejected").Error(), err.Error())
}

func Test_collaborationDomain_GetProjectRequests(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, _ := newCollaborationDomainForTest()

	_, err := d.Request(ctx, &model.RequestCollaborationRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.NoError(t, err)

	// The requester is not the creator, so the list is hidden from them.
	_, err = d.GetProjectRequests(ctx, &model.GetProjectRequestsRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found project").Error(), err.Error())

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	got, err := d.GetProjectRequests(ctx1, &model.GetProjectRequestsRequest{
		ProjectID: testutil.Project1.ID,
	})
	require.NoError(t, err)
	require.Len(t, got.Requests, 1)
	require.Equal(t, testutil.User2.ID, got.Requests[0].User.ID)

	mine, err := d.GetMyRequests(ctx, &model.GetMyCollaborationRequestsRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Requests, 1)
	require.Equal(t, testutil.Project1.ID, mine.Requests[0].Project.ID)
}
