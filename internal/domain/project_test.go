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

func newProjectDomainForTest() *projectDomain {
	return NewProjectDomain(
		repository.NewProjectRepository(),
		repository.NewSkillRepository(),
		repository.NewCollaboratorRepository(),
		repository.NewUserRepository(),
	)
}

func Test_projectDomain_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.CreateProjectRequest
		wantErr error
	}{
		{
			name: "happy case",
			req: &model.CreateProjectRequest{
				Title:       "Terminal dashboard",
				Description: "Graphs in the terminal",
				RepoURL:     "https://github.com/bob/dash",
				TechStack:   []string{"go", "sqlite", "go"},
			},
		},
		{
			name:    "empty title",
			req:     &model.CreateProjectRequest{},
			wantErr: errorx.New(errorx.BadRequest, "Not allow empty title"),
		},
		{
			name: "invalid repo url",
			req: &model.CreateProjectRequest{
				Title:   "Terminal dashboard",
				RepoURL: "git@github.com:bob/dash.git",
			},
			wantErr: errorx.New(errorx.BadRequest,
				"Repository url must start with http:// or https://"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContextWithUserID(testutil.User2.ID)
			testutil.CreateFixture(ctx)
			d := newProjectDomainForTest()

			got, err := d.Create(ctx, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, testutil.User2.ID, got.Project.Creator.ID)
			require.Equal(t, string(entity.ProjectActive), got.Project.Status)
			require.Len(t, got.Project.TechStack, 2)

			// The creator is the owner collaborator from the start.
			collaborator, err := repository.NewCollaboratorRepository().Get(
				ctx, got.Project.ID, testutil.User2.ID)
			require.NoError(t, err)
			require.Equal(t, entity.RoleOwner, collaborator.Role)
			require.Equal(t, int64(1), got.Project.CollaboratorCount)
		})
	}
}

func Test_projectDomain_Update_creatorOnly(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d := newProjectDomainForTest()

	// The project is visible to everyone, so a non-creator is refused
	// rather than told it does not exist.
	_, err := d.Update(ctx, &model.UpdateProjectRequest{
		ProjectID: testutil.Project1.ID,
		Title:     "hijacked",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Only the project creator can modify it").Error(), err.Error())

	_, err = d.Delete(ctx, &model.DeleteProjectRequest{ProjectID: testutil.Project1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Only the project creator can modify it").Error(), err.Error())

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	got, err := d.Update(ctx1, &model.UpdateProjectRequest{
		ProjectID: testutil.Project1.ID,
		Title:     "Renamed project",
		Status:    string(entity.ProjectCompleted),
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed project", got.Project.Title)
	require.Equal(t, string(entity.ProjectCompleted), got.Project.Status)
}

func Test_projectDomain_Update_invalidStatus(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newProjectDomainForTest()

	_, err := d.Update(ctx, &model.UpdateProjectRequest{
		ProjectID: testutil.Project1.ID,
		Title:     "Renamed project",
		Status:    "archived",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid project status archived").Error(), err.Error())
}

func Test_projectDomain_Leave(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newProjectDomainForTest()

	// The owner cannot abandon the project.
	_, err := d.Leave(ctx, &model.LeaveProjectRequest{ProjectID: testutil.Project1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Owner cannot leave the project").Error(), err.Error())

	// A contributor can.
	err = repository.NewCollaboratorRepository().Create(ctx, &entity.ProjectCollaborator{
		UserID:    testutil.User2.ID,
		ProjectID: testutil.Project1.ID,
		Role:      entity.RoleContributor,
	})
	require.NoError(t, err)

	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = d.Leave(ctx2, &model.LeaveProjectRequest{ProjectID: testutil.Project1.ID})
	require.NoError(t, err)

	ctx3 := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = d.Leave(ctx3, &model.LeaveProjectRequest{ProjectID: testutil.Project1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not a collaborator of this project").Error(), err.Error())
}

func Test_projectDomain_RemoveCollaborator(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newProjectDomainForTest()

	err := repository.NewCollaboratorRepository().Create(ctx, &entity.ProjectCollaborator{
		UserID:    testutil.User2.ID,
		ProjectID: testutil.Project1.ID,
		Role:      entity.RoleContributor,
	})
	require.NoError(t, err)

	_, err = d.RemoveCollaborator(ctx, &model.RemoveCollaboratorRequest{
		ProjectID: testutil.Project1.ID,
		UserID:    testutil.User1.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Cannot remove the project owner").Error(), err.Error())

	_, err = d.RemoveCollaborator(ctx, &model.RemoveCollaboratorRequest{
		ProjectID: testutil.Project1.ID,
		UserID:    testutil.User2.ID,
	})
	require.NoError(t, err)

	_, err = d.RemoveCollaborator(ctx, &model.RemoveCollaboratorRequest{
		ProjectID: testutil.Project1.ID,
		UserID:    testutil.User2.ID,
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found collaborator").Error(), err.Error())
}

func Test_projectDomain_GetMyProjects(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newProjectDomainForTest()

	got, err := d.GetMyProjects(ctx, &model.GetMyProjectsRequest{})
	require.NoError(t, err)
	require.Len(t, got.Projects, 1)
	require.Equal(t, testutil.Project1.ID, got.Projects[0].ID)

	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	got, err = d.GetMyProjects(ctx2, &model.GetMyProjectsRequest{})
	require.NoError(t, err)
	require.Empty(t, got.Projects)
}
