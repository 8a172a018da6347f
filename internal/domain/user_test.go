package domain

import (
	"context"
	"testing"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/crypto"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/testutil"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newUserDomainForTest() (*userDomain, *captureDispatcher) {
	notifier, dispatcher := newTestNotifier()
	d := NewUserDomain(
		repository.NewUserRepository(),
		repository.NewFollowRepository(),
		notifier,
	)
	return d, dispatcher
}

func Test_userDomain_Follow(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		req     *model.FollowUserRequest
		wantErr error
		setup   func(ctx context.Context, d *userDomain)
	}{
		{
			name:   "happy case",
			userID: testutil.User1.ID,
			req:    &model.FollowUserRequest{UserID: testutil.User2.ID},
		},
		{
			name:    "cannot follow yourself",
			userID:  testutil.User1.ID,
			req:     &model.FollowUserRequest{UserID: testutil.User1.ID},
			wantErr: errorx.New(errorx.BadRequest, "Cannot follow yourself"),
		},
		{
			name:    "unknown user",
			userID:  testutil.User1.ID,
			req:     &model.FollowUserRequest{UserID: "invalid-user"},
			wantErr: errorx.New(errorx.NotFound, "Not found user"),
		},
		{
			name:   "already followed",
			userID: testutil.User1.ID,
			req:    &model.FollowUserRequest{UserID: testutil.User2.ID},
			setup: func(ctx context.Context, d *userDomain) {
				_, err := d.Follow(ctx, &model.FollowUserRequest{UserID: testutil.User2.ID})
				require.NoError(t, err)
			},
			wantErr: errorx.New(errorx.AlreadyExists, "Already followed this user"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContextWithUserID(tt.userID)
			testutil.CreateFixture(ctx)
			d, _ := newUserDomainForTest()

			if tt.setup != nil {
				tt.setup(ctx, d)
			}

			_, err := d.Follow(ctx, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
		})
	}
}

func Test_userDomain_Follow_notifiesFollowedUser(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d, dispatcher := newUserDomainForTest()

	_, err := d.Follow(ctx, &model.FollowUserRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	notificationRepo := repository.NewNotificationRepository()
	notifications, err := notificationRepo.GetList(ctx, repository.NotificationFilter{
		RecipientID: testutil.User2.ID,
		Limit:       10,
	})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationFollow, notifications[0].Type)
	require.Equal(t, testutil.User1.ID, notifications[0].SenderID)
	require.False(t, notifications[0].IsRead)

	require.Equal(t, []string{testutil.User2.ID}, dispatcher.recipients)
}

func Test_userDomain_Unfollow(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d, _ := newUserDomainForTest()

	_, err := d.Unfollow(ctx, &model.UnfollowUserRequest{UserID: testutil.User2.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not following this user").Error(), err.Error())

	_, err = d.Follow(ctx, &model.FollowUserRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	_, err = d.Unfollow(ctx, &model.UnfollowUserRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
}

func Test_userDomain_GetUser_counts(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d, _ := newUserDomainForTest()

	_, err := d.Follow(ctx, &model.FollowUserRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	ctx3 := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = d.Follow(ctx3, &model.FollowUserRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	got, err := d.GetUser(ctx, &model.GetUserRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
	require.Equal(t, int64(2), got.FollowerCount)
	require.Equal(t, int64(0), got.FollowingCount)
	require.True(t, got.IsFollowing)
	require.Empty(t, got.Email)
}

func Test_userDomain_Update_changePassword(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d, _ := newUserDomainForTest()

	_, err := d.Update(ctx, &model.UpdateUserRequest{
		CurrentPassword:    "wrong-password",
		NewPassword:        "hunter2hunter2",
		ConfirmNewPassword: "hunter2hunter2",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Current password is incorrect").Error(), err.Error())

	_, err = d.Update(ctx, &model.UpdateUserRequest{
		CurrentPassword:    testutil.Password,
		NewPassword:        "hunter2hunter2",
		ConfirmNewPassword: "something-else",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.BadRequest, "Passwords do not match").Error(), err.Error())

	_, err = d.Update(ctx, &model.UpdateUserRequest{
		CurrentPassword:    testutil.Password,
		NewPassword:        "hunter2hunter2",
		ConfirmNewPassword: "hunter2hunter2",
	})
	require.NoError(t, err)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.True(t, crypto.ComparePassword(user.PasswordHash, "hunter2hunter2"))
	require.False(t, crypto.ComparePassword(user.PasswordHash, testutil.Password))
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d, _ := newUserDomainForTest()

	got, err := d.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, got.ID)
	require.Equal(t, testutil.User1.Email, got.Email)
}
