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

func newPostDomainForTest() (*postDomain, *captureDispatcher) {
	notifier, dispatcher := newTestNotifier()
	d := NewPostDomain(
		repository.NewPostRepository(),
		repository.NewCommentRepository(),
		repository.NewPostLikeRepository(),
		repository.NewFollowRepository(),
		repository.NewUserRepository(),
		notifier,
	)
	return d, dispatcher
}

func Test_postDomain_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.CreatePostRequest
		wantErr error
	}{
		{
			name: "text only",
			req:  &model.CreatePostRequest{Content: "hello world"},
		},
		{
			name: "snippet only gets default language",
			req:  &model.CreatePostRequest{CodeSnippet: "print(1)"},
		},
		{
			name:    "empty post",
			req:     &model.CreatePostRequest{},
			wantErr: errorx.New(errorx.BadRequest, "Post needs a content or a code snippet"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContextWithUserID(testutil.User1.ID)
			testutil.CreateFixture(ctx)
			d, _ := newPostDomainForTest()

			got, err := d.Create(ctx, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, got.Post.ID)
			require.Equal(t, testutil.User1.ID, got.Post.Author.ID)
			if tt.req.CodeSnippet != "" && tt.req.Language == "" {
				require.Equal(t, "text", got.Post.Language)
			}
		})
	}
}

func Test_postDomain_Create_notifiesMentions(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d, _ := newPostDomainForTest()

	_, err := d.Create(ctx, &model.CreatePostRequest{Content: "ping @bob and @carol and @alice"})
	require.NoError(t, err)

	notificationRepo := repository.NewNotificationRepository()
	for _, recipient := range []string{testutil.User2.ID, testutil.User3.ID} {
		notifications, err := notificationRepo.GetList(ctx, repository.NotificationFilter{
			RecipientID: recipient,
			Limit:       10,
		})
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		require.Equal(t, entity.NotificationMention, notifications[0].Type)
	}

	// The author never receives a mention of themselves.
	count, err := notificationRepo.CountUnread(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func Test_postDomain_Like(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, dispatcher := newPostDomainForTest()

	_, err := d.Like(ctx, &model.LikePostRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)

	// Only one of two identical likes can succeed.
	_, err = d.Like(ctx, &model.LikePostRequest{PostID: testutil.Post1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Already liked this post").Error(), err.Error())

	notifications, err := repository.NewNotificationRepository().GetList(ctx,
		repository.NotificationFilter{RecipientID: testutil.Post1.AuthorID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.NotificationLike, notifications[0].Type)
	require.Equal(t, []string{testutil.Post1.AuthorID}, dispatcher.recipients)

	got, err := d.Get(ctx, &model.GetPostRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), got.LikeCount)
	require.True(t, got.IsLiked)
}

func Test_postDomain_Like_ownPostIsSilent(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.Post1.AuthorID)
	testutil.CreateFixture(ctx)
	d, dispatcher := newPostDomainForTest()

	_, err := d.Like(ctx, &model.LikePostRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)

	count, err := repository.NewNotificationRepository().CountUnread(ctx, testutil.Post1.AuthorID)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Empty(t, dispatcher.recipients)
}

func Test_postDomain_Unlike(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, _ := newPostDomainForTest()

	_, err := d.Unlike(ctx, &model.UnlikePostRequest{PostID: testutil.Post1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not liked this post").Error(), err.Error())

	_, err = d.Like(ctx, &model.LikePostRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)

	_, err = d.Unlike(ctx, &model.UnlikePostRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)
}

func Test_postDomain_GetFeed(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixture(ctx)
	d, _ := newPostDomainForTest()

	// Following nobody yields the global timeline.
	got, err := d.GetFeed(ctx, &model.GetFeedRequest{})
	require.NoError(t, err)
	require.Len(t, got.Posts, 2)

	followRepo := repository.NewFollowRepository()
	err = followRepo.Create(ctx, &entity.Follow{
		FollowerID:  testutil.User3.ID,
		FollowingID: testutil.User1.ID,
	})
	require.NoError(t, err)

	got, err = d.GetFeed(ctx, &model.GetFeedRequest{})
	require.NoError(t, err)
	require.Len(t, got.Posts, 1)
	require.Equal(t, testutil.Post1.ID, got.Posts[0].ID)
}

func Test_postDomain_Update_ownershipHidden(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, _ := newPostDomainForTest()

	// Post1 belongs to user1; user2 cannot tell it apart from a missing one.
	_, err := d.Update(ctx, &model.UpdatePostRequest{
		PostID:  testutil.Post1.ID,
		Content: "hijacked",
	})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found post").Error(), err.Error())

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	got, err := d.Update(ctx1, &model.UpdatePostRequest{
		PostID:  testutil.Post1.ID,
		Content: "edited",
	})
	require.NoError(t, err)
	require.Equal(t, "edited", got.Post.Content)
}

func Test_postDomain_Delete_ownershipHidden(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixture(ctx)
	d, _ := newPostDomainForTest()

	_, err := d.Delete(ctx, &model.DeletePostRequest{PostID: testutil.Post1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found post").Error(), err.Error())

	ctx1 := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = d.Delete(ctx1, &model.DeletePostRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)

	_, err = d.Get(ctx, &model.GetPostRequest{PostID: testutil.Post1.ID})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found post").Error(), err.Error())
}
