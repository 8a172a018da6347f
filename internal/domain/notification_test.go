package domain

import (
	"context"
	"testing"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/testutil"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newNotificationDomainForTest() *notificationDomain {
	return NewNotificationDomain(
		repository.NewNotificationRepository(),
		repository.NewNotificationSettingRepository(),
	)
}

// seedNotification writes a notification directly for delivery tests.
func seedNotification(t *testing.T, ctx context.Context, recipientID, senderID string) int64 {
	t.Helper()

	record := &entity.Notification{
		SnowflakeBase: entity.SnowflakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		RecipientID:   recipientID,
		SenderID:      senderID,
		Type:          entity.NotificationLike,
		TargetType:    entity.TargetPost,
		TargetID:      testutil.Post1.ID,
		Text:          "seed",
	}

	require.NoError(t, repository.NewNotificationRepository().Create(ctx, record))
	return record.ID
}

func Test_notificationDomain_GetList(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newNotificationDomainForTest()

	first := seedNotification(t, ctx, testutil.User1.ID, testutil.User2.ID)
	second := seedNotification(t, ctx, testutil.User1.ID, testutil.User3.ID)
	seedNotification(t, ctx, testutil.User2.ID, testutil.User3.ID)

	// Newest first, even when both rows share a creation second.
	got, err := d.GetList(ctx, &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, got.Notifications, 2)
	require.Equal(t, second, got.Notifications[0].ID)
	require.Equal(t, first, got.Notifications[1].ID)

	_, err = d.MarkRead(ctx, &model.MarkNotificationReadRequest{NotificationID: first})
	require.NoError(t, err)

	unread, err := d.GetList(ctx, &model.GetNotificationsRequest{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread.Notifications, 1)
	require.Equal(t, second, unread.Notifications[0].ID)
}

func Test_notificationDomain_MarkRead(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newNotificationDomainForTest()

	id := seedNotification(t, ctx, testutil.User1.ID, testutil.User2.ID)

	_, err := d.MarkRead(ctx, &model.MarkNotificationReadRequest{NotificationID: id})
	require.NoError(t, err)

	// Marking again is a no-op, not an error.
	_, err = d.MarkRead(ctx, &model.MarkNotificationReadRequest{NotificationID: id})
	require.NoError(t, err)

	// Another user's notification is indistinguishable from a missing one.
	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = d.MarkRead(ctx2, &model.MarkNotificationReadRequest{NotificationID: id})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found notification").Error(), err.Error())
}

func Test_notificationDomain_MarkAllRead_isolation(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newNotificationDomainForTest()

	seedNotification(t, ctx, testutil.User1.ID, testutil.User2.ID)
	seedNotification(t, ctx, testutil.User1.ID, testutil.User3.ID)
	seedNotification(t, ctx, testutil.User2.ID, testutil.User3.ID)

	got, err := d.MarkAllRead(ctx, &model.MarkAllNotificationsReadRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Updated)

	count, err := d.GetUnreadCount(ctx, &model.GetUnreadCountRequest{})
	require.NoError(t, err)
	require.Zero(t, count.Count)

	// User2's notifications are untouched.
	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	count, err = d.GetUnreadCount(ctx2, &model.GetUnreadCountRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(1), count.Count)
}

func Test_notificationDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newNotificationDomainForTest()

	id := seedNotification(t, ctx, testutil.User1.ID, testutil.User2.ID)

	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err := d.Delete(ctx2, &model.DeleteNotificationRequest{NotificationID: id})
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.NotFound, "Not found notification").Error(), err.Error())

	_, err = d.Delete(ctx, &model.DeleteNotificationRequest{NotificationID: id})
	require.NoError(t, err)

	_, err = d.Delete(ctx, &model.DeleteNotificationRequest{NotificationID: id})
	require.Error(t, err)
}

func Test_notificationDomain_Settings(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	d := newNotificationDomainForTest()

	// Without a stored row every toggle defaults to enabled.
	got, err := d.GetSettings(ctx, &model.GetNotificationSettingsRequest{})
	require.NoError(t, err)
	require.True(t, got.PushLikes)
	require.True(t, got.EmailProjectRequests)

	update := model.UpdateNotificationSettingsRequest(defaultNotificationSetting())
	update.PushLikes = false
	update.EmailComments = false

	updated, err := d.UpdateSettings(ctx, &update)
	require.NoError(t, err)
	require.False(t, updated.PushLikes)
	require.False(t, updated.EmailComments)
	require.True(t, updated.PushFollows)

	got, err = d.GetSettings(ctx, &model.GetNotificationSettingsRequest{})
	require.NoError(t, err)
	require.False(t, got.PushLikes)
	require.False(t, got.EmailComments)
}

func Test_notifier_respectsPushSettings(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixture(ctx)
	notifier, dispatcher := newTestNotifier()

	setting := &entity.NotificationSetting{UserID: testutil.User2.ID}
	setting.PushLikes = false
	require.NoError(t, repository.NewNotificationSettingRepository().Upsert(ctx, setting))

	sender := testutil.User1
	notifier.Notify(ctx, testutil.User2.ID, &sender, entity.NotificationLike,
		entity.TargetPost, testutil.Post1.ID, "alice liked your post")

	// The row is written but nothing is pushed.
	count, err := repository.NewNotificationRepository().CountUnread(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.Empty(t, dispatcher.recipients)
}
