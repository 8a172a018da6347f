package migration

import (
	"context"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/pkg/xcontext"
)

func Migrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Follow{},
		&entity.Post{},
		&entity.Comment{},
		&entity.PostLike{},
		&entity.CommentLike{},
		&entity.Skill{},
		&entity.Project{},
		&entity.ProjectCollaborator{},
		&entity.CollaborationRequest{},
		&entity.Notification{},
		&entity.NotificationSetting{},
	)
}
