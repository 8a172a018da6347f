package model

import (
	"time"

	"github.com/devsocial/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:                   user.ID,
		Username:             user.Username,
		FullName:             user.FullName,
		Bio:                  user.Bio,
		GithubProfile:        user.GithubProfile,
		StackoverflowProfile: user.StackoverflowProfile,
		CreatedAt:            user.CreatedAt.Format(DefaultTimeLayout),
	}
}

// ConvertPrivateUser includes fields only the account owner may see.
func ConvertPrivateUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	converted := ConvertUser(user)
	converted.Email = user.Email
	return converted
}

func ConvertPost(post *entity.Post, likeCount, commentCount int64, isLiked bool) Post {
	if post == nil {
		return Post{}
	}

	return Post{
		ID:           post.ID,
		Author:       ConvertUser(&post.Author),
		Content:      post.Content,
		CodeSnippet:  post.CodeSnippet,
		Language:     post.Language,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		IsLiked:      isLiked,
		CreatedAt:    post.CreatedAt.Format(DefaultTimeLayout),
		UpdatedAt:    post.UpdatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertComment(comment *entity.Comment, likeCount int64) Comment {
	if comment == nil {
		return Comment{}
	}

	return Comment{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Author:    ConvertUser(&comment.Author),
		Content:   comment.Content,
		LikeCount: likeCount,
		CreatedAt: comment.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertSkills(skills []entity.Skill) []Skill {
	converted := []Skill{}
	for _, s := range skills {
		converted = append(converted, Skill{Name: s.Name, Category: s.Category})
	}
	return converted
}

func ConvertProject(project *entity.Project, collaboratorCount int64) Project {
	if project == nil {
		return Project{}
	}

	return Project{
		ID:                project.ID,
		Creator:           ConvertUser(&project.Creator),
		Title:             project.Title,
		Description:       project.Description,
		RepoURL:           project.RepoURL,
		Status:            string(project.Status),
		TechStack:         ConvertSkills(project.TechStack),
		CollaboratorCount: collaboratorCount,
		CreatedAt:         project.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertCollaborator(collaborator *entity.ProjectCollaborator) Collaborator {
	if collaborator == nil {
		return Collaborator{}
	}

	return Collaborator{
		User:     ConvertUser(&collaborator.User),
		Role:     string(collaborator.Role),
		JoinedAt: collaborator.JoinedAt.Format(DefaultTimeLayout),
	}
}

func ConvertCollaborationRequest(request *entity.CollaborationRequest) CollaborationRequest {
	if request == nil {
		return CollaborationRequest{}
	}

	return CollaborationRequest{
		ID:        request.ID,
		User:      ConvertUser(&request.User),
		Project:   ConvertProject(&request.Project, 0),
		Message:   request.Message,
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertNotification(notification *entity.Notification) Notification {
	if notification == nil {
		return Notification{}
	}

	return Notification{
		ID:         notification.ID,
		Sender:     ConvertUser(&notification.Sender),
		Type:       string(notification.Type),
		TargetType: string(notification.TargetType),
		TargetID:   notification.TargetID,
		Text:       notification.Text,
		IsRead:     notification.IsRead,
		CreatedAt:  notification.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertNotificationSetting(setting *entity.NotificationSetting) NotificationSetting {
	if setting == nil {
		return NotificationSetting{}
	}

	return NotificationSetting{
		EmailLikes:           setting.EmailLikes,
		EmailComments:        setting.EmailComments,
		EmailFollows:         setting.EmailFollows,
		EmailMentions:        setting.EmailMentions,
		EmailProjectInvites:  setting.EmailProjectInvites,
		EmailProjectRequests: setting.EmailProjectRequests,
		PushLikes:            setting.PushLikes,
		PushComments:         setting.PushComments,
		PushFollows:          setting.PushFollows,
		PushMentions:         setting.PushMentions,
		PushProjectInvites:   setting.PushProjectInvites,
		PushProjectRequests:  setting.PushProjectRequests,
	}
}
