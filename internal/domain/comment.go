package domain

import (
	"context"
	"errors"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentDomain interface {
	Create(context.Context, *model.CreateCommentRequest) (*model.CreateCommentResponse, error)
	GetList(context.Context, *model.GetCommentsRequest) (*model.GetCommentsResponse, error)
	Update(context.Context, *model.UpdateCommentRequest) (*model.UpdateCommentResponse, error)
	Delete(context.Context, *model.DeleteCommentRequest) (*model.DeleteCommentResponse, error)
	Like(context.Context, *model.LikeCommentRequest) (*model.LikeCommentResponse, error)
	Unlike(context.Context, *model.UnlikeCommentRequest) (*model.UnlikeCommentResponse, error)
}

type commentDomain struct {
	commentRepo     repository.CommentRepository
	postRepo        repository.PostRepository
	commentLikeRepo repository.CommentLikeRepository
	userRepo        repository.UserRepository
	notifier        *Notifier
}

func NewCommentDomain(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	commentLikeRepo repository.CommentLikeRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) *commentDomain {
	return &commentDomain{
		commentRepo:     commentRepo,
		postRepo:        postRepo,
		commentLikeRepo: commentLikeRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

func (d *commentDomain) Create(
	ctx context.Context, req *model.CreateCommentRequest,
) (*model.CreateCommentResponse, error) {
	if req.PostID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post id")
	}

	if req.Content == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty content")
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	authorID := xcontext.RequestUserID(ctx)
	comment := &entity.Comment{
		Base:     entity.Base{ID: uuid.NewString()},
		AuthorID: authorID,
		PostID:   post.ID,
		Content:  req.Content,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	author, err := d.userRepo.GetByID(ctx, authorID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get author: %v", err)
		return nil, errorx.Unknown
	}

	comment.Author = *author
	d.notifier.Notify(ctx, post.AuthorID, author, entity.NotificationComment,
		entity.TargetPost, post.ID, author.Username+" commented on your post")
	d.notifier.NotifyMentions(ctx, d.userRepo, author, req.Content,
		entity.TargetComment, comment.ID, post.AuthorID)

	return &model.CreateCommentResponse{
		Comment: model.ConvertComment(comment, 0),
	}, nil
}

func (d *commentDomain) GetList(
	ctx context.Context, req *model.GetCommentsRequest,
) (*model.GetCommentsResponse, error) {
	if req.PostID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post id")
	}

	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	comments, err := d.commentRepo.GetListByPostID(ctx, req.PostID, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.Comment{}
	for i := range comments {
		likeCount, err := d.commentLikeRepo.CountByCommentID(ctx, comments[i].ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count comment likes: %v", err)
			return nil, errorx.Unknown
		}

		converted = append(converted, model.ConvertComment(&comments[i], likeCount))
	}

	return &model.GetCommentsResponse{Comments: converted}, nil
}

func (d *commentDomain) Update(
	ctx context.Context, req *model.UpdateCommentRequest,
) (*model.UpdateCommentResponse, error) {
	if req.Content == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty content")
	}

	comment, err := d.getOwnedComment(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	err = d.commentRepo.UpdateByID(ctx, comment.ID, &entity.Comment{Content: req.Content})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update comment: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	likeCount, err := d.commentLikeRepo.CountByCommentID(ctx, updated.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count comment likes: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateCommentResponse{
		Comment: model.ConvertComment(updated, likeCount),
	}, nil
}

func (d *commentDomain) Delete(
	ctx context.Context, req *model.DeleteCommentRequest,
) (*model.DeleteCommentResponse, error) {
	comment, err := d.getOwnedComment(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	if err := d.commentRepo.DeleteByID(ctx, comment.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCommentResponse{}, nil
}

func (d *commentDomain) Like(
	ctx context.Context, req *model.LikeCommentRequest,
) (*model.LikeCommentResponse, error) {
	if req.CommentID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment id")
	}

	comment, err := d.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	err = d.commentLikeRepo.Create(ctx, &entity.CommentLike{UserID: userID, CommentID: comment.ID})
	if err != nil {
		if repository.IsDuplicateError(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Already liked this comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot create like: %v", err)
		return nil, errorx.Unknown
	}

	liker, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get liker: %v", err)
		return &model.LikeCommentResponse{}, nil
	}

	d.notifier.Notify(ctx, comment.AuthorID, liker, entity.NotificationLike,
		entity.TargetComment, comment.ID, liker.Username+" liked your comment")

	return &model.LikeCommentResponse{}, nil
}

func (d *commentDomain) Unlike(
	ctx context.Context, req *model.UnlikeCommentRequest,
) (*model.UnlikeCommentResponse, error) {
	if req.CommentID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment id")
	}

	rows, err := d.commentLikeRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.CommentID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete like: %v", err)
		return nil, errorx.Unknown
	}

	if rows == 0 {
		return nil, errorx.New(errorx.NotFound, "Not liked this comment")
	}

	return &model.UnlikeCommentResponse{}, nil
}

func (d *commentDomain) getOwnedComment(
	ctx context.Context, commentID string,
) (*entity.Comment, error) {
	if commentID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment id")
	}

	comment, err := d.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	if comment.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.NotFound, "Not found comment")
	}

	return comment, nil
}
