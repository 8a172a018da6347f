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

const defaultSnippetLanguage = "text"

type PostDomain interface {
	Create(context.Context, *model.CreatePostRequest) (*model.CreatePostResponse, error)
	Get(context.Context, *model.GetPostRequest) (*model.GetPostResponse, error)
	GetList(context.Context, *model.GetPostsRequest) (*model.GetPostsResponse, error)
	GetFeed(context.Context, *model.GetFeedRequest) (*model.GetFeedResponse, error)
	Update(context.Context, *model.UpdatePostRequest) (*model.UpdatePostResponse, error)
	Delete(context.Context, *model.DeletePostRequest) (*model.DeletePostResponse, error)
	Like(context.Context, *model.LikePostRequest) (*model.LikePostResponse, error)
	Unlike(context.Context, *model.UnlikePostRequest) (*model.UnlikePostResponse, error)
}

type postDomain struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	postLikeRepo repository.PostLikeRepository
	followRepo   repository.FollowRepository
	userRepo     repository.UserRepository
	notifier     *Notifier
}

func NewPostDomain(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	postLikeRepo repository.PostLikeRepository,
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) *postDomain {
	return &postDomain{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		postLikeRepo: postLikeRepo,
		followRepo:   followRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

func (d *postDomain) Create(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	if req.Content == "" && req.CodeSnippet == "" {
		return nil, errorx.New(errorx.BadRequest, "Post needs a content or a code snippet")
	}

	language := req.Language
	if req.CodeSnippet != "" && language == "" {
		language = defaultSnippetLanguage
	}

	authorID := xcontext.RequestUserID(ctx)
	post := &entity.Post{
		Base:        entity.Base{ID: uuid.NewString()},
		AuthorID:    authorID,
		Content:     req.Content,
		CodeSnippet: req.CodeSnippet,
		Language:    language,
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	author, err := d.userRepo.GetByID(ctx, authorID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get author: %v", err)
		return nil, errorx.Unknown
	}

	post.Author = *author
	d.notifier.NotifyMentions(ctx, d.userRepo, author, req.Content, entity.TargetPost, post.ID)

	return &model.CreatePostResponse{
		Post: model.ConvertPost(post, 0, 0, false),
	}, nil
}

func (d *postDomain) Get(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	if req.PostID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post id")
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertPost(ctx, post)
	if err != nil {
		return nil, err
	}

	resp := model.GetPostResponse(converted)
	return &resp, nil
}

func (d *postDomain) GetList(
	ctx context.Context, req *model.GetPostsRequest,
) (*model.GetPostsResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := repository.PostFilter{Offset: offset, Limit: limit}
	if req.AuthorID != "" {
		filter.AuthorIDs = []string{req.AuthorID}
	}

	posts, err := d.postRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertPosts(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &model.GetPostsResponse{Posts: converted}, nil
}

// GetFeed returns the posts of followed users plus the user's own posts. A
// user following nobody gets the global timeline instead of an empty page.
func (d *postDomain) GetFeed(
	ctx context.Context, req *model.GetFeedRequest,
) (*model.GetFeedResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	userID := xcontext.RequestUserID(ctx)
	followingIDs, err := d.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following ids: %v", err)
		return nil, errorx.Unknown
	}

	filter := repository.PostFilter{Offset: offset, Limit: limit}
	if len(followingIDs) > 0 {
		filter.AuthorIDs = append(followingIDs, userID)
	}

	posts, err := d.postRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get feed: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertPosts(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &model.GetFeedResponse{Posts: converted}, nil
}

func (d *postDomain) Update(
	ctx context.Context, req *model.UpdatePostRequest,
) (*model.UpdatePostResponse, error) {
	if req.Content == "" && req.CodeSnippet == "" {
		return nil, errorx.New(errorx.BadRequest, "Post needs a content or a code snippet")
	}

	post, err := d.getOwnedPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	err = d.postRepo.UpdateByID(ctx, post.ID, &entity.Post{
		Content:     req.Content,
		CodeSnippet: req.CodeSnippet,
		Language:    req.Language,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update post: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertPost(ctx, updated)
	if err != nil {
		return nil, err
	}

	return &model.UpdatePostResponse{Post: converted}, nil
}

func (d *postDomain) Delete(
	ctx context.Context, req *model.DeletePostRequest,
) (*model.DeletePostResponse, error) {
	post, err := d.getOwnedPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if err := d.postRepo.DeleteByID(ctx, post.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePostResponse{}, nil
}

func (d *postDomain) Like(
	ctx context.Context, req *model.LikePostRequest,
) (*model.LikePostResponse, error) {
	if req.PostID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post id")
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	err = d.postLikeRepo.Create(ctx, &entity.PostLike{UserID: userID, PostID: post.ID})
	if err != nil {
		if repository.IsDuplicateError(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Already liked this post")
		}

		xcontext.Logger(ctx).Errorf("Cannot create like: %v", err)
		return nil, errorx.Unknown
	}

	liker, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get liker: %v", err)
		return &model.LikePostResponse{}, nil
	}

	d.notifier.Notify(ctx, post.AuthorID, liker, entity.NotificationLike,
		entity.TargetPost, post.ID, liker.Username+" liked your post")

	return &model.LikePostResponse{}, nil
}

func (d *postDomain) Unlike(
	ctx context.Context, req *model.UnlikePostRequest,
) (*model.UnlikePostResponse, error) {
	if req.PostID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post id")
	}

	rows, err := d.postLikeRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.PostID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete like: %v", err)
		return nil, errorx.Unknown
	}

	if rows == 0 {
		return nil, errorx.New(errorx.NotFound, "Not liked this post")
	}

	return &model.UnlikePostResponse{}, nil
}

// getOwnedPost hides posts of other users behind a not found error, so the
// caller cannot probe which post ids exist.
func (d *postDomain) getOwnedPost(ctx context.Context, postID string) (*entity.Post, error) {
	if postID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post id")
	}

	post, err := d.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.NotFound, "Not found post")
	}

	return post, nil
}

func (d *postDomain) convertPost(ctx context.Context, post *entity.Post) (model.Post, error) {
	likeCount, err := d.postLikeRepo.CountByPostID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
		return model.Post{}, errorx.Unknown
	}

	commentCount, err := d.commentRepo.CountByPostID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count comments: %v", err)
		return model.Post{}, errorx.Unknown
	}

	isLiked := false
	if userID := xcontext.RequestUserID(ctx); userID != "" {
		isLiked, err = d.postLikeRepo.Exist(ctx, userID, post.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot check like: %v", err)
			return model.Post{}, errorx.Unknown
		}
	}

	return model.ConvertPost(post, likeCount, commentCount, isLiked), nil
}

func (d *postDomain) convertPosts(ctx context.Context, posts []entity.Post) ([]model.Post, error) {
	converted := []model.Post{}
	for i := range posts {
		p, err := d.convertPost(ctx, &posts[i])
		if err != nil {
			return nil, err
		}

		converted = append(converted, p)
	}

	return converted, nil
}
