package domain

import (
	"context"
	"errors"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/crypto"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	GetUsers(context.Context, *model.GetUsersRequest) (*model.GetUsersResponse, error)
	Update(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	Follow(context.Context, *model.FollowUserRequest) (*model.FollowUserResponse, error)
	Unfollow(context.Context, *model.UnfollowUserRequest) (*model.UnfollowUserResponse, error)
	GetFollowers(context.Context, *model.GetFollowersRequest) (*model.GetFollowersResponse, error)
	GetFollowing(context.Context, *model.GetFollowingRequest) (*model.GetFollowingResponse, error)
}

type userDomain struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	notifier   *Notifier
}

func NewUserDomain(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	notifier *Notifier,
) *userDomain {
	return &userDomain{
		userRepo:   userRepo,
		followRepo: followRepo,
		notifier:   notifier,
	}
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertUserWithCounts(ctx, user, true)
	if err != nil {
		return nil, err
	}

	resp := model.GetMeResponse(converted)
	return &resp, nil
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	user, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertUserWithCounts(ctx, user, false)
	if err != nil {
		return nil, err
	}

	resp := model.GetUserResponse(converted)
	return &resp, nil
}

func (d *userDomain) GetUsers(
	ctx context.Context, req *model.GetUsersRequest,
) (*model.GetUsersResponse, error) {
	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	users, err := d.userRepo.GetList(ctx, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.User{}
	for i := range users {
		converted = append(converted, model.ConvertUser(&users[i]))
	}

	return &model.GetUsersResponse{Users: converted}, nil
}

func (d *userDomain) Update(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	data := &entity.User{
		FullName:             req.FullName,
		Bio:                  req.Bio,
		GithubProfile:        req.GithubProfile,
		StackoverflowProfile: req.StackoverflowProfile,
	}

	// A password change needs the current password verified first.
	if req.NewPassword != "" {
		current, err := d.userRepo.GetByID(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		if !crypto.ComparePassword(current.PasswordHash, req.CurrentPassword) {
			return nil, errorx.New(errorx.BadRequest, "Current password is incorrect")
		}

		if len(req.NewPassword) < minPasswordLength {
			return nil, errorx.New(errorx.BadRequest,
				"Password must be at least %d characters", minPasswordLength)
		}

		if req.NewPassword != req.ConfirmNewPassword {
			return nil, errorx.New(errorx.BadRequest, "Passwords do not match")
		}

		hashed, err := crypto.HashPassword(req.NewPassword)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
			return nil, errorx.Unknown
		}

		data.PasswordHash = hashed
	}

	err := d.userRepo.UpdateByID(ctx, userID, data)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateUserResponse{User: model.ConvertPrivateUser(user)}, nil
}

func (d *userDomain) Follow(
	ctx context.Context, req *model.FollowUserRequest,
) (*model.FollowUserResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	followerID := xcontext.RequestUserID(ctx)
	if followerID == req.UserID {
		return nil, errorx.New(errorx.BadRequest, "Cannot follow yourself")
	}

	following, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	err = d.followRepo.Create(ctx, &entity.Follow{
		FollowerID:  followerID,
		FollowingID: following.ID,
	})
	if err != nil {
		if repository.IsDuplicateError(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Already followed this user")
		}

		xcontext.Logger(ctx).Errorf("Cannot create follow: %v", err)
		return nil, errorx.Unknown
	}

	follower, err := d.userRepo.GetByID(ctx, followerID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get follower: %v", err)
		return &model.FollowUserResponse{}, nil
	}

	d.notifier.Notify(ctx, following.ID, follower, entity.NotificationFollow,
		entity.TargetUser, follower.ID, follower.Username+" started following you")

	return &model.FollowUserResponse{}, nil
}

func (d *userDomain) Unfollow(
	ctx context.Context, req *model.UnfollowUserRequest,
) (*model.UnfollowUserResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	rows, err := d.followRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete follow: %v", err)
		return nil, errorx.Unknown
	}

	if rows == 0 {
		return nil, errorx.New(errorx.NotFound, "Not following this user")
	}

	return &model.UnfollowUserResponse{}, nil
}

func (d *userDomain) GetFollowers(
	ctx context.Context, req *model.GetFollowersRequest,
) (*model.GetFollowersResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	follows, err := d.followRepo.GetFollowers(ctx, req.UserID, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followers: %v", err)
		return nil, errorx.Unknown
	}

	followers := []model.User{}
	for i := range follows {
		followers = append(followers, model.ConvertUser(&follows[i].Follower))
	}

	return &model.GetFollowersResponse{Followers: followers}, nil
}

func (d *userDomain) GetFollowing(
	ctx context.Context, req *model.GetFollowingRequest,
) (*model.GetFollowingResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	offset, limit, err := checkPagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	follows, err := d.followRepo.GetFollowing(ctx, req.UserID, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following: %v", err)
		return nil, errorx.Unknown
	}

	following := []model.User{}
	for i := range follows {
		following = append(following, model.ConvertUser(&follows[i].Following))
	}

	return &model.GetFollowingResponse{Following: following}, nil
}

func (d *userDomain) convertUserWithCounts(
	ctx context.Context, user *entity.User, private bool,
) (model.User, error) {
	converted := model.ConvertUser(user)
	if private {
		converted = model.ConvertPrivateUser(user)
	}

	followerCount, err := d.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return model.User{}, errorx.Unknown
	}

	followingCount, err := d.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count following: %v", err)
		return model.User{}, errorx.Unknown
	}

	converted.FollowerCount = followerCount
	converted.FollowingCount = followingCount

	if requestUserID := xcontext.RequestUserID(ctx); requestUserID != "" && requestUserID != user.ID {
		isFollowing, err := d.followRepo.Exist(ctx, requestUserID, user.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot check following: %v", err)
			return model.User{}, errorx.Unknown
		}

		converted.IsFollowing = isFollowing
	}

	return converted, nil
}
