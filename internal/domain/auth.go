package domain

import (
	"context"
	"errors"
	"regexp"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/crypto"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	emailRegexp    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
)

const minPasswordLength = 8

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if !emailRegexp.MatchString(req.Email) {
		return nil, errorx.New(errorx.BadRequest, "Invalid email address")
	}

	if !usernameRegexp.MatchString(req.Username) {
		return nil, errorx.New(errorx.BadRequest,
			"Username must be 3-30 characters of letters, digits or underscore")
	}

	if len(req.Password) < minPasswordLength {
		return nil, errorx.New(errorx.BadRequest,
			"Password must be at least %d characters", minPasswordLength)
	}

	if req.Password != req.ConfirmPassword {
		return nil, errorx.New(errorx.BadRequest, "Passwords do not match")
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:         entity.Base{ID: uuid.NewString()},
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashed,
		FullName:     req.FullName,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, errorx.New(errorx.AlreadyExists, "Email or username is already taken")
		}

		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := d.generateAccessToken(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{
		User:        model.ConvertPrivateUser(user),
		AccessToken: token,
	}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.PasswordHash, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
	}

	token, err := d.generateAccessToken(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		User:        model.ConvertPrivateUser(user),
		AccessToken: token,
	}, nil
}

func (d *authDomain) generateAccessToken(ctx context.Context, userID string) (string, error) {
	return xcontext.TokenEngine(ctx).Generate(
		userID, xcontext.Configs(ctx).Auth.AccessToken.Expiration.Duration)
}
