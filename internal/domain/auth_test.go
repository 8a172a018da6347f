package domain

import (
	"testing"

	"github.com/devsocial/backend/internal/model"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/testutil"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_Register(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.RegisterRequest
		wantErr error
	}{
		{
			name: "happy case",
			req: &model.RegisterRequest{
				Email:           "dave@example.com",
				Username:        "dave",
				Password:        "longenough",
				ConfirmPassword: "longenough",
				FullName:        "Dave Pham",
			},
		},
		{
			name: "invalid email",
			req: &model.RegisterRequest{
				Email:           "not-an-email",
				Username:        "dave",
				Password:        "longenough",
				ConfirmPassword: "longenough",
			},
			wantErr: errorx.New(errorx.BadRequest, "Invalid email address"),
		},
		{
			name: "too short password",
			req: &model.RegisterRequest{
				Email:           "dave@example.com",
				Username:        "dave",
				Password:        "short",
				ConfirmPassword: "short",
			},
			wantErr: errorx.New(errorx.BadRequest, "Password must be at least 8 characters"),
		},
		{
			name: "mismatched confirmation",
			req: &model.RegisterRequest{
				Email:           "dave@example.com",
				Username:        "dave",
				Password:        "longenough",
				ConfirmPassword: "different",
			},
			wantErr: errorx.New(errorx.BadRequest, "Passwords do not match"),
		},
		{
			name: "taken email",
			req: &model.RegisterRequest{
				Email:           testutil.User1.Email,
				Username:        "dave",
				Password:        "longenough",
				ConfirmPassword: "longenough",
			},
			wantErr: errorx.New(errorx.AlreadyExists, "Email or username is already taken"),
		},
		{
			name: "taken username",
			req: &model.RegisterRequest{
				Email:           "dave@example.com",
				Username:        testutil.User1.Username,
				Password:        "longenough",
				ConfirmPassword: "longenough",
			},
			wantErr: errorx.New(errorx.AlreadyExists, "Email or username is already taken"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContext()
			testutil.CreateFixture(ctx)
			d := NewAuthDomain(repository.NewUserRepository())

			got, err := d.Register(ctx, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, got.User.ID)
			require.Equal(t, tt.req.Email, got.User.Email)

			sub, err := xcontext.TokenEngine(ctx).Verify(got.AccessToken)
			require.NoError(t, err)
			require.Equal(t, got.User.ID, sub)
		})
	}
}

func Test_authDomain_Login(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.LoginRequest
		wantErr error
	}{
		{
			name: "happy case",
			req:  &model.LoginRequest{Email: testutil.User1.Email, Password: testutil.Password},
		},
		{
			name:    "wrong password",
			req:     &model.LoginRequest{Email: testutil.User1.Email, Password: "wrong-password"},
			wantErr: errorx.New(errorx.Unauthenticated, "Invalid email or password"),
		},
		{
			name:    "unknown email",
			req:     &model.LoginRequest{Email: "nobody@example.com", Password: testutil.Password},
			wantErr: errorx.New(errorx.Unauthenticated, "Invalid email or password"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContext()
			testutil.CreateFixture(ctx)
			d := NewAuthDomain(repository.NewUserRepository())

			got, err := d.Login(ctx, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, testutil.User1.ID, got.User.ID)
			require.NotEmpty(t, got.AccessToken)
		})
	}
}
