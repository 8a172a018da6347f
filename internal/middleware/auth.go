package middleware

import (
	"context"
	"strings"

	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/router"
	"github.com/devsocial/backend/pkg/xcontext"
)

// Authenticate requires a valid access token and attaches the user id to the
// request context.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := tokenFromRequest(ctx)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		userID, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, userID), nil
	}
}

// OptionalAuthenticate attaches the user id when a valid token is present
// and lets the request through anonymously otherwise.
func OptionalAuthenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := tokenFromRequest(ctx)
		if token == "" {
			return ctx, nil
		}

		userID, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			return ctx, nil
		}

		return xcontext.WithRequestUserID(ctx, userID), nil
	}
}

// tokenFromRequest looks for the access token in the Authorization header,
// the token cookie, then the query string. The query string form exists for
// websocket clients which cannot set headers.
func tokenFromRequest(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)

	if auth := req.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	cookieName := xcontext.Configs(ctx).Auth.AccessToken.Name
	if cookie, err := req.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return req.URL.Query().Get("token")
}
