package domain

import (
	"context"

	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
)

// checkPagination clamps the page window to the server limits. A zero limit
// falls back to the configured default.
func checkPagination(ctx context.Context, offset, limit int) (int, int, error) {
	cfg := xcontext.Configs(ctx).ApiServer

	if limit == 0 {
		limit = cfg.DefaultLimit
	}

	if offset < 0 || limit < 0 {
		return 0, 0, errorx.New(errorx.BadRequest, "Not allow negative offset or limit")
	}

	if limit > cfg.MaxLimit {
		return 0, 0, errorx.New(errorx.BadRequest, "Exceeded the maximum of limit (%d)", cfg.MaxLimit)
	}

	return offset, limit, nil
}
