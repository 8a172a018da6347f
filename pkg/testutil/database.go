package testutil

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/devsocial/backend/config"
	"github.com/devsocial/backend/migration"
	"github.com/devsocial/backend/pkg/authenticator"
	"github.com/devsocial/backend/pkg/logger"
	"github.com/devsocial/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext returns a context backed by an in-memory database with the
// full schema migrated. Every call gets a fresh database.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		ApiServer: config.APIServerConfigs{
			MaxLimit:     50,
			DefaultLimit: 20,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: config.Duration{Duration: time.Minute},
			},
		},
	}

	node, err := snowflake.NewNode(0)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithSnowFlake(ctx, node)
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.Migrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
