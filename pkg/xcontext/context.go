package xcontext

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/devsocial/backend/config"
	"github.com/devsocial/backend/pkg/authenticator"
	"github.com/devsocial/backend/pkg/logger"
	"github.com/devsocial/backend/pkg/ws"
	"gorm.io/gorm"
)

type (
	configsKey     struct{}
	loggerKey      struct{}
	dbKey          struct{}
	dbTxKey        struct{}
	userIDKey      struct{}
	tokenEngineKey struct{}
	snowflakeKey   struct{}
	wsClientKey    struct{}
	httpRequestKey struct{}
	httpWriterKey  struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	return ctx.Value(loggerKey{}).(logger.Logger)
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the current database handle. If a transaction was begun with
// WithDBTransaction and not yet finished, the transaction is returned
// instead of the root handle.
func DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(dbTxKey{}).(*dbTx); ok && !tx.done {
		return tx.tx
	}

	return ctx.Value(dbKey{}).(*gorm.DB)
}

type dbTx struct {
	tx   *gorm.DB
	done bool
}

func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTxKey{}, &dbTx{tx: DB(ctx).Begin()})
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	if tx, ok := ctx.Value(dbTxKey{}).(*dbTx); ok && !tx.done {
		tx.tx.Commit()
		tx.done = true
	}

	return ctx
}

// WithRollbackDBTransaction rollbacks the current transaction. It is a no-op
// after WithCommitDBTransaction, so it is safe to defer right after the
// transaction begins.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	if tx, ok := ctx.Value(dbTxKey{}).(*dbTx); ok && !tx.done {
		tx.tx.Rollback()
		tx.done = true
	}

	return ctx
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}

	return ""
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	return ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine)
}

func WithSnowFlake(ctx context.Context, node *snowflake.Node) context.Context {
	return context.WithValue(ctx, snowflakeKey{}, node)
}

func SnowFlake(ctx context.Context) *snowflake.Node {
	return ctx.Value(snowflakeKey{}).(*snowflake.Node)
}

func WithWSClient(ctx context.Context, client *ws.Client) context.Context {
	return context.WithValue(ctx, wsClientKey{}, client)
}

func WSClient(ctx context.Context) *ws.Client {
	return ctx.Value(wsClientKey{}).(*ws.Client)
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	return ctx.Value(httpRequestKey{}).(*http.Request)
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	return ctx.Value(httpWriterKey{}).(http.ResponseWriter)
}
