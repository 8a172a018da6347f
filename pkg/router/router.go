package router

import (
	"context"
	"net/http"

	"github.com/devsocial/backend/config"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// WebsocketHandlerFunc serves a single live connection. It blocks until the
// connection is finished; the returned error is logged, not written to the
// client.
type WebsocketHandlerFunc[Request any] func(ctx context.Context, req *Request) error

// MiddlewareFunc runs before the handler. It can derive a new context (for
// example to attach the authenticated user); returning an error stops the
// request with that error as the response.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, regardless of the result.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux
	ctx context.Context

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router whose endpoints derive their request contexts from
// ctx. Everything the handlers need (db, logger, configs, token engine) must
// already be attached to ctx.
func New(ctx context.Context) *Router {
	return &Router{
		mux: http.NewServeMux(),
		ctx: ctx,
	}
}

// Branch returns a router sharing the same mux and base context but with an
// independent middleware chain, copied from the current one.
func (r *Router) Branch() *Router {
	branch := &Router{
		mux: r.mux,
		ctx: r.ctx,
	}

	branch.befores = append(branch.befores, r.befores...)
	branch.afters = append(branch.afters, r.afters...)
	branch.closers = append(branch.closers, r.closers...)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func Websocket[Request any](r *Router, pattern string, handler WebsocketHandlerFunc[Request]) {
	r.mux.HandleFunc(pattern, wrapWebsocket(r, handler))
}

func (r *Router) Handler(cfg config.ServerConfigs) http.Handler {
	return r.mux
}
