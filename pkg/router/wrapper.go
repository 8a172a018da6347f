package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/ws"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func wrapHandler[Request, Response any](
	router *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := xcontext.WithHTTPRequest(router.ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		var handlerErr error
		var resp *Response
		defer func() {
			writeResponse(ctx, w, resp, handlerErr)
			for _, closer := range router.closers {
				closer(withError(ctx, handlerErr))
			}
		}()

		ctx, handlerErr = runMiddlewares(ctx, router.befores)
		if handlerErr != nil {
			return
		}

		var req Request
		if handlerErr = bindRequest(r, method, &req); handlerErr != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", handlerErr)
			handlerErr = errorx.New(errorx.BadRequest, "Invalid request")
			return
		}

		resp, handlerErr = handler(ctx, &req)
		if handlerErr != nil {
			return
		}

		ctx, handlerErr = runMiddlewares(ctx, router.afters)
	}
}

func wrapWebsocket[Request any](
	router *Router, handler WebsocketHandlerFunc[Request],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		ctx, err := runMiddlewares(ctx, router.befores)
		if err != nil {
			// No upgrade for an unauthenticated caller, no state retained.
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		var req Request
		if err := bindRequest(r, http.MethodGet, &req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot upgrade the connection: %v", err)
			return
		}

		client := ws.NewClient(conn)
		defer client.Close()

		ctx = xcontext.WithWSClient(ctx, client)
		if err := handler(ctx, &req); err != nil {
			xcontext.Logger(ctx).Debugf("Websocket handler finished: %v", err)
		}

		for _, closer := range router.closers {
			closer(withError(ctx, err))
		}
	}
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, m := range middlewares {
		newCtx, err := m(ctx)
		if err != nil {
			return ctx, err
		}

		ctx = newCtx
	}

	return ctx, nil
}

// bindRequest fills the request object from the URL query for GET requests
// and from the JSON body otherwise.
func bindRequest(r *http.Request, method string, req any) error {
	if method != http.MethodGet {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, req)
	}

	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Tag.Get("json")
		if comma := strings.IndexByte(name, ','); comma >= 0 {
			name = name[:comma]
		}

		queryVal := r.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(queryVal)

		case reflect.Int, reflect.Int32, reflect.Int64:
			val, err := strconv.ParseInt(queryVal, 10, 64)
			if err != nil {
				return err
			}
			v.Field(i).SetInt(val)

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return err
			}
			v.Field(i).SetBool(val)
		}
	}

	return nil
}
