package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devsocial/backend/pkg/errorx"
	"github.com/devsocial/backend/pkg/xcontext"
)

type errorKey struct{}

func withError(ctx context.Context, err error) context.Context {
	if err == nil {
		return ctx
	}

	return context.WithValue(ctx, errorKey{}, err)
}

// Error returns the error the handler finished with, if any. It is only
// meaningful inside closers.
func Error(ctx context.Context) error {
	if err, ok := ctx.Value(errorKey{}).(error); ok {
		return err
	}

	return nil
}

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func writeResponse(ctx context.Context, w http.ResponseWriter, data any, err error) {
	resp := newResponse(data)
	if err != nil {
		resp = newErrorResponse(err)
	}

	if err := WriteJson(w, resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}

func WriteJson(w http.ResponseWriter, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
