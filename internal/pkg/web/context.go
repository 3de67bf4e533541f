package web

import (
	"context"
	"fmt"
)

type paramsKey struct{}

// NewContextWithParams stores a decoded request payload in ctx.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithParams(ctx context.Context, params any) context.Context {
	return context.WithValue(ctx, paramsKey{}, params)
}

// ParamsFromContext returns the payload stored by NewContextWithParams.
//
// nolint: ireturn //This is a generic function.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	val := ctx.Value(paramsKey{})
	params, ok := val.(T)
	if !ok {
		var t T
		return t, fmt.Errorf("params: %v is not a %T", val, t)
	}
	return params, nil
}
