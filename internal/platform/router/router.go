// Package router registers HTTP handlers by method and path pattern.
package router

import "net/http"

type Middleware = func(next http.Handler) http.Handler

// Router dispatches requests by method and Go 1.22 path pattern, so handlers
// read path parameters with r.PathValue.
type Router interface {
	http.Handler
	Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Use(middleware Middleware)
	// Group registers the routes added by fn under prefix with extra middlewares.
	Group(prefix string, fn func(r Router), middlewares ...Middleware)
}
