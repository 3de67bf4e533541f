package router

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

type goexpressRouter struct {
	handler *goexpress.Router
}

var _ Router = (*goexpressRouter)(nil)

//nolint:ireturn // Callers depend on the Router interface.
func NewGoexpressRouter() Router {
	return &goexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Get(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Post(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Put(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Delete(pattern, handler, middlewares...)
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *goexpressRouter) Use(middleware Middleware) {
	r.handler.Use(middleware)
}

// Group shares the parent's mux. Parent middlewares registered so far are
// applied to the group's routes before the group's own.
func (r *goexpressRouter) Group(prefix string, fn func(r Router), middlewares ...Middleware) {
	gr := &goexpressRouter{
		handler: goexpress.New(),
	}
	gr.handler.SetPrefix(prefix)
	gr.handler.SetMux(r.handler.Mux())

	inherited := append([]Middleware{}, r.handler.Middlewares()...)
	gr.handler.SetMiddlewares(append(inherited, middlewares...))

	fn(gr)
}
