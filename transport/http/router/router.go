package router

import (
	"countdown/internal/handlers/countdown"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Countdown countdown.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/", r.DomainHandlers.Countdown.Page)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Countdown.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
