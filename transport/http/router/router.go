package router

import (
	"venuebook/internal/handlers/booking"
	"venuebook/internal/handlers/venue"

	"github.com/go-chi/chi/v5"
)

const apiPrefix = "/api"

type DomainHandlers struct {
	Venue   venue.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes serves every domain route both at the root and under /api.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(r.mount)
	router.Route(apiPrefix, r.mount)
}

func (r *Router) mount(routerGroup chi.Router) {
	r.DomainHandlers.Venue.Router(routerGroup)
	r.DomainHandlers.Booking.Router(routerGroup)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
