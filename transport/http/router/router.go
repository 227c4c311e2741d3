package router

import (
	"venuedesk/internal/handlers/account"
	"venuedesk/internal/handlers/booking"
	"venuedesk/internal/handlers/health"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Account account.Handler
	Booking booking.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every handler at the root. Clients call the
// endpoints without a version prefix, so the routes stay unversioned.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Account.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Health.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
