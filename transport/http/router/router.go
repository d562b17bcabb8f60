package router

import (
	"safar/internal/handlers/assignment"
	"safar/internal/handlers/auth"
	"safar/internal/handlers/flight"
	"safar/internal/handlers/group"
	"safar/internal/handlers/handling"
	"safar/internal/handlers/hotel"
	"safar/internal/handlers/rawdah"
	"safar/internal/handlers/segment"
	"safar/internal/handlers/staff"
	"safar/internal/handlers/train"
	"safar/internal/handlers/transport"
	"safar/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Group      group.Handler
	Segment    segment.Handler
	Flight     flight.Handler
	Handling   handling.Handler
	Transport  transport.Handler
	Hotel      hotel.Handler
	Train      train.Handler
	Rawdah     rawdah.Handler
	Staff      staff.Handler
	Assignment assignment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the public auth routes and puts the whole operational
// surface behind the credential-check middleware.
func (r *Router) SetupRoutes(router chi.Router, auth middleware.Auth) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(auth.Auth)

			r.DomainHandlers.Auth.ProtectedRouter(protected)

			protected.Route("/groups", func(groups chi.Router) {
				r.DomainHandlers.Group.Router(groups)
				r.DomainHandlers.Segment.GroupRouter(groups)
				r.DomainHandlers.Transport.GroupRouter(groups)
				r.DomainHandlers.Hotel.GroupRouter(groups)
				r.DomainHandlers.Train.GroupRouter(groups)
				r.DomainHandlers.Rawdah.GroupRouter(groups)
				r.DomainHandlers.Assignment.GroupRouter(groups)
			})

			r.DomainHandlers.Segment.Router(protected)
			r.DomainHandlers.Flight.Router(protected)
			r.DomainHandlers.Handling.Router(protected)
			r.DomainHandlers.Transport.Router(protected)
			r.DomainHandlers.Hotel.Router(protected)
			r.DomainHandlers.Train.Router(protected)
			r.DomainHandlers.Staff.Router(protected)
			r.DomainHandlers.Assignment.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
