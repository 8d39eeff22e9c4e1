package router

import (
	"hostel/internal/handlers/allocation"
	"hostel/internal/handlers/auth"
	"hostel/internal/handlers/complaint"
	"hostel/internal/handlers/dashboard"
	"hostel/internal/handlers/export"
	"hostel/internal/handlers/fee"
	"hostel/internal/handlers/messmenu"
	"hostel/internal/handlers/room"
	"hostel/internal/handlers/roomrequest"
	"hostel/internal/handlers/student"
	"hostel/internal/handlers/user"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Student     student.Handler
	Room        room.Handler
	Allocation  allocation.Handler
	RoomRequest roomrequest.Handler
	Complaint   complaint.Handler
	Fee         fee.Handler
	MessMenu    messmenu.Handler
	Export      export.Handler
	Dashboard   dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain under /v1. Middlewares passed in run
// inside the /v1 group so they can resolve the matched route pattern.
func (r *Router) SetupRoutes(router chi.Router, middlewares ...func(http.Handler) http.Handler) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(middlewares...)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Student.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Allocation.Router(routerGroup)
		r.DomainHandlers.RoomRequest.Router(routerGroup)
		r.DomainHandlers.Complaint.Router(routerGroup)
		r.DomainHandlers.Fee.Router(routerGroup)
		r.DomainHandlers.MessMenu.Router(routerGroup)
		r.DomainHandlers.Export.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
