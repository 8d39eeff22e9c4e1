//go:generate go run -mod=mod github.com/google/wire/cmd/wire

package di

import (
	"hostel/infras/otel"
	occupancy "hostel/internal/domains/occupancy/service"
	userService "hostel/internal/domains/user/service"
	"hostel/internal/jobs"
	"hostel/transport/http"
)

// App is everything the server binary runs.
type App struct {
	HTTP      *http.HTTP
	Scheduler *jobs.Scheduler
	Otel      otel.Otel
}

// Admin carries the services used by operator commands.
type Admin struct {
	Users   userService.User
	Tracker occupancy.Tracker
}
