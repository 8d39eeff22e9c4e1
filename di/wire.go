//go:build wireinject
// +build wireinject

package di

import (
	"hostel/config"
	"hostel/infras/jwt"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/infras/redis"
	"hostel/infras/s3"
	allocationService "hostel/internal/domains/allocation/service"
	authService "hostel/internal/domains/auth/service"
	complaintRepository "hostel/internal/domains/complaint/repository"
	complaintService "hostel/internal/domains/complaint/service"
	dashboardRepository "hostel/internal/domains/dashboard/repository"
	dashboardService "hostel/internal/domains/dashboard/service"
	exportRepository "hostel/internal/domains/export/repository"
	exportService "hostel/internal/domains/export/service"
	feeRepository "hostel/internal/domains/fee/repository"
	feeService "hostel/internal/domains/fee/service"
	messMenuRepository "hostel/internal/domains/messmenu/repository"
	messMenuService "hostel/internal/domains/messmenu/service"
	occupancyService "hostel/internal/domains/occupancy/service"
	roomRepository "hostel/internal/domains/room/repository"
	roomService "hostel/internal/domains/room/service"
	roomRequestRepository "hostel/internal/domains/roomrequest/repository"
	roomRequestService "hostel/internal/domains/roomrequest/service"
	studentRepository "hostel/internal/domains/student/repository"
	studentService "hostel/internal/domains/student/service"
	userRepository "hostel/internal/domains/user/repository"
	userService "hostel/internal/domains/user/service"
	allocationHandler "hostel/internal/handlers/allocation"
	authHandler "hostel/internal/handlers/auth"
	complaintHandler "hostel/internal/handlers/complaint"
	dashboardHandler "hostel/internal/handlers/dashboard"
	exportHandler "hostel/internal/handlers/export"
	feeHandler "hostel/internal/handlers/fee"
	messMenuHandler "hostel/internal/handlers/messmenu"
	roomHandler "hostel/internal/handlers/room"
	roomRequestHandler "hostel/internal/handlers/roomrequest"
	studentHandler "hostel/internal/handlers/student"
	userHandler "hostel/internal/handlers/user"
	"hostel/internal/jobs"
	"hostel/permissions"
	"hostel/shared/cache"
	"hostel/transport/http"
	"hostel/transport/http/middleware"
	"hostel/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	studentRepository.New,
	roomRepository.New,
	roomRequestRepository.New,
	complaintRepository.New,
	complaintRepository.NewComment,
	feeRepository.New,
	messMenuRepository.New,
	exportRepository.New,
	dashboardRepository.New,
)

var domains = wire.NewSet(
	repositories,
	occupancyService.New,
	authService.New,
	userService.New,
	studentService.New,
	roomService.New,
	allocationService.New,
	roomRequestService.New,
	complaintService.New,
	feeService.New,
	messMenuService.New,
	exportService.New,
	dashboardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	studentHandler.New,
	roomHandler.New,
	allocationHandler.New,
	roomRequestHandler.New,
	complaintHandler.New,
	feeHandler.New,
	messMenuHandler.New,
	exportHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		jobs.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeAdmin() *Admin {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		userRepository.New,
		roomRepository.New,
		userService.New,
		occupancyService.New,
		wire.Struct(new(Admin), "*"),
	)

	return &Admin{}
}
