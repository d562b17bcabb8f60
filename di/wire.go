//go:build wireinject
// +build wireinject

package di

import (
	"safar/config"
	"safar/infras/jwt"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/infras/redis"
	"safar/shared/cache"
	"safar/transport/http"
	"safar/transport/http/middleware"
	"safar/transport/http/router"

	"github.com/google/wire"

	assignmentRepository "safar/internal/domains/assignment/repository"
	assignmentService "safar/internal/domains/assignment/service"
	authService "safar/internal/domains/auth/service"
	flightRepository "safar/internal/domains/flight/repository"
	flightService "safar/internal/domains/flight/service"
	groupRepository "safar/internal/domains/group/repository"
	groupService "safar/internal/domains/group/service"
	handlingRepository "safar/internal/domains/handling/repository"
	handlingService "safar/internal/domains/handling/service"
	hotelRepository "safar/internal/domains/hotel/repository"
	hotelService "safar/internal/domains/hotel/service"
	rawdahRepository "safar/internal/domains/rawdah/repository"
	rawdahService "safar/internal/domains/rawdah/service"
	segmentRepository "safar/internal/domains/segment/repository"
	segmentService "safar/internal/domains/segment/service"
	staffRepository "safar/internal/domains/staff/repository"
	staffService "safar/internal/domains/staff/service"
	trainRepository "safar/internal/domains/train/repository"
	trainService "safar/internal/domains/train/service"
	transportRepository "safar/internal/domains/transport/repository"
	transportService "safar/internal/domains/transport/service"
	userRepository "safar/internal/domains/user/repository"

	assignmentHandler "safar/internal/handlers/assignment"
	authHandler "safar/internal/handlers/auth"
	flightHandler "safar/internal/handlers/flight"
	groupHandler "safar/internal/handlers/group"
	handlingHandler "safar/internal/handlers/handling"
	hotelHandler "safar/internal/handlers/hotel"
	rawdahHandler "safar/internal/handlers/rawdah"
	segmentHandler "safar/internal/handlers/segment"
	staffHandler "safar/internal/handlers/staff"
	trainHandler "safar/internal/handlers/train"
	transportHandler "safar/internal/handlers/transport"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var groupDomain = wire.NewSet(
	groupRepository.New,
	groupService.New,
)

var segmentDomain = wire.NewSet(
	segmentRepository.New,
	segmentService.New,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var handlingDomain = wire.NewSet(
	handlingRepository.New,
	handlingService.New,
)

var transportDomain = wire.NewSet(
	transportRepository.New,
	transportService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var trainDomain = wire.NewSet(
	trainRepository.New,
	trainService.New,
)

var rawdahDomain = wire.NewSet(
	rawdahRepository.New,
	rawdahService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.NewTourLeader,
	staffRepository.NewMuthawif,
	staffService.NewTourLeader,
	staffService.NewMuthawif,
)

var assignmentDomain = wire.NewSet(
	assignmentRepository.New,
	assignmentService.New,
)

var domains = wire.NewSet(
	authDomain,
	groupDomain,
	segmentDomain,
	flightDomain,
	handlingDomain,
	transportDomain,
	hotelDomain,
	trainDomain,
	rawdahDomain,
	staffDomain,
	assignmentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	groupHandler.New,
	segmentHandler.New,
	flightHandler.New,
	handlingHandler.New,
	transportHandler.New,
	hotelHandler.New,
	trainHandler.New,
	rawdahHandler.New,
	staffHandler.New,
	assignmentHandler.New,
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
