// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"safar/config"
	"safar/infras/jwt"
	"safar/infras/otel"
	"safar/infras/postgres"
	"safar/infras/redis"
	repository11 "safar/internal/domains/assignment/repository"
	service11 "safar/internal/domains/assignment/service"
	"safar/internal/domains/auth/service"
	repository5 "safar/internal/domains/flight/repository"
	service4 "safar/internal/domains/flight/service"
	repository2 "safar/internal/domains/group/repository"
	service2 "safar/internal/domains/group/service"
	repository6 "safar/internal/domains/handling/repository"
	service5 "safar/internal/domains/handling/service"
	repository7 "safar/internal/domains/hotel/repository"
	service7 "safar/internal/domains/hotel/service"
	repository9 "safar/internal/domains/rawdah/repository"
	service9 "safar/internal/domains/rawdah/service"
	repository3 "safar/internal/domains/segment/repository"
	service3 "safar/internal/domains/segment/service"
	repository10 "safar/internal/domains/staff/repository"
	service10 "safar/internal/domains/staff/service"
	repository8 "safar/internal/domains/train/repository"
	service8 "safar/internal/domains/train/service"
	repository4 "safar/internal/domains/transport/repository"
	service6 "safar/internal/domains/transport/service"
	"safar/internal/domains/user/repository"
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
	"safar/shared/cache"
	"safar/transport/http"
	"safar/transport/http/middleware"
	"safar/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	user := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(user, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	repositoryGroup := repository2.New(connection, otelOtel)
	repositorySegment := repository3.New(connection, otelOtel)
	repositoryTransport := repository4.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceGroup := service2.New(repositoryGroup, repositorySegment, repositoryTransport, configConfig, redisCache, otelOtel)
	groupHandler := group.New(serviceGroup, otelOtel)
	serviceSegment := service3.New(repositorySegment, repositoryGroup, configConfig, redisCache, otelOtel)
	segmentHandler := segment.New(serviceSegment, otelOtel)
	flightMaster := repository5.New(connection, otelOtel)
	serviceFlight := service4.New(flightMaster, configConfig, redisCache, otelOtel)
	flightHandler := flight.New(serviceFlight, otelOtel)
	handlingCompany := repository6.New(connection, otelOtel)
	serviceHandling := service5.New(handlingCompany, configConfig, redisCache, otelOtel)
	handlingHandler := handling.New(serviceHandling, otelOtel)
	serviceTransport := service6.New(repositoryTransport, repositoryGroup, configConfig, redisCache, otelOtel)
	transportHandler := transport.New(serviceTransport, otelOtel)
	repositoryHotel := repository7.New(connection, otelOtel)
	serviceHotel := service7.New(repositoryHotel, repositoryGroup, configConfig, redisCache, otelOtel)
	hotelHandler := hotel.New(serviceHotel, otelOtel)
	repositoryTrain := repository8.New(connection, otelOtel)
	serviceTrain := service8.New(repositoryTrain, repositoryGroup, configConfig, redisCache, otelOtel)
	trainHandler := train.New(serviceTrain, otelOtel)
	repositoryRawdah := repository9.New(connection, otelOtel)
	serviceRawdah := service9.New(repositoryRawdah, repositoryGroup, configConfig, redisCache, otelOtel)
	rawdahHandler := rawdah.New(serviceRawdah, otelOtel)
	tourLeader := repository10.NewTourLeader(connection, otelOtel)
	serviceTourLeader := service10.NewTourLeader(tourLeader, configConfig, redisCache, otelOtel)
	muthawif := repository10.NewMuthawif(connection, otelOtel)
	serviceMuthawif := service10.NewMuthawif(muthawif, configConfig, redisCache, otelOtel)
	staffHandler := staff.New(serviceTourLeader, serviceMuthawif, otelOtel)
	repositoryAssignment := repository11.New(connection, otelOtel)
	serviceAssignment := service11.New(repositoryAssignment, repositoryGroup, tourLeader, muthawif, configConfig, redisCache, otelOtel)
	assignmentHandler := assignment.New(serviceAssignment, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:       handler,
		Group:      groupHandler,
		Segment:    segmentHandler,
		Flight:     flightHandler,
		Handling:   handlingHandler,
		Transport:  transportHandler,
		Hotel:      hotelHandler,
		Train:      trainHandler,
		Rawdah:     rawdahHandler,
		Staff:      staffHandler,
		Assignment: assignmentHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	middlewareAuth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, middlewareAuth)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var authDomain = wire.NewSet(repository.New, service.New)

var groupDomain = wire.NewSet(repository2.New, service2.New)

var segmentDomain = wire.NewSet(repository3.New, service3.New)

var flightDomain = wire.NewSet(repository5.New, service4.New)

var handlingDomain = wire.NewSet(repository6.New, service5.New)

var transportDomain = wire.NewSet(repository4.New, service6.New)

var hotelDomain = wire.NewSet(repository7.New, service7.New)

var trainDomain = wire.NewSet(repository8.New, service8.New)

var rawdahDomain = wire.NewSet(repository9.New, service9.New)

var staffDomain = wire.NewSet(repository10.NewTourLeader, repository10.NewMuthawif, service10.NewTourLeader, service10.NewMuthawif)

var assignmentDomain = wire.NewSet(repository11.New, service11.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, group.New, segment.New, flight.New, handling.New, transport.New, hotel.New, train.New, rawdah.New, staff.New, assignment.New, router.New)
