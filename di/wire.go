//go:build wireinject
// +build wireinject

package di

import (
	"venuebook/config"
	"venuebook/infras/kafka"
	"venuebook/infras/otel"
	"venuebook/infras/postgres"
	"venuebook/infras/redis"
	"venuebook/infras/s3"
	"venuebook/internal/event"
	"venuebook/shared/cache"
	gRepo "venuebook/shared/repository"
	"venuebook/transport/http"
	"venuebook/transport/http/middleware"
	"venuebook/transport/http/router"

	venueRepository "venuebook/internal/domains/venue/repository"
	venueService "venuebook/internal/domains/venue/service"
	venueHandler "venuebook/internal/handlers/venue"

	bookingRepository "venuebook/internal/domains/booking/repository"
	bookingService "venuebook/internal/domains/booking/service"
	bookingHandler "venuebook/internal/handlers/booking"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepo.NewTransactor,
	event.New,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	venueDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	venueHandler.New,
	bookingHandler.New,
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
