//go:build wireinject
// +build wireinject

package di

import (
	"venuedesk/config"
	"venuedesk/infras/kafka"
	"venuedesk/infras/otel"
	"venuedesk/infras/postgres"
	"venuedesk/infras/redis"
	"venuedesk/shared/cache"
	"venuedesk/transport/http"
	"venuedesk/transport/http/middleware"
	"venuedesk/transport/http/router"

	accountService "venuedesk/internal/domains/account/service"
	bookingRepository "venuedesk/internal/domains/booking/repository"
	bookingService "venuedesk/internal/domains/booking/service"
	userRepository "venuedesk/internal/domains/user/repository"
	accountHandler "venuedesk/internal/handlers/account"
	bookingHandler "venuedesk/internal/handlers/booking"
	healthHandler "venuedesk/internal/handlers/health"

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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accountDomain = wire.NewSet(
	userRepository.New,
	accountService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	accountDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	accountHandler.New,
	bookingHandler.New,
	healthHandler.New,
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
