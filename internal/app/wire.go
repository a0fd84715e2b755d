//go:build wireinject
// +build wireinject

package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/wire"
	"github.com/savioruz/courtside/config"
	"github.com/savioruz/courtside/internal/delivery/http"

	bookingHandler "github.com/savioruz/courtside/internal/domains/bookings/handler"
	bookingRepository "github.com/savioruz/courtside/internal/domains/bookings/repository"
	bookingService "github.com/savioruz/courtside/internal/domains/bookings/service"

	courtHandler "github.com/savioruz/courtside/internal/domains/courts/handler"
	courtService "github.com/savioruz/courtside/internal/domains/courts/service"

	"github.com/savioruz/courtside/pkg/backend"
	"github.com/savioruz/courtside/pkg/httpserver"
	"github.com/savioruz/courtside/pkg/jwt"
	"github.com/savioruz/courtside/pkg/logger"
	"github.com/savioruz/courtside/pkg/mq"
	"github.com/savioruz/courtside/pkg/postgres"
	"github.com/savioruz/courtside/pkg/redis"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	Publisher  mq.Publisher
	JWT        *jwt.JWT
	Courts     courtService.CourtService
	Scheduler  *bookingService.SchedulerService
}

var courtDomain = wire.NewSet(
	courtService.New,
	courtHandler.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingService.NewSchedulerService,
	bookingHandler.New,
	wire.Bind(new(bookingRepository.Querier), new(*bookingRepository.Queries)),
)

var domains = wire.NewSet(
	courtDomain,
	bookingDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideBackend,
		providePublisher,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	jwt.Initialize(cfg.JWT.Issuer, cfg.JWT.Secret)

	return jwt.GetInstance()
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode, cfg.Pg.Timezone)

	return postgres.New(dsn, l, postgres.MaxPoolSize(cfg.Pg.PoolMax), postgres.ConnAttempts(cfg.Pg.ConnAttempts))
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) *redis.Redis {
	return redis.New(fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port), cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideBackend(cfg *config.Config) backend.Client {
	return backend.New(cfg.Backend.BaseURL, backend.Timeout(cfg.Backend.Timeout))
}

func providePublisher(cfg *config.Config) (mq.Publisher, error) {
	return mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
}

func provideHTTPServer(cfg *config.Config, l logger.Interface, h http.Handlers) *httpserver.Server {
	server := httpserver.New(
		httpserver.Name(cfg.App.Name),
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
	)

	http.NewRouter(server.App, cfg, l, h)

	return server
}
