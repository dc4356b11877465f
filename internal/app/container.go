package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"moving-estimate-service/internal/config"
	"moving-estimate-service/internal/gateway/geo"
	"moving-estimate-service/internal/http/handlers"
	"moving-estimate-service/internal/http/router"
	"moving-estimate-service/internal/logx"
	"moving-estimate-service/internal/metrics"
	"moving-estimate-service/internal/repository"
	"moving-estimate-service/internal/service/estimate"
	"moving-estimate-service/internal/service/orders"
	"moving-estimate-service/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewRateRepo,
		repository.NewOrderRepo,
		func() time.Duration { return 3 * time.Second },
		func(cfg *config.Config) *geo.Client {
			return geo.NewClient(cfg.Geo.BaseURL, cfg.Geo.AppID, cfg.Geo.Timeout)
		},
		func(cfg *config.Config, logger logx.Logger) (*kafka.Producer, error) {
			return kafka.NewProducer(logger, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		},
		func(
			rates *repository.RateRepo,
			client *geo.Client,
			cfg *config.Config,
			timeout time.Duration,
			logger logx.Logger,
		) *estimate.Service {
			if client == nil {
				return estimate.NewService(rates, nil, false, cfg.Pricing.PricePerKm, timeout, logger, metrics.GeoFallbackTotal())
			}
			return estimate.NewService(rates, client, cfg.Geo.Enabled, cfg.Pricing.PricePerKm, timeout, logger, metrics.GeoFallbackTotal())
		},
		func(
			repo *repository.OrderRepo,
			producer *kafka.Producer,
			timeout time.Duration,
			logger logx.Logger,
		) *orders.Service {
			if producer == nil {
				return orders.NewService(repo, nil, timeout, logger, metrics.OrdersRegisteredTotal())
			}
			return orders.NewService(repo, producer, timeout, logger, metrics.OrdersRegisteredTotal())
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewEstimateUsecase,
		handlers.NewEstimateHandler,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		router.New,
		serverProvider,
	)
}
