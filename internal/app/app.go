package app

import (
	"context"
	"fmt"
	"log/slog"

	post_service "blog-admin-service/internal/application/service/post"
	input "blog-admin-service/internal/domain/ports/input/post"
	ports "blog-admin-service/internal/domain/ports/output"
	"blog-admin-service/internal/domain/ports/output/cache"
	image_repository "blog-admin-service/internal/domain/ports/output/image"
	post_repository "blog-admin-service/internal/domain/ports/output/post"
	tag_repository "blog-admin-service/internal/domain/ports/output/tag"
	"blog-admin-service/internal/infrastructure/config"
	"blog-admin-service/internal/infrastructure/inbound/ops"
	lru_cache "blog-admin-service/internal/infrastructure/outbound/cache/lru"
	redis_cache "blog-admin-service/internal/infrastructure/outbound/cache/redis"
	image_postgres "blog-admin-service/internal/infrastructure/outbound/repository/image/postgres"
	"blog-admin-service/internal/infrastructure/outbound/repository/memory"
	post_postgres "blog-admin-service/internal/infrastructure/outbound/repository/post/postgres"
	"blog-admin-service/internal/infrastructure/outbound/repository/postgres"
	tag_postgres "blog-admin-service/internal/infrastructure/outbound/repository/tag/postgres"
)

// App holds the wired post service and the resources it owns.
type App struct {
	Posts input.Service
	Ops   *ops.Server

	closers []func()
}

type gateways struct {
	posts  post_repository.Repository
	tags   tag_repository.Repository
	images image_repository.Repository
	uow    ports.UnitOfWork
}

func New(ctx context.Context, cfg *config.Config, log ports.Logger, metrics ports.MetricsProvider) (*App, error) {
	a := &App{}
	checks := make(map[string]ops.HealthCheck)

	gw, err := a.storage(ctx, cfg, log, metrics, checks)
	if err != nil {
		a.Close()
		return nil, err
	}

	var svc input.Service = post_service.NewPostService(gw.posts, gw.tags, gw.images, gw.uow, log, metrics,
		post_service.Options{
			AtomicWrites:    cfg.Posts.AtomicWrites,
			DefaultPageSize: cfg.Posts.DefaultPageSize,
			MaxPageSize:     cfg.Posts.MaxPageSize,
		})

	postCache, err := a.cache(cfg, log, checks)
	if err != nil {
		a.Close()
		return nil, err
	}
	if postCache != nil {
		svc = post_service.NewPostServiceCacheDecorator(svc, postCache, log, metrics)
	}

	a.Posts = svc
	a.Ops = ops.NewServer(cfg.OpsServer.Address, cfg.OpsServer.Port, log, metrics, checks)
	return a, nil
}

func (a *App) storage(ctx context.Context, cfg *config.Config, log ports.Logger, metrics ports.MetricsProvider, checks map[string]ops.HealthCheck) (gateways, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore(log)
		return gateways{
			posts:  store.PostRepository(),
			tags:   store.TagRepository(),
			images: store.ImageRepository(),
			uow:    store.UnitOfWork(),
		}, nil
	}

	dsn := cfg.Database.DSN()
	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(dsn, log); err != nil {
			return gateways{}, fmt.Errorf("migrate database: %w", err)
		}
	}

	pool, err := postgres.Connect(ctx, dsn, log)
	if err != nil {
		return gateways{}, err
	}
	a.closers = append(a.closers, pool.Close)
	checks["postgres"] = pool.Ping

	return gateways{
		posts:  post_postgres.NewPostRepository(pool, log, metrics),
		tags:   tag_postgres.NewTagRepository(pool, log, metrics),
		images: image_postgres.NewImageRepository(pool, log, metrics),
		uow:    postgres.NewPostgresUOW(pool, log, metrics),
	}, nil
}

func (a *App) cache(cfg *config.Config, log ports.Logger, checks map[string]ops.HealthCheck) (cache.PostCache, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverNone:
		return nil, nil
	case config.CacheDriverLRU:
		return lru_cache.NewPostCache(cfg.Cache.Size, cfg.Cache.TTL), nil
	default:
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		client, err := redis_cache.NewClient(cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := client.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		})
		checks["redis"] = client.Ping
		return redis_cache.NewPostCache(client, log, cfg.Cache.TTL), nil
	}
}

// Close releases resources in reverse acquisition order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
