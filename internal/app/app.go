package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/railtickets/internal/config"
	"github.com/GlebRadaev/railtickets/internal/expiry"
	"github.com/GlebRadaev/railtickets/internal/handlers"
	"github.com/GlebRadaev/railtickets/internal/pg"
	"github.com/GlebRadaev/railtickets/internal/repo"
	"github.com/GlebRadaev/railtickets/internal/routecache"
	"github.com/GlebRadaev/railtickets/internal/seed"
	"github.com/GlebRadaev/railtickets/internal/service"
	"github.com/GlebRadaev/railtickets/internal/service/routeservice"
	"github.com/GlebRadaev/railtickets/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	sweeper *expiry.Sweeper
	closers []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	provider, err := a.openStorage(ctx)
	if err != nil {
		return err
	}
	if cfg.SeedFile != "" {
		if err := loadSeed(ctx, cfg.SeedFile, provider); err != nil {
			zap.L().Error("seeding failed: ", zap.Error(err))
			return fmt.Errorf("can't load reference data: %w", err)
		}
	}

	cache, err := a.openCache(ctx)
	if err != nil {
		return err
	}

	a.repo = repo.New(provider)
	a.srv = service.New(a.repo, cfg, cache)
	a.api = handlers.New(a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if cfg.BookingTTL > 0 {
		a.sweeper = expiry.New(cfg, a.repo.ExpiryRepo, a.srv.ExpiryService)
		a.sweeper.Start(ctx)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", cfg.Storage))
	return nil
}

// openStorage connects the backend named in the config. Only a missing
// database connection is fatal here; csv directories are created on demand.
func (a *Application) openStorage(ctx context.Context) (repo.Provider, error) {
	if a.cfg.Storage != config.StoragePostgres {
		return repo.Open(a.cfg, nil)
	}

	pool, err := pg.NewPool(ctx, a.cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	conn := pg.New(pool)
	a.closers = append(a.closers, conn.Close)
	return repo.Open(a.cfg, conn)
}

// openCache returns nil when no redis address is configured so that the
// route service skips caching entirely.
func (a *Application) openCache(ctx context.Context) (routeservice.Cache, error) {
	if a.cfg.RedisAddr == "" {
		return nil, nil
	}
	client, err := routecache.NewClient(ctx, a.cfg.RedisAddr)
	if err != nil {
		zap.L().Error("redis unavailable: ", zap.Error(err))
		return nil, fmt.Errorf("can't connect route cache: %w", err)
	}
	a.closers = append(a.closers, func() { closeRedis(client) })
	return routecache.New(client, a.cfg.CacheTTL), nil
}

func closeRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		zap.L().Error("failed to close redis client", zap.Error(err))
	}
}

func loadSeed(ctx context.Context, path string, provider seed.Repo) error {
	data, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	_, err = seed.Apply(ctx, provider, data)
	return err
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}

	return appErr
}
