package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/composite/internal/server"
	"github.com/matzehuels/composite/pkg/cache"
	apperrors "github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	config string // TOML config file path
	addr   string // listen address override
}

// newServeCmd creates the serve command for running the HTTP API.
// Backends are chosen by the config file: MongoDB or in-memory for
// storage, Redis or a file cache for computed results.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the composite HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}

	st, err := buildStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	c, err := buildCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := server.New(server.Options{
		Store:  st,
		Cache:  c,
		Logger: logger,
		TTL:    cfg.Server.CacheTTL.Duration,
	})

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", cfg.Server.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// buildStore selects the persistence backend from the config.
func buildStore(ctx context.Context, cfg StoreConfig) (store.Store, error) {
	if cfg.MongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, cfg.MongoURI, cfg.Database)
}

// buildCache selects the cache backend from the config. Redis connects
// with retries since the cache is often started alongside the server.
func buildCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch {
	case cfg.RedisAddr != "":
		var c cache.Cache
		err := cache.RetryWithBackoff(ctx, func() error {
			var connErr error
			c, connErr = cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
			return cache.Retryable(connErr)
		})
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeCache, err, "connect redis cache %s", cfg.RedisAddr)
		}
		return c, nil
	case cfg.Dir != "":
		c, err := cache.NewFileCache(cfg.Dir)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeCache, err, "open file cache %s", cfg.Dir)
		}
		return c, nil
	default:
		return cache.NewNullCache(), nil
	}
}
