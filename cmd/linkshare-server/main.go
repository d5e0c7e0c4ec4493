package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/config"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/database"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/events"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/linkpreview"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/logging"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/server"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/store"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// @title LinkShare API
// @version 1.0
// @description Directory of WhatsApp group invite links, organised by category and country.

// @contact.name LinkShare
// @contact.url https://github.com/syedhamzaalinaqvi/linkshare

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	app := &cli.App{
		Name:   "linkshare-server",
		Usage:  "serve the WhatsApp group directory API",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	groupStore, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	resolverOpts := []linkpreview.ResolverOption{
		linkpreview.WithTimeout(cfg.PreviewTimeout),
		linkpreview.WithLogger(logger.Named("linkpreview")),
	}
	if cfg.RedisAddr != "" {
		client, err := linkpreview.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			// previews still work uncached
			logger.Warn("redis unavailable, link preview cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			defer client.Close()
			resolverOpts = append(resolverOpts, linkpreview.WithCache(linkpreview.NewRedisCache(client, cfg.PreviewCacheTTL, logger)))
			logger.Info("link preview cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.PreviewCacheTTL))
		}
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(events.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		if err != nil {
			return err
		}
		publisher = kp
		logger.Info("publishing group events", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("close publisher", zap.Error(err))
		}
	}()

	router := server.New(server.Deps{
		Store:     groupStore,
		Publisher: publisher,
		Resolver:  linkpreview.NewResolver(resolverOpts...),
		Logger:    logger,
		WebDist:   cfg.WebDist,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting LinkShare server", zap.String("addr", srv.Addr), zap.String("store", cfg.Store))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore returns the configured group store and a function releasing it
func openStore(cfg config.Config, logger *zap.Logger) (store.Store, func(), error) {
	opts := []store.Option{store.WithDemoData(cfg.DemoData)}

	switch cfg.Store {
	case config.StoreSQLite:
		db, err := database.Connect(cfg.DBPath, logger)
		if err != nil {
			return nil, nil, err
		}
		s, err := store.NewSQLStore(db, opts...)
		if err != nil {
			database.Close(db)
			return nil, nil, err
		}
		logger.Info("using sqlite store", zap.String("path", cfg.DBPath))
		return s, func() {
			if err := database.Close(db); err != nil {
				logger.Warn("close database", zap.Error(err))
			}
		}, nil
	default:
		logger.Info("using in-memory store; submissions are lost on restart")
		return store.NewMemoryStore(opts...), func() {}, nil
	}
}
