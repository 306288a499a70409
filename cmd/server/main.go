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

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/easyshop/backend/internal/config"
	"github.com/easyshop/backend/internal/httpserver"
	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/mykafka"
	"github.com/easyshop/backend/internal/repo"
	"github.com/easyshop/backend/internal/search"
	"github.com/easyshop/backend/internal/service"
	"github.com/easyshop/backend/pkg/db"
	"github.com/easyshop/backend/pkg/logging"
	loggingmw "github.com/easyshop/backend/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	ctx := context.Background()
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = mykafka.NewProducer(cfg.KafkaBrokers)
	} else {
		logger.Warn("KAFKA_BROKERS not set, domain events disabled")
	}

	var searchClient *search.Client
	if cfg.ESURL != "" {
		searchClient, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex)
		if err != nil {
			log.Fatalf("elasticsearch init: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, full-text search disabled")
	}

	gormRepo := repo.NewGormRepo(gdb)

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	catalogSvc := &service.CatalogService{Repo: gormRepo, Producer: producer, Search: searchClient}

	deps := httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, Producer: producer, JWTSecret: cfg.JWTSecret}},
		CatalogHandler:  &httpserver.CatalogHTTP{Svc: catalogSvc},
		CategoryHandler: &httpserver.CategoryHTTP{Svc: catalogSvc},
		CartHandler:     &httpserver.CartHTTP{Svc: &service.CartService{Repo: gormRepo}, Users: gormRepo},
		ProfileHandler:  &httpserver.ProfileHTTP{Svc: &service.ProfileService{Repo: gormRepo}, Users: gormRepo},
		JWTSecret:       cfg.JWTSecret,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
