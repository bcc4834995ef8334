// Package main, parkapp backend'inin giriş noktasıdır.
//
// Wire-up sırası:
//  1. Config + logger
//  2. Database (embedded migration'lar) + çeviri kataloğu
//  3. Repository → Service → Handler
//  4. Birim yetkilisi seed'i (ADMIN_SEED_PASSWORD verilmişse)
//  5. Route'lar, request log, CORS
//  6. HTTP server + graceful shutdown
//
// Global değişken yok; her şey burada oluşturulup birbirine bağlanır.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/parkapp/config"
	"github.com/akinalp/parkapp/database"
	"github.com/akinalp/parkapp/middleware"
	"github.com/akinalp/parkapp/pkg/i18n"
	"github.com/akinalp/parkapp/pkg/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func main() {
	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		logger.Init("parkapp", "development")
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init("parkapp", cfg.Server.Env)
	mainLog := logger.For("main")
	mainLog.Info().Int("port", cfg.Server.Port).Str("env", cfg.Server.Env).Msg("config loaded")

	// ─── 2. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		mainLog.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	catalog, err := i18n.NewCatalog(i18n.Locales())
	if err != nil {
		mainLog.Fatal().Err(err).Msg("failed to load translations")
	}

	// ─── 3. Layers ───
	repos := initRepositories(db.Conn)
	svcs, limiters, err := initServices(db.Conn, repos, cfg)
	if err != nil {
		mainLog.Fatal().Err(err).Msg("failed to initialize services")
	}
	h := initHandlers(db, svcs, repos, limiters, catalog)

	// ─── 4. Admin seed ───
	if cfg.Admin.SeedPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		created, err := svcs.Auth.SeedAdmins(ctx, cfg.Admin.SeedPassword)
		cancel()
		if err != nil {
			mainLog.Fatal().Err(err).Msg("failed to seed department admins")
		}
		mainLog.Info().Int("created", created).Msg("department admin seed complete")
	}

	svcs.Sweeper.Start()

	// ─── 5. Routes ───
	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: true,
	})

	handler := corsHandler.Handler(middleware.RequestLogger(mux))

	// ─── 6. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		mainLog.Info().Str("addr", cfg.Server.Addr()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			mainLog.Fatal().Err(err).Msg("server error")
		}
	}()

	<-done
	mainLog.Info().Msg("shutting down...")

	// Önce yeni request kabulü durur, mevcutlar 5sn içinde biter.
	// Sonra arka plan işleri boşaltılır; stats kuyruğu DB kapanmadan yazılmalı.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		mainLog.Error().Err(err).Msg("forced shutdown")
	}

	limiters.Close()
	svcs.Close()

	mainLog.Info().Msg("server stopped gracefully")
}
