package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"shop-admin/internal/auth"
	"shop-admin/internal/client"
	"shop-admin/internal/config"
	"shop-admin/internal/logger"
	"shop-admin/internal/repository"
	"shop-admin/internal/server"
	"shop-admin/internal/service"
	"shop-admin/internal/view"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("shop-admin", cfg.Log.Level, cfg.Log.Format)

	db, err := client.InitDBClient(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("init database")
	}

	orderRepo := repository.NewOrderRepository(db)

	if cfg.SeedDemoData {
		if err := seedDemoData(context.Background(), db, cfg.Auth.AdminEmails); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
		log.Info().Msg("demo data seeded")
	}

	admins := auth.NewAllowList(cfg.Auth.AdminEmails)
	if admins.Len() == 0 {
		log.Warn().Msg("ADMIN_EMAILS is empty, every admin request will be redirected to login")
	}

	location, err := time.LoadLocation(cfg.Display.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Display.TimeZone).Msg("load display time zone")
	}
	renderer, err := view.NewRenderer(cfg.Display.Locale, location)
	if err != nil {
		log.Fatal().Err(err).Msg("init renderer")
	}

	adminOrderService := service.NewAdminOrderService(orderRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(adminOrderService, server.Options{
		Admins:        admins,
		Sessions:      auth.NewSessionCodec(cfg.Auth.SessionSecret),
		SessionCookie: cfg.Auth.SessionCookie,
		LoginPath:     cfg.Auth.LoginPath,
		Renderer:      renderer,
		Logger:        log,
	})

	log.Info().Str("addr", serverAddr).Str("env", cfg.Environment.Name).Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info().Msg("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}
