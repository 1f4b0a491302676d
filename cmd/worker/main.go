package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/config"
	cartrepo "storefront-backend/internal/domains/cart/repository"
	cartservice "storefront-backend/internal/domains/cart/service"
	catalogrepo "storefront-backend/internal/domains/catalog/repository"
	promotionrepo "storefront-backend/internal/domains/promotion/repository"
	promotionservice "storefront-backend/internal/domains/promotion/service"
	"storefront-backend/internal/infrastructure/database"
	"storefront-backend/internal/infrastructure/sms"
	"storefront-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	catalogRepo := catalogrepo.NewPostgresRepository(db.Pool)
	promotionSvc := promotionservice.NewPromotionService(promotionrepo.NewPostgresRepository(db.Pool))
	cartSvc := cartservice.NewCartService(cartrepo.NewPostgresRepository(db.Pool), catalogRepo, promotionSvc)
	smsSender := sms.NewMockSMSService()

	srv, mux := newServer(cfg, promotionSvc, cartSvc, smsSender)

	scheduler := newScheduler(cfg)
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatal().Err(err).Msg("Scheduler failed")
		}
	}()

	go func() {
		log.Info().Msg("Worker starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("Worker failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Worker shutting down")
	scheduler.Shutdown()
	srv.Shutdown()
}
