package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/edalchemy/edalchemy-api/internal/auth"
	"github.com/edalchemy/edalchemy-api/internal/config"
	"github.com/edalchemy/edalchemy-api/internal/discovery"
	"github.com/edalchemy/edalchemy-api/internal/handler"
	"github.com/edalchemy/edalchemy-api/internal/mailer"
	"github.com/edalchemy/edalchemy-api/internal/repository"
	"github.com/edalchemy/edalchemy-api/internal/usecase"
	"github.com/edalchemy/edalchemy-api/internal/validation"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	resetTokenRepo := repository.NewPasswordResetTokenMongoRepository(ctx, &logger, db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, cfg.ResetTokenSecret, cfg.ResetTokenTTL)
	mail := mailer.NewMailer(&logger)

	validate, err := validation.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize validator")
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, tokens)
	profileUsecase := usecase.NewProfileUsecase(userRepo)
	resetUsecase := usecase.NewPasswordResetUsecase(
		userRepo, resetTokenRepo, tokens, mail, cfg.PasswordResetURL, cfg.ResetTokenTTL,
	)

	authHandler := handler.NewAuthHandler(authUsecase, profileUsecase, resetUsecase, validate, &logger)
	router := handler.NewRouter(authHandler, tokens, &logger)

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if cfg.ConsulAddress != "" {
		registration, err := discovery.Register(cfg.ConsulAddress, cfg.ServiceName, cfg.ServerAddress, &logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to register with consul")
		}
		defer registration.Deregister()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", cfg.ServerAddress).Msg("server listening")
		errCh <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
