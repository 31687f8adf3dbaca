package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	credentialapp "github.com/muhammadheryan/femnest/application/credential"
	profileapp "github.com/muhammadheryan/femnest/application/profile"
	questionapp "github.com/muhammadheryan/femnest/application/question"
	"github.com/muhammadheryan/femnest/cmd/config"
	_ "github.com/muhammadheryan/femnest/docs"
	questionRepo "github.com/muhammadheryan/femnest/repository/question"
	"github.com/muhammadheryan/femnest/transport"
	"github.com/muhammadheryan/femnest/utils/logger"
	validatorx "github.com/muhammadheryan/femnest/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title FEMNEST API
// @version 1.0
// @description FEMNEST roommate-matching forms API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	var logOpts []logger.Option
	if cfg.LogFile != "" {
		logOpts = append(logOpts, logger.WithOutputPath(cfg.LogFile))
	}
	if err := logger.Init(cfg.Environment, logOpts...); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Initialize validator before handlers run concurrently
	validatorx.Init()

	// Initialize repositories
	QuestionRepo, err := questionRepo.NewQuestionRepository()
	if err != nil {
		logger.Fatal("err load question catalogue", zap.Error(err))
	}

	// Initialize application layers
	CredentialApp, err := credentialapp.NewCredentialApp(cfg)
	if err != nil {
		logger.Fatal("err init credential app", zap.Error(err))
	}
	QuestionApp := questionapp.NewQuestionApp(cfg, QuestionRepo)
	ProfileApp := profileapp.NewProfileApp(cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	httpTransport := transport.NewTransport(CredentialApp, QuestionApp, ProfileApp, reg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed graceful shutdown", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
