package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/auth"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/config"

	postgres "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres"
	languagerepo "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/language"
	sessionrepo "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/session"
	userrepo "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/user"
	wordrepo "github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/word"

	authservice "github.com/CodaCrew-Code-Labs/conlang-backend/internal/service/auth"
	languageservice "github.com/CodaCrew-Code-Labs/conlang-backend/internal/service/language"
	userservice "github.com/CodaCrew-Code-Labs/conlang-backend/internal/service/user"
	wordservice "github.com/CodaCrew-Code-Labs/conlang-backend/internal/service/word"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/transport/middleware"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration,
// initializes the logger, connects to the database, wires repositories
// and services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	languages := languagerepo.New(pool)
	words := wordrepo.New(pool)
	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := authservice.New(logger, users, sessions, jwtManager, cfg.Auth)
	userSvc := userservice.New(logger, users)
	languageSvc := languageservice.New(logger, languages, cfg.Lexicon)
	wordSvc := wordservice.New(logger, words, languages, txm, cfg.Lexicon)

	router := rest.NewRouter(rest.RouterDeps{
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Users:     rest.NewUserHandler(userSvc, logger),
		Languages: rest.NewLanguageHandler(languageSvc, logger),
		Words:     rest.NewWordHandler(wordSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(authSvc))

	handler := middleware.Chain(mws...)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
