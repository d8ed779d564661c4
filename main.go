package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	intconfig "yogabook/internal/config"
	"yogabook/internal/db"
	"yogabook/internal/fixtures"
	router "yogabook/internal/http"
	"yogabook/internal/http/handlers"
	"yogabook/internal/store"
	"yogabook/internal/store/memstore"
	"yogabook/internal/store/sqlstore"
	"yogabook/pkg/logger"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.Init(logger.Config{
		Level:  env.LogLevel,
		Format: env.LogFormat,
		Output: env.LogOutput,
	}, "yogabook")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	st, cleanup, err := buildStore(env)
	if err != nil {
		zl.Fatal("store init failed", zap.Error(err))
	}
	defer cleanup()

	a := handlers.API{
		Store:    st,
		Secret:   env.JWTSecret,
		TokenTTL: env.TokenTTL,
	}
	r := router.NewRouter(env, a)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zl.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal("shutdown failed", zap.Error(err))
	}

	zl.Info("server stopped")
}

// buildStore picks MySQL when DB_DSN is set, the seeded in-memory store
// otherwise.
func buildStore(env intconfig.Env) (store.Store, func(), error) {
	if env.DBDSN == "" {
		st := memstore.New()
		if err := fixtures.Apply(st, env.SeedScenario); err != nil {
			return nil, nil, err
		}
		logger.L().Info("using in-memory store", zap.String("scenario", env.SeedScenario))
		return st, func() {}, nil
	}

	conn, err := db.Open(env.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	handlers.SetCheckDB(conn)
	logger.L().Info("using mysql store")
	return sqlstore.New(conn), func() { conn.Close() }, nil
}
