package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"allergysafe-be/internal/cart"
	"allergysafe-be/internal/catalog"
	"allergysafe-be/internal/config"
	"allergysafe-be/internal/httpx"
	"allergysafe-be/internal/logger"
	"allergysafe-be/internal/session"
	"allergysafe-be/internal/user"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	catalogRepo, closeDB, err := buildCatalogRepo(cfg)
	if err != nil {
		log.Fatal("failed to open catalog", zap.Error(err))
	}
	if closeDB != nil {
		defer closeDB()
	}

	var durable session.DurableStore
	if cfg.RedisAddr != "" {
		redisStore := session.NewRedisStore(cfg.RedisAddr)
		defer redisStore.Close()
		durable = redisStore
	} else {
		durable = session.NewMemoryStore()
		log.Warn("REDIS_ADDR not set, sessions will not survive restarts")
	}

	nav := httpx.NewIntentNavigator()
	sessionStore := session.NewStore(durable, nav)

	handler := &httpx.Handler{
		Catalog: catalog.NewService(catalogRepo),
		Cart:    cart.NewService(cart.NewStore(), catalogRepo),
		Session: sessionStore,
		Users:   user.NewRegistry(),
		Nav:     nav,
		Delay:   sleepDelay(cfg.LoginDelay),
	}

	router := httpx.NewRouter()
	handler.Register(router)

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: router}

	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}

// buildCatalogRepo picks the catalog backend. The seeded in-memory dataset is
// the default; Postgres is opt-in.
func buildCatalogRepo(cfg *config.Config) (catalog.Repository, func() error, error) {
	if cfg.CatalogDriver != "postgres" {
		return catalog.NewMemoryRepository(), nil, nil
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, nil, err
	}
	return catalog.NewRepository(db), db.Close, nil
}

// sleepDelay is the simulated auth latency, cancellable via the request
// context.
func sleepDelay(d time.Duration) func(ctx context.Context) {
	if d <= 0 {
		return nil
	}
	return func(ctx context.Context) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
		}
	}
}
