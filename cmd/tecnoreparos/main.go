package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"tecnoreparos/frontend/login"
	"tecnoreparos/frontend/orders"
	"tecnoreparos/frontend/settings"
	"tecnoreparos/frontend/stock"
	"tecnoreparos/infrastructure/audit"
	"tecnoreparos/infrastructure/cache"
	httpserver "tecnoreparos/infrastructure/http"
	"tecnoreparos/infrastructure/idle"
	"tecnoreparos/infrastructure/kvstore"
	"tecnoreparos/infrastructure/sqlite"
)

func main() {
	_ = godotenv.Load()

	addr := getenv("APP_ADDR", ":8080")
	dbPath := getenv("SQLITE_PATH", "tecnoreparos.db")
	loginUser := getenv("LOGIN_USER", "tecnico")
	loginPassword := getenv("LOGIN_PASSWORD", "123")
	ambientTheme := getenv("THEME_DEFAULT", settings.ThemeLight)
	idleCfg := login.IdleConfig{
		IdleTimeout:   getduration("IDLE_TIMEOUT", 15*time.Minute),
		PromptTimeout: getduration("PROMPT_TIMEOUT", 30*time.Second),
	}

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.ApplyMigrations(ctx, db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	auth, err := login.NewAuthenticator(loginUser, loginPassword)
	if err != nil {
		log.Fatalf("configure login credential: %v", err)
	}

	kv := kvstore.NewSQLite(db)
	themes := settings.NewThemeManager(ctx, kv, ambientTheme)
	orderStore := orders.NewStore(ctx, kv)
	stockStore := stock.NewStore(ctx, kv)

	sessionCache := cache.NewUserSessionCache()
	monitors := idle.NewRegistry()
	auditSvc := audit.NewService(db)

	// Sessions only die lazily on their next request; the sweeper reclaims
	// the idle monitors of sessions that never come back.
	sweeper := cron.New()
	_, err = sweeper.AddFunc("@every 1m", func() {
		for _, token := range sessionCache.PurgeExpired() {
			monitors.Remove(token)
		}
	})
	if err != nil {
		log.Fatalf("schedule session sweeper: %v", err)
	}
	sweeper.Start()

	server := httpserver.NewServer(addr, auth, sessionCache, monitors, idleCfg, themes, orderStore, stockStore, auditSvc)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("tecnoreparos listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sweeper.Stop()
	monitors.StopAll()
	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
