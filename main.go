package main

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bkovac/feedwatch.api/config"
	"github.com/bkovac/feedwatch.api/data"
	"github.com/bkovac/feedwatch.api/data/repos"
	"github.com/bkovac/feedwatch.api/feeds"
	"github.com/bkovac/feedwatch.api/handlers"
	"github.com/bkovac/feedwatch.api/sources"
)

//go:embed data/migrations/*.sql
var embedMigrations embed.FS

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	db, err := sqlx.Connect("postgres", config.Config.PostgresURL)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := data.RunMigrations(db.DB, embedMigrations); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	feedRepo := repos.NewFeedRepo(db)
	keywordRepo := repos.NewKeywordRepo(db)
	matchRepo := repos.NewMatchRepo(db)

	feedHandler := handlers.NewFeedHandler(feedRepo)
	keywordHandler := handlers.NewKeywordHandler(keywordRepo)
	matchHandler := handlers.NewMatchHandler(matchRepo)
	healthHandler := handlers.NewHealthHandler()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := feeds.NewFetcher(time.Duration(config.Config.FetchTimeoutSeconds) * time.Second)
	poller := sources.NewPoller(logger, fetcher, feedRepo, keywordRepo, matchRepo)
	if config.Config.EnablePolling {
		go poller.StartPolling(ctx)
	}

	notifier := NewNotifier(matchRepo, LogConsumer{})
	go notifier.Start(ctx)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", public(healthHandler.GetHealth))

	mux.HandleFunc("POST /feeds", public(feedHandler.CreateFeed))
	mux.HandleFunc("GET /feeds", public(feedHandler.GetFeeds))
	mux.HandleFunc("GET /feeds/{id}", public(feedHandler.GetFeed))
	mux.HandleFunc("PUT /feeds/{id}", public(feedHandler.UpdateFeed))

	mux.HandleFunc("POST /keywords", public(keywordHandler.CreateKeyword))
	mux.HandleFunc("GET /keywords", public(keywordHandler.GetKeywords))
	mux.HandleFunc("GET /keywords/{id}", public(keywordHandler.GetKeyword))
	mux.HandleFunc("PUT /keywords/{id}", public(keywordHandler.UpdateKeyword))

	mux.HandleFunc("GET /matches", public(matchHandler.GetMatches))

	mux.Handle("GET /metrics", promhttp.Handler())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
		if err := db.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
		os.Exit(0)
	}()

	slog.Info("Starting server on port 8080")
	err = http.ListenAndServe(":8080", withCORS(mux))
	if err != nil {
		slog.Error("failed to start server", "error", err)
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
	if res.Code == http.StatusInternalServerError {
		slog.Error("internal error", "error", res.Error.Error())
	}
}
