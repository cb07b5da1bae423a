package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/data/cache"
	"book_tracker_tgbot/data/db/postgres"
	redisClient "book_tracker_tgbot/data/redis"
	"book_tracker_tgbot/data/session"
	"book_tracker_tgbot/internal/controllers"
	"book_tracker_tgbot/internal/parser"
	"book_tracker_tgbot/internal/phrases"
	"book_tracker_tgbot/internal/repository"
	"book_tracker_tgbot/internal/service/bookTrackerService"
	"book_tracker_tgbot/internal/tgbot"
	"book_tracker_tgbot/internal/transport/telegram"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	var repo bookTrackerService.Repository
	switch cfg.Storage {
	case config.StorageMemory:
		repo = repository.NewMemoryRepo()
		slog.Warn("books are kept in memory and will be lost on restart")
	default:
		postgres.MustRunMigrations(cfg)

		postgresDb := postgres.NewPostgresClient(cfg)
		defer postgresDb.Close()

		repo = repository.NewPostgresRepo(postgresDb)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() || cfg.SessionStorage == config.SessionStorageRedis {
		rdb = redisClient.MustInitRedis(cfg)
		defer rdb.Close()
	}

	var chatSession controllers.Session
	switch cfg.SessionStorage {
	case config.SessionStorageRedis:
		chatSession = session.NewRedisSession(cfg, rdb)
	default:
		chatSession = session.NewMemorySession()
	}

	var searchCache bookTrackerService.Cache
	if rdb != nil {
		searchCache = cache.NewRedisCache(cfg, rdb)
	}

	booksParser := parser.NewLitresParser(cfg)

	bookTracker := bookTrackerService.New(cfg, repo, searchCache, booksParser)

	dialogue := controllers.NewDialogueController(cfg, bookTracker, chatSession, phrases.NewWelcomeProvider())

	tgController := telegram.NewController(dialogue)

	tgBot := tgbot.New(cfg, tgController)

	tgBot.Start()
	defer tgBot.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
