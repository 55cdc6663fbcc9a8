package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	redisClient "github.com/Ilhomjon565/kutubxona-uit/data/redis"
	"github.com/Ilhomjon565/kutubxona-uit/data/session"
	"github.com/Ilhomjon565/kutubxona-uit/data/watchstate"
	"github.com/Ilhomjon565/kutubxona-uit/internal/externalApi/libraryApi"
	"github.com/Ilhomjon565/kutubxona-uit/internal/mailer"
	"github.com/Ilhomjon565/kutubxona-uit/internal/notifier"
	"github.com/Ilhomjon565/kutubxona-uit/internal/scheduler"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/adminService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/analyticsService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/bookService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/service/catalogService"
	"github.com/Ilhomjon565/kutubxona-uit/internal/transport/web"
	"github.com/Ilhomjon565/kutubxona-uit/internal/validation"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	redisDb := redisClient.MustInitRedis(cfg)
	defer redisDb.Close()

	redisSession := session.NewRedisSession(cfg, redisDb)
	watchState := watchstate.NewRedisWatchState(cfg, redisDb)

	apiClient := libraryApi.New(cfg)

	validator := validation.New()

	catalogSvc := catalogService.New(cfg, apiClient)
	bookSvc := bookService.New(cfg, apiClient)
	adminSvc := adminService.New(cfg, apiClient, redisSession, validator)
	analyticsSvc := analyticsService.New(cfg, apiClient)

	bookMailer, err := mailer.NewMailer(cfg)
	if err != nil {
		slog.Error("mailer init failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	bookNotifier := notifier.New(cfg, apiClient, watchState, bookMailer, validator)

	controller, err := web.NewController(cfg, catalogSvc, bookSvc, adminSvc, analyticsSvc, bookNotifier)
	if err != nil {
		slog.Error("controller init failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	sched := scheduler.New()
	sched.NewIntervalJob("check new books", bookNotifier.Check, cfg.Watcher.Interval, true)
	sched.Start()
	defer sched.Stop()

	server := web.New(cfg, controller)
	server.Start()
	defer server.Stop()

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
