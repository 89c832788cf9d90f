package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/sunziping2016/YAWeChatTicket/internal/bot"
	"github.com/sunziping2016/YAWeChatTicket/internal/clock"
	"github.com/sunziping2016/YAWeChatTicket/internal/config"
	"github.com/sunziping2016/YAWeChatTicket/internal/handler"
	"github.com/sunziping2016/YAWeChatTicket/internal/middleware"
	"github.com/sunziping2016/YAWeChatTicket/internal/notification"
	"github.com/sunziping2016/YAWeChatTicket/internal/realtime"
	"github.com/sunziping2016/YAWeChatTicket/internal/repository"
	"github.com/sunziping2016/YAWeChatTicket/internal/router"
	"github.com/sunziping2016/YAWeChatTicket/internal/scheduler"
	"github.com/sunziping2016/YAWeChatTicket/internal/service"
	"github.com/sunziping2016/YAWeChatTicket/internal/sessions"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	hub        *realtime.Hub
	bot        *bot.Bot
	sweeper    *scheduler.Sweeper
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ticket-backend",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	ticketRepo := repository.NewTicketRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	verifier := auth.NewVerifier(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	entrySessions := sessions.NewRedisStore(a.redis)
	clk := clock.NewSystem()

	var botAPI *tgbotapi.BotAPI
	if a.cfg.Telegram.BotToken != "" {
		api, err := tgbotapi.NewBotAPI(a.cfg.Telegram.BotToken)
		if err != nil {
			return fmt.Errorf("create telegram bot: %w", err)
		}
		botAPI = api
	}

	publisher := realtime.NewPublisher(a.redis, a.log)
	realtimeNotifier := realtime.NewNotifier(publisher)
	telegramNotifier := notification.NewTelegramNotifier(botAPI, a.log)
	notifier := notification.NewFanout(telegramNotifier, realtimeNotifier)

	reservationService := service.NewReservationService(
		ticketRepo, eventRepo, userRepo, entrySessions, notifier, clk, a.log,
	)
	eventService := service.NewEventService(eventRepo, realtimeNotifier, clk)
	userService := service.NewUserService(userRepo)

	a.hub = realtime.NewHub(a.redis, a.log)
	gateway := realtime.NewGateway(a.hub, verifier, reservationService, a.log)

	if botAPI != nil {
		a.bot = bot.New(botAPI, userRepo, eventService, reservationService, a.log)
	}

	a.sweeper = scheduler.New(
		reservationService,
		a.cfg.Sweep.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, reservationService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		gateway.Handle,
		middleware.Auth(verifier),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.hub.Run(ctx)
	go a.sweeper.Start(ctx)
	if a.bot != nil {
		go a.bot.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
