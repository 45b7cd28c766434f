package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/task-manager/internal/auth"
	"github.com/iliyamo/task-manager/internal/config"
	"github.com/iliyamo/task-manager/internal/database"
	"github.com/iliyamo/task-manager/internal/handler"
	"github.com/iliyamo/task-manager/internal/mail"
	"github.com/iliyamo/task-manager/internal/middleware"
	"github.com/iliyamo/task-manager/internal/queue"
	"github.com/iliyamo/task-manager/internal/repository"
	"github.com/iliyamo/task-manager/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	// Redis is optional: without it the login throttle stays in-process
	// and the auth rate limiter becomes a no-op.
	rdb := config.NewRedisClient()
	var throttle auth.Throttle
	if rdb != nil {
		throttle = auth.NewRedisThrottle(rdb, cfg.ThrottleMax)
	} else {
		log.Printf("redis unavailable; using in-memory login throttle (single instance only)")
		throttle = auth.NewMemoryThrottle(cfg.ThrottleMax)
	}

	codec := auth.NewCodec(cfg.JWTSecret, cfg.JWTTTL)
	mailer := &mail.SMTPMailer{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPass,
		From:        cfg.SMTPFrom,
		FrontendURL: cfg.FrontendURL,
	}

	users := repository.NewUserRepo(db)
	roles := repository.NewRoleRepo(db)
	resetTokens := repository.NewResetTokenRepo(db)
	tasks := repository.NewTaskRepo(db)

	authHandler := handler.NewAuthHandler(cfg, codec, throttle, users, roles, resetTokens, mailer)
	taskHandler := handler.NewTaskHandler(tasks)

	e := echo.New()
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, codec, rateLimit)
	router.RegisterTasks(e, taskHandler, codec)

	// Background audit-log consumer; runs its own reconnect loop.
	go func() {
		if err := queue.StartAuthConsumer(); err != nil {
			log.Printf("auth consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
