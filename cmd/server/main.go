// @title         nocsdegree API
// @version       1.0
// @description   IT-вакансии с hh.ru без требования высшего образования.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/thedenisnikulin/nocsdegree.ru/docs"

	// internal imports
	apihttp "github.com/thedenisnikulin/nocsdegree.ru/api/http"
	"github.com/thedenisnikulin/nocsdegree.ru/api/http/handlers"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/auth"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/config"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/degree"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/feed"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/health"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/health/checkers"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/hh"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/jobs"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/listing"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/paid"
	pgrepo "github.com/thedenisnikulin/nocsdegree.ru/pkg/repository/postgres"
	redisrepo "github.com/thedenisnikulin/nocsdegree.ru/pkg/repository/redis"
	sqliterepo "github.com/thedenisnikulin/nocsdegree.ru/pkg/repository/sqlite"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/security/jwt"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/storage/postgres"
	redisstore "github.com/thedenisnikulin/nocsdegree.ru/pkg/storage/redis"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/storage/sqlite"
	"github.com/thedenisnikulin/nocsdegree.ru/pkg/taxonomy"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// stores is the persistence picked by DATABASE_URL.
type stores struct {
	paid    paid.Repository
	users   auth.UserRepository
	checker health.Checker
	close   func()
}

func openStores(ctx context.Context, dsn string) (stores, error) {
	if sqlite.IsDSN(dsn) {
		db, err := sqlite.Open(ctx, dsn)
		if err != nil {
			return stores{}, err
		}
		paidRepo, err := sqliterepo.NewPaidVacancyRepository(ctx, db)
		if err != nil {
			db.Close()
			return stores{}, fmt.Errorf("init paid vacancy repo: %w", err)
		}
		userRepo, err := sqliterepo.NewAdminRepository(ctx, db)
		if err != nil {
			db.Close()
			return stores{}, fmt.Errorf("init admin repo: %w", err)
		}
		return stores{paid: paidRepo, users: userRepo, checker: checkers.NewSQLiteChecker(db), close: func() { db.Close() }}, nil
	}

	pool, err := postgres.Connect(ctx, dsn)
	if err != nil {
		return stores{}, err
	}
	// Initialize domain repositories (also ensures DB schema for each domain).
	paidRepo, err := pgrepo.NewPaidVacancyRepository(pool)
	if err != nil {
		pool.Close()
		return stores{}, fmt.Errorf("init paid vacancy repo: %w", err)
	}
	userRepo, err := pgrepo.NewAdminRepository(pool)
	if err != nil {
		pool.Close()
		return stores{}, fmt.Errorf("init admin repo: %w", err)
	}
	return stores{paid: paidRepo, users: userRepo, checker: checkers.NewPostgresChecker(pool), close: pool.Close}, nil
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	tax, err := taxonomy.Load(cfg.TaxonomyPath)
	if err != nil {
		return fmt.Errorf("load taxonomy: %w", err)
	}

	st, err := openStores(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.close()
	readiness := []health.Checker{st.checker}

	// hh.ru client, optionally behind the redis detail cache
	var fetcher listing.Fetcher = hh.New(cfg.HHBaseURL, cfg.HHUserAgent, cfg.HHTimeout)
	if cfg.RedisURL != "" {
		rdb, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		fetcher = redisrepo.NewListingCache(fetcher, rdb, cfg.DetailCacheTTL, log)
		readiness = append(readiness, checkers.NewRedisChecker(rdb))
		log.Info("hh detail cache enabled", "ttl", cfg.DetailCacheTTL)
	}

	jobsUC := jobs.NewService(fetcher, degree.NewFilter(fetcher, log), tax, log)
	paidUC := paid.NewService(st.paid, tax)

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(st.users, jwtGen)
	if cfg.AdminEmail != "" {
		if err := authUC.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
	} else {
		log.Warn("ADMIN_EMAIL is not set, admin API has no account")
	}

	refresher := feed.NewRefresher(jobsUC, cfg.FeedRefreshInterval, log)
	if err := refresher.Start(ctx); err != nil {
		return err
	}
	defer refresher.Stop()

	app := fiber.New(fiber.Config{AppName: "nocsdegree"})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Register routes
	apihttp.Register(app, apihttp.Handlers{
		Auth:   handlers.NewAuthHandler(authUC, log),
		Health: handlers.NewHealthHandler(health.NewService(readiness...)),
		Jobs:   handlers.NewJobsHandler(jobsUC, refresher, paidUC, log),
		Paid:   handlers.NewPaidHandler(paidUC, log),
	}, jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer), jwt.RequireAdmin())

	app.Static("/static", cfg.StaticDir)
	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "port", cfg.Port)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
