package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/achrafgam07/realnest/internal/config"
	"github.com/achrafgam07/realnest/internal/handler"
	"github.com/achrafgam07/realnest/internal/logger"
	"github.com/achrafgam07/realnest/internal/metrics"
	"github.com/achrafgam07/realnest/internal/middleware"
	"github.com/achrafgam07/realnest/internal/queue"
	"github.com/achrafgam07/realnest/internal/router"
	"github.com/achrafgam07/realnest/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly

	cfg := config.Load()
	if err := logger.Init("info", cfg.Env); err != nil {
		log.Fatalf("init logger: %v", err)
	}

	// Redis backs the response cache and rate limiter; a nil client
	// degrades both to pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.L().Warn("redis unavailable, cache and rate limiting disabled")
	}

	// Pick the record backend and open the store over it.
	var records store.RecordStore
	switch cfg.DataBackend {
	case config.BackendMySQL:
		ms, err := store.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			logger.L().Fatal("open mysql backend", zap.Error(err))
		}
		defer ms.Close()
		records = ms
	case config.BackendRedis:
		if rdb == nil {
			logger.L().Fatal("redis backend selected but redis is unreachable")
		}
		records = store.NewRedisStore(rdb)
	default:
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.L().Fatal("open file backend", zap.Error(err))
		}
		records = fs
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	st, err := store.Open(ctx, records,
		store.WithLatency(time.Duration(cfg.LatencyMS)*time.Millisecond))
	if err != nil {
		logger.L().Fatal("open store", zap.Error(err))
	}

	// Booking events land in logs/booking.log via the queue consumer.
	go queue.StartBookingConsumer()

	e := echo.New()
	e.HideBanner = true
	e.Use(logger.Middleware())
	e.Use(metrics.Middleware())

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	auth := handler.NewAuthHandler(cfg, st)
	props := handler.NewPropertyHandler(st)
	bookings := handler.NewBookingHandler(st)
	revenue := handler.NewRevenueHandler(st)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterPublic(e, props, cache, limiter)
	router.RegisterDashboard(e, props, bookings, revenue, cfg.JWTSecret)

	addr := ":" + cfg.Port
	logger.L().Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("backend", cfg.DataBackend))

	if err := e.Start(addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
