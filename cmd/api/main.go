package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "agrifin-backend/internal/adapter/http"
	"agrifin-backend/internal/adapter/middleware"
	"agrifin-backend/internal/adapter/repository/gormstore"
	"agrifin-backend/internal/config"
	"agrifin-backend/internal/infrastructure/cache"
	dbinfra "agrifin-backend/internal/infrastructure/db"
	"agrifin-backend/internal/logging"
	"agrifin-backend/internal/usecase/auth"
	"agrifin-backend/internal/usecase/farmer"
	"agrifin-backend/internal/usecase/loan"
	"agrifin-backend/internal/usecase/product"
	"agrifin-backend/pkg/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider := dbinfra.NewProvider(func() (*gorm.DB, error) {
		return dbinfra.OpenGorm(cfg.DBDriver, cfg.DSN(), !cfg.IsProduction())
	}, log)
	defer func() { _ = provider.Close() }()

	db, err := provider.Get(context.Background())
	if err != nil {
		return err
	}
	if err := dbinfra.Migrate(db); err != nil {
		return err
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// repositories & usecases
	tx := gormstore.NewGormUoW(db)
	farmers := gormstore.NewFarmerRepository(db)
	authUC := auth.NewUsecase(gormstore.NewUserRepository(db), token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL), log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.NewErrorHandler(log)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	go limiter.Run(time.Minute, stopCleanup)

	e.Use(
		echomw.RequestID(),
		echomw.Recover(),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins(),
			AllowCredentials: true,
		}),
		middleware.AccessLog(log),
		middleware.NewHTTPMetrics(reg).Middleware(),
		limiter.Middleware(),
	)
	if rdb != nil {
		e.Use(middleware.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log))
	} else {
		log.Info("idempotency disabled: REDIS_ADDR not set")
	}

	httpadp.Register(e, httpadp.Routes{
		Health:        httpadp.NewHandler(),
		Farmers:       httpadp.NewFarmerHandler(farmer.NewUsecase(farmers, tx, log)),
		Loans:         httpadp.NewLoanHandler(loan.NewUsecase(gormstore.NewLoanRepository(db), tx, loan.NewMetrics(reg), log)),
		Products:      httpadp.NewProductHandler(product.NewUsecase(gormstore.NewProductRepository(db), log)),
		Auth:          httpadp.NewAuthHandler(authUC),
		Authenticator: authUC,
		Gatherer:      reg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
