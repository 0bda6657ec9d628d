package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/shop-service/docs"
	"github.com/SergeyBogomolovv/shop-service/internal/app"
	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/events"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	"github.com/SergeyBogomolovv/shop-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-service/internal/postgres"
	"github.com/SergeyBogomolovv/shop-service/internal/redis"
	"github.com/SergeyBogomolovv/shop-service/internal/repo"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/SergeyBogomolovv/shop-service/pkg/cache"
	"github.com/SergeyBogomolovv/shop-service/pkg/lock"
	"github.com/SergeyBogomolovv/shop-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title                       Shop Service API
// @version                     1.0
// @description                 Catalog, cart, orders, payments and reporting.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	rdb, err := redis.New(conf.Redis)
	panicIfErr("failed to connect to redis", err)
	logger.Info("redis connected")

	pgRepo := repo.NewPostgresRepo(db)
	revocations := repo.NewRevocationStore(rdb)
	txManager := trm.NewManager(db)
	productCache := cache.NewLRUCache("products", conf.Cache.Capacity, conf.Cache.TTL)
	couponCache := cache.NewLRUCache("coupons", conf.Cache.Capacity, conf.Coupons.CacheTTL)
	tokens := auth.NewTokenManager(conf.Auth.JWTSecret, conf.Auth.Issuer, conf.Auth.TokenTTL, revocations)
	publisher := events.NewPublisher(logger, conf.Kafka)

	couponService := service.NewCouponService(logger, pgRepo, couponCache, conf.Coupons.CaseSensitive)
	orderService := service.NewOrderService(
		logger, txManager, pgRepo, pgRepo, couponService, pgRepo, productCache,
		publisher, lock.NewKeyed(), service.DefaultTransitionGuard(),
	)
	cartService := service.NewCartService(logger, pgRepo, pgRepo, couponService, orderService)
	productService := service.NewProductService(logger, pgRepo, pgRepo, productCache)
	storeService := service.NewStoreService(logger, pgRepo)
	reviewService := service.NewReviewService(logger, pgRepo, pgRepo)
	userService := service.NewUserService(logger, pgRepo, tokens, revocations)
	reportService := service.NewReportService(logger, pgRepo)
	paymentService := service.NewPaymentService(
		logger,
		service.NewPaymentVerifier(conf.Payment.PartnerCode, conf.Payment.AccessKey, conf.Payment.SecretKey),
		orderService,
	)

	loginLimiter := middleware.NewRateLimiter(conf.RateLimit.LoginRPS, conf.RateLimit.LoginBurst)
	handler.RegisterMetrics()

	app := app.New(logger, conf, middleware.Authenticate(logger, tokens, userService))

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewCartHandler(logger, cartService),
		handler.NewProductHandler(logger, productService),
		handler.NewStoreHandler(logger, storeService, reviewService),
		handler.NewCouponHandler(logger, couponService),
		handler.NewUserHandler(logger, userService, loginLimiter.Limit),
		handler.NewReportHandler(logger, reportService),
	)
	app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, paymentService))
	app.SetStarters(
		productCache,
		couponCache,
		loginLimiter,
		cacheWarmUpAdapter{svc: productService, count: conf.Cache.Capacity},
	)
	app.SetClosers(publisher, rdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
