package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/trademate-pro/backend/libs/config"
	"github.com/trademate-pro/backend/libs/db"
	"github.com/trademate-pro/backend/libs/httpx"
	"github.com/trademate-pro/backend/libs/kafkax"
	otelx "github.com/trademate-pro/backend/libs/otel"
	"github.com/trademate-pro/backend/libs/runtime"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/consumer"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/handlers"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/inbox"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/outbox"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/payments"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/settings"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "scheduling-service")
	port, err := config.Port("PORT", "8083")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}

	pool, err := db.Open(ctx, dbURL, db.WithApplicationName("scheduling-service"))
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	repo := storage.NewScheduleRepository(pool)
	settingsRepo := storage.NewSettingsRepository(pool)
	outboxRepo := outbox.NewRepository(pool)

	settingsProvider, err := settings.NewCompanyConfigProvider(logger, settingsRepo, config.String("COMPANY_GRPC_ADDR", ""))
	if err != nil {
		logger.Error("config provider init failed; using cache", "err", err)
		settingsProvider = settings.NewCacheProvider(settingsRepo, logger)
	}

	deposits := payments.NewDepositCollector(
		config.String("STRIPE_SECRET_KEY", ""),
		config.String("DEPOSIT_CURRENCY", "usd"),
		logger,
	)
	if !deposits.Enabled() {
		logger.Warn("booking deposits disabled (STRIPE_SECRET_KEY missing)")
	}

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	inboxRepo := inbox.NewRepository(pool)
	startConsumer := func(topic string, handler consumer.Handler) {
		if strings.TrimSpace(topic) == "" {
			return
		}
		eventConsumer := consumer.New(logger, inboxRepo, consumer.Config{
			Brokers: config.String("KAFKA_BROKERS", ""),
			GroupID: config.String("KAFKA_GROUP_ID", "scheduling-service"),
			Topic:   topic,
		}, handler)
		go eventConsumer.Run(ctx)
	}
	startConsumer(config.String("KAFKA_SETTINGS_TOPIC", consumer.TopicSettingsUpdated),
		consumer.NewSettingsUpdatedHandler(logger, settingsRepo))
	startConsumer(config.String("KAFKA_TIMEOFF_TOPIC", consumer.TopicTimeOffChanged),
		consumer.NewTimeOffChangedHandler(logger, settingsRepo))

	handler := handlers.New(repo, outboxRepo, settingsProvider, deposits, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.HandleFunc("/api/v1/public/slots", handler.Slots)
	mux.HandleFunc("/api/v1/public/book", handler.Book)
	mux.HandleFunc("/api/v1/workorders", handler.ListWorkOrders)
	mux.HandleFunc("/api/v1/workorders/cancel", handler.CancelWorkOrder)
	mux.HandleFunc("/api/v1/schedule-events", handler.ScheduleEvents)

	bodyLimit := int64(1 << 20)
	if v, err := strconv.Atoi(config.String("REQUEST_BODY_LIMIT_BYTES", "1048576")); err == nil && v > 0 {
		bodyLimit = int64(v)
	}
	requestTimeout := 10 * time.Second
	if v, err := strconv.Atoi(config.String("REQUEST_TIMEOUT_SECONDS", "10")); err == nil && v > 0 {
		requestTimeout = time.Duration(v) * time.Second
	}
	limitPerMinute := 120
	if v, err := strconv.Atoi(config.String("RATE_LIMIT_PER_MINUTE", "120")); err == nil && v > 0 {
		limitPerMinute = v
	}

	// The public slot/book endpoints sit behind the booking widget, so rate
	// limiting is shared across instances via redis when available.
	var rateLimitMW httpx.Middleware
	if addr := strings.TrimSpace(config.String("REDIS_ADDR", "")); addr != "" {
		redisDB := 0
		if v, err := strconv.Atoi(config.String("REDIS_DB", "0")); err == nil && v >= 0 {
			redisDB = v
		}
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
			DB:       redisDB,
		})
		defer func() { _ = rdb.Close() }()

		rl := httpx.NewRedisRateLimiter(rdb, limitPerMinute, time.Minute, config.String("RATE_LIMIT_PREFIX", "rl"))
		rateLimitMW = rl.Middleware(logger, config.Bool("RATE_LIMIT_FAIL_OPEN", true))
		logger.Info("rate limiting enabled (redis)", "per_minute", limitPerMinute, "redis_addr", addr)
	} else {
		rl := httpx.NewRateLimiter(limitPerMinute, time.Minute)
		rateLimitMW = rl.Middleware()
		logger.Info("rate limiting enabled (in-memory)", "per_minute", limitPerMinute)
	}

	httpHandler := httpx.Chain(mux,
		httpx.WithRecover(logger),
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins:   parseList(config.String("CORS_ALLOWED_ORIGINS", "")),
			AllowedMethods:   parseList(config.String("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
			AllowedHeaders:   parseList(config.String("CORS_ALLOWED_HEADERS", "Authorization,Content-Type,X-Request-Id,X-Company-Id,Idempotency-Key")),
			AllowCredentials: config.Bool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           10 * time.Minute,
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(bodyLimit),
		httpx.WithTimeout(requestTimeout),
		rateLimitMW,
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "scheduling")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
