package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	appcart "github.com/bexiiiii/euroline-sub001/internal/application/cart"
	appfinance "github.com/bexiiiii/euroline-sub001/internal/application/finance"
	appsearch "github.com/bexiiiii/euroline-sub001/internal/application/search"
	"github.com/bexiiiii/euroline-sub001/internal/config"
	envconfig "github.com/bexiiiii/euroline-sub001/internal/config/env"
	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/credentials"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/id"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/memory"
	infraobs "github.com/bexiiiii/euroline-sub001/internal/infrastructure/observability"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/observability/oteltrace"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/observability/prometrics"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/observability/zaplogger"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/outbox"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/redisguard"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/remote"
	"github.com/bexiiiii/euroline-sub001/internal/pkg/logging"
	httppresentation "github.com/bexiiiii/euroline-sub001/internal/presentation/http"
	workerpresentation "github.com/bexiiiii/euroline-sub001/internal/presentation/worker"
)

const metricsNamespace = "euroline"

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.C()

	baseLogger := logging.MustNewLogger(logging.Options{
		Service: cfg.Logger.Service(),
		Env:     cfg.Logger.Env(),
		Level:   cfg.Logger.Level(),
		File:    cfg.Logger.File(),
	})
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	systemLogger := logging.WithTrace(baseLogger, logging.SystemTraceID, logging.SystemSpanID)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tel := infraobs.New(
		oteltrace.New(cfg.Logger.Service()),
		zaplogger.New(baseLogger),
		prometrics.New(metricsNamespace, prometheus.DefaultRegisterer),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := remote.NewClient(cfg.API.BaseURL(),
		remote.WithTimeout(cfg.API.Timeout()),
		remote.WithPaths(remote.Paths{
			Search:  cfg.API.SearchPath(),
			Cart:    cfg.API.CartPath(),
			Finance: cfg.API.FinancePath(),
		}),
		remote.WithCredentials(credentials.NewContextProvider(cfg.API.ServiceToken())),
		remote.WithObservability(tel),
	)
	if err != nil {
		systemLogger.Fatal("remote_client_init_failed", zap.Error(err))
	}

	guard, closeGuard, err := newSubmissionGuard(ctx, cfg.Guard, cfg.Redis, systemLogger)
	if err != nil {
		systemLogger.Fatal("submission_guard_init_failed", zap.Error(err))
	}
	defer closeGuard()

	bus := outbox.NewBus(tel.Logger())
	bus.Start(ctx)

	searchUC := appsearch.NewSearchUseCase(client, cfg.API.ImageOrigin(), tel)
	cartUC := appcart.NewAddToCartUseCase(client, guard, bus, id.NewUUIDGenerator(), tel)
	financeUC := appfinance.NewUpdateCreditLimitUseCase(client, tel)

	workerpresentation.NewAdmissionWorker(bus, appcart.NewRecordAdmissionUseCase(tel), tel).Start()

	handler := httppresentation.NewHandler(searchUC, cartUC, financeUC, tel)
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Mount("/", handler.Router())

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
		ReadTimeout:       cfg.Server.ReadTimeout(),
		WriteTimeout:      cfg.Server.WriteTimeout(),
	}

	go func() {
		systemLogger.Info("http_server_start",
			zap.String("addr", server.Addr),
			zap.String("submission_guard", cfg.Guard.Backend()),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			systemLogger.Error("http_server_error",
				zap.Error(err),
			)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		systemLogger.Error("http_server_shutdown_error",
			zap.Error(err),
		)
	} else {
		systemLogger.Info("http_server_stopped")
	}

	if err := bus.Stop(shutdownCtx); err != nil {
		systemLogger.Warn("event_bus_stop_error", zap.Error(err))
	}
}

// newSubmissionGuard builds the configured cart.Guard and a cleanup func.
func newSubmissionGuard(
	ctx context.Context,
	guardCfg config.Guard,
	redisCfg config.Redis,
	logger *zap.Logger,
) (domcart.Guard, func(), error) {
	if guardCfg.Backend() != envconfig.GuardRedis {
		g := memory.NewSubmissionGuard(guardCfg.TTL())
		sweepCtx, cancel := context.WithCancel(ctx)
		go func() {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-sweepCtx.Done():
					return
				case <-ticker.C:
					g.Sweep()
				}
			}
		}()
		return g, cancel, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr(),
		Password: redisCfg.Password(),
		DB:       redisCfg.DB(),
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, func() {}, err
	}

	g, err := redisguard.New(rdb, redisCfg.KeyPrefix(), guardCfg.TTL())
	if err != nil {
		_ = rdb.Close()
		return nil, func() {}, err
	}
	logger.Info("redis_guard_ready", zap.String("addr", redisCfg.Addr()))
	return g, func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis_close_error", zap.Error(err))
		}
	}, nil
}
