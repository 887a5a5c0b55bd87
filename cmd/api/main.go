package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/lamontana/storefront/docs"
	"github.com/lamontana/storefront/internal/auth"
	"github.com/lamontana/storefront/internal/core"
	transporthttp "github.com/lamontana/storefront/internal/http"
	"github.com/lamontana/storefront/internal/http/handlers"
	"github.com/lamontana/storefront/internal/http/health"
	"github.com/lamontana/storefront/internal/jobs"
	"github.com/lamontana/storefront/internal/messaging"
	"github.com/lamontana/storefront/internal/messaging/kafka"
	"github.com/lamontana/storefront/internal/messaging/rabbitmq"
	"github.com/lamontana/storefront/internal/middleware"
	"github.com/lamontana/storefront/internal/notify"
	"github.com/lamontana/storefront/internal/pdf"
	"github.com/lamontana/storefront/internal/platform/config"
	"github.com/lamontana/storefront/internal/platform/logging"
	"github.com/lamontana/storefront/internal/store"
)

// @title La Montaña Storefront API
// @version 1.0
// @description Print-shop catalog, cart, pricing and checkout.
// @BasePath /api/v1
func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env, cfg.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Error("storefront stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := store.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer backend.Close(context.Background())

	publisher, err := newPublisher(cfg, log)
	if err != nil {
		return fmt.Errorf("broker: %w", err)
	}
	defer publisher.Close()

	var notifier core.OrderNotifier = notify.Nop{}
	if cfg.PostmarkServerToken != "" {
		notifier = notify.NewPostmark(cfg.PostmarkServerToken, cfg.EmailSender)
	}

	// Services
	tokens := auth.NewTokens(cfg.JWTSecret, auth.DefaultTTL)
	catalog := core.NewCatalogService(backend.Products, log)
	pricing := core.NewPricingService(pdf.NewCounter(), time.Duration(cfg.PageCountTimeoutMs)*time.Millisecond, log)
	users := core.NewUserService(backend.Users, tokens)
	checkout := core.NewCheckoutService(backend.Orders, backend.Users, pricing,
		messaging.NewOrderEvents(publisher, cfg.KafkaOrdersTopic), notifier, log)
	sessions := core.NewCartSessions()

	// Workers
	interval := time.Duration(cfg.WorkerIntervalSec) * time.Second
	workers := []jobs.Worker{jobs.NewCatalogRefreshWorker(catalog, interval, log)}

	pingers := map[string]health.Pinger{backend.Name: health.PingerFunc(backend.Ping)}

	var limiter middleware.Limiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitRPM, time.Minute)
		pingers["redis"] = health.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	} else {
		mem := middleware.NewMemoryLimiter(cfg.RateLimitRPM, time.Minute)
		limiter = mem
		workers = append(workers, jobs.NewFuncWorker("ratelimit_prune", time.Minute, log, mem.Prune))
	}

	workerCtx, stopWorkers := context.WithCancel(ctx)
	wg := jobs.StartAll(workerCtx, workers...)

	router := transporthttp.NewRouter(transporthttp.Deps{
		Log:            log,
		Health:         health.New(log, pingers, 2*time.Second),
		Tokens:         tokens,
		Limiter:        limiter,
		AdminAPIKey:    cfg.AdminAPIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second,
		Public: []handlers.Mountable{
			handlers.NewProductHandler(catalog, log),
			handlers.NewShippingHandler(log),
			handlers.NewAuthHandler(users, log),
		},
		Uploads: []handlers.Mountable{
			handlers.NewPricingHandler(pricing, log),
		},
		Private: []handlers.Mountable{
			handlers.NewCartHandler(sessions, catalog, log),
			handlers.NewOrderHandler(checkout, sessions, log),
			handlers.NewProfileHandler(users, log),
		},
		Admin: []handlers.Mountable{
			handlers.NewCatalogAdminHandler(catalog, log),
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr, "db", backend.Name, "broker", cfg.Broker)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			stopWorkers()
			wg.Wait()
			return fmt.Errorf("server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
	stopWorkers()
	wg.Wait()
	return nil
}

func newPublisher(cfg *config.Config, log *slog.Logger) (messaging.Publisher, error) {
	switch cfg.Broker {
	case "kafka":
		log.Info("publishing order events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaOrdersTopic)
		return kafka.NewBroker(cfg.KafkaBrokers), nil
	case "rabbitmq":
		log.Info("publishing order events to RabbitMQ", "exchange", cfg.RabbitMQExchange)
		b, err := rabbitmq.NewBroker(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return messaging.Nop{}, nil
	}
}
