package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/uber-go/tally/v4"
	"github.com/uber-go/tally/v4/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	"github.com/mkvy/moviestore/movie/internal/controller/movie"
	httphandler "github.com/mkvy/moviestore/movie/internal/handler/http"
	"github.com/mkvy/moviestore/movie/internal/ingester/kafka"
	"github.com/mkvy/moviestore/movie/internal/repository/memory"
	"github.com/mkvy/moviestore/pkg/discovery"
	"github.com/mkvy/moviestore/pkg/discovery/consul"
	discoverymemory "github.com/mkvy/moviestore/pkg/discovery/memory"
	"github.com/mkvy/moviestore/pkg/tracing"
)

const serviceName = "movie"

func main() {
	configPath := flag.String("config", "./movie/configs/base.yaml", "Path to the yaml configuration")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.API.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	port := cfg.API.Port
	logger.Info("Starting the movie service", zap.Int("port", port), zap.String("env", cfg.API.Env))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Jaeger.Enabled {
		tp, err := tracing.NewJaegerProvider(cfg.Jaeger.URL, serviceName)
		if err != nil {
			logger.Fatal("Failed to initialize Jaeger provider", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Failed to shut down Jaeger provider", zap.Error(err))
			}
		}()
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
	}

	reporter := prometheus.NewReporter(prometheus.Options{})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags:           map[string]string{"service": serviceName},
		CachedReporter: reporter,
		Separator:      prometheus.DefaultSeparator,
	}, 10*time.Second)
	defer closer.Close()
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", reporter.HTTPHandler())
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Prometheus.MetricsPort), metricsMux); err != nil {
			logger.Error("Failed to start the metrics handler", zap.Error(err))
		}
	}()
	scope.Counter("service_started").Inc(1)

	registry, err := newRegistry(cfg.Registry)
	if err != nil {
		logger.Fatal("Failed to create service registry", zap.Error(err))
	}
	instanceID := discovery.GenerateInstanceID(serviceName)
	if err := registry.Register(ctx, instanceID, serviceName, fmt.Sprintf("localhost:%d", port)); err != nil {
		logger.Fatal("Failed to register service", zap.Error(err))
	}
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
					logger.Error("Failed to report healthy state", zap.Error(err))
				}
			}
		}
	}()
	defer registry.Deregister(context.Background(), instanceID, serviceName)

	repo := memory.New()
	ctrl := movie.New(repo)
	h := httphandler.New(ctrl, logger, scope, httphandler.LimiterConfig{
		RPS:     cfg.Limiter.RPS,
		Burst:   cfg.Limiter.Burst,
		Enabled: cfg.Limiter.Enabled,
	})
	defer h.Close()

	var wg sync.WaitGroup
	if cfg.Kafka.Enabled {
		ingester, err := kafka.NewIngester(cfg.Kafka.BootstrapServers, cfg.Kafka.GroupID, cfg.Kafka.Topic, ctrl, logger)
		if err != nil {
			logger.Fatal("Failed to create rating ingester", zap.Error(err))
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ingester.Run(ctx); err != nil {
				logger.Error("Rating ingester stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      h.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownError := make(chan error)
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		s := <-sigChan
		logger.Info("Attempting graceful shutdown", zap.String("signal", s.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		shutdownError <- srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to serve", zap.Error(err))
	}
	if err := <-shutdownError; err != nil {
		logger.Error("Failed to shut down the HTTP server", zap.Error(err))
	}
	wg.Wait()
	logger.Info("Gracefully stopped the HTTP server")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRegistry(cfg registryConfig) (discovery.Registry, error) {
	if cfg.Kind == "consul" {
		registry, err := consul.NewRegistry(cfg.Address)
		if err != nil {
			return nil, err
		}
		return registry, nil
	}
	return discoverymemory.NewRegistry(), nil
}
