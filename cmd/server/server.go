package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-session-api/internal/clients/directory"
	"github.com/KirkDiggler/rpg-session-api/internal/clients/external"
	"github.com/KirkDiggler/rpg-session-api/internal/config"
	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	sessionv1alpha1 "github.com/KirkDiggler/rpg-session-api/internal/handlers/session/v1alpha1"
	"github.com/KirkDiggler/rpg-session-api/internal/metrics"
	"github.com/KirkDiggler/rpg-session-api/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-session-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-session-api/internal/redis"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/history"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/sessions"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort    int
	metricsPort int
	backend     string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the session gRPC server. Settings come from the environment
(and an optional .env file); flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides GRPC_PORT)")
	serverCmd.Flags().IntVar(&metricsPort, "metrics-port", -1, "Prometheus port, 0 disables (overrides METRICS_PORT)")
	serverCmd.Flags().StringVar(&backend, "backend", "", "session storage, redis or memory (overrides SESSION_BACKEND)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("metrics-port") {
		cfg.MetricsPort = metricsPort
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := metrics.NewPrometheusProvider()
	if err != nil {
		return fmt.Errorf("failed to create metrics provider: %w", err)
	}
	otel.SetMeterProvider(provider.MeterProvider)

	bus := events.NewBus()
	m, err := metrics.NewMetrics(provider.MeterProvider)
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}
	m.Subscribe(bus)

	deps, cleanup, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	orchestrator, err := session.NewOrchestrator(&session.Config{
		Repository:       deps.sessions,
		History:          deps.history,
		Directory:        deps.directory,
		Engine:           deps.engine,
		MonsterTemplates: deps.templates,
		EventBus:         bus,
		MaxRetries:       cfg.MaxRetries,
	})
	if err != nil {
		return fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	handler, err := sessionv1alpha1.NewHandler(&sessionv1alpha1.HandlerConfig{
		SessionService:   orchestrator,
		MonsterTemplates: deps.templates,
	})
	if err != nil {
		return fmt.Errorf("failed to create session handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	sessionv1alpha1.RegisterSessionServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(sessionv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "backend", cfg.Backend)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	var metricsServer *http.Server
	if cfg.MetricsPort != 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", provider.Handler)
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			slog.Info("Metrics server starting", "port", cfg.MetricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Warn("Metrics server shutdown failed", "error", err)
			}
		}
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Meter provider shutdown failed", "error", err)
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

type dependencies struct {
	sessions  sessions.Repository
	history   history.Repository
	directory directory.Directory
	engine    engine.Engine
	templates external.Client
}

// buildDependencies wires storage, the monster template client and the
// rules engine from cfg. The cleanup func closes any Redis connection.
func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, func(), error) {
	deps := &dependencies{}
	cleanup := func() {}

	switch cfg.Backend {
	case config.BackendMemory:
		deps.sessions = sessions.NewInMemory(clock.New())
		deps.history = history.NewInMemory()
		// with no shared store every character and NPC is accepted
		deps.directory = directory.NewStatic(true)
	default:
		client, err := redisclient.Connect(ctx, cfg.Redis.Addrs, &redisclient.Options{
			PoolSize:        cfg.Redis.PoolSize,
			MinIdleConns:    cfg.Redis.MinIdleConns,
			ConnMaxIdleTime: cfg.Redis.ConnMaxIdleTime,
			MaxRetries:      cfg.Redis.MaxRetries,
			UseTLS:          cfg.Redis.UseTLS,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		cleanup = func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}

		deps.sessions, err = sessions.NewRedis(&sessions.RedisConfig{Client: client, TTL: cfg.SessionTTL})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create session repository: %w", err)
		}
		deps.history, err = history.NewRedis(&history.RedisConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create history repository: %w", err)
		}
		deps.directory, err = directory.NewRedis(&directory.RedisConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if cfg.DND5E.Enabled {
		templates, err := external.New(&external.Config{
			BaseURL:     cfg.DND5E.BaseURL,
			HTTPTimeout: cfg.DND5E.Timeout,
			CacheTTL:    cfg.DND5E.CacheTTL,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create monster template client: %w", err)
		}
		deps.templates = templates
	}

	var roller toolkitdice.Roller = toolkitdice.DefaultRoller
	if cfg.DiceSeed != 0 {
		slog.Info("Using seeded dice", "seed", cfg.DiceSeed)
		roller = dice.NewSeededRoller(cfg.DiceSeed)
	}

	e, err := engine.New(&engine.Config{
		Roller:             roller,
		SessionIDGenerator: idgen.NewUUID("session"),
		MonsterIDGenerator: idgen.NewUUID("monster"),
		DefeatPolicy:       engine.DefeatPolicy(cfg.DefeatPolicy),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}
	deps.engine = e

	return deps, cleanup, nil
}

// logFunc bridges the interceptor logger to slog; the middleware levels
// share slog's numbering
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}
