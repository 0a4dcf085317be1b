package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"idverify/internal/platform/config"
	"idverify/internal/platform/httpserver"
	"idverify/internal/platform/logger"
	platformredis "idverify/internal/platform/redis"
	"idverify/internal/sessiontoken"
	"idverify/internal/verification/adapters"
	"idverify/internal/verification/facematch"
	"idverify/internal/verification/handler"
	"idverify/internal/verification/liveness"
	"idverify/internal/verification/metrics"
	"idverify/internal/verification/ports"
	"idverify/internal/verification/service"
	"idverify/internal/verification/store"
	"idverify/pkg/platform/audit/publisher"
	auditmem "idverify/pkg/platform/audit/store/memory"
	"idverify/pkg/platform/middleware/metadata"
	"idverify/pkg/platform/middleware/requestid"
	"idverify/pkg/platform/middleware/requesttime"
)

// main wires the verification pipeline: config, stores, collaborator
// adapters, orchestrator, HTTP surface. Business logic lives in the internal
// packages; main only assembles and supervises.
func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New()

	records, cleanup, err := buildRecordStore(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	auditPublisher, closeAudit, err := buildAuditPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer closeAudit()

	httpClient := &http.Client{Timeout: cfg.Collaborators.Timeout}
	verificationMetrics := metrics.New()

	opts := []service.Option{
		service.WithLogger(log),
		service.WithAuditPublisher(auditPublisher),
		service.WithMetrics(verificationMetrics),
		service.WithAuditImagesLimit(cfg.AuditImagesLimit),
	}
	if cfg.SessionTokenKey != "" {
		opts = append(opts, service.WithSessionTokens(
			sessiontoken.NewIssuer(cfg.SessionTokenKey, cfg.SessionTokenTTL)))
	}

	svc, err := service.New(service.Deps{
		Records:   records,
		Analyzer:  adapters.NewHTTPDocumentAnalyzer(cfg.Collaborators.DocumentAnalysisURL, httpClient),
		Liveness:  adapters.NewHTTPLivenessProvider(cfg.Collaborators.LivenessURL, httpClient),
		Comparer:  adapters.NewHTTPFaceComparer(cfg.Collaborators.FaceCompareURL, httpClient),
		Images:    adapters.NewHTTPImageStore(cfg.Collaborators.ImageStoreURL, httpClient),
		Evaluator: liveness.NewEvaluator(cfg.MinLivenessConfidence),
		Matcher:   facematch.NewMatcher(cfg.FaceMatchThreshold),
	}, opts...)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(chimw.Recoverer)
	router.Use(requestid.Middleware)
	router.Use(requesttime.Middleware)
	router.Use(metadata.ClientMetadata)

	handler.New(svc, log, verificationMetrics).Register(router)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting idverify", "addr", cfg.Addr, "store", string(cfg.Store))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// buildRecordStore selects the record store backend. The returned cleanup
// closes the backing connection, nil when there is nothing to close.
func buildRecordStore(cfg config.Config) (ports.RecordStore, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewInMemoryRecordStore(), nil, nil

	case config.StoreRedis:
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		if client == nil {
			return nil, nil, errors.New("VERIFICATION_STORE=redis requires REDIS_URL")
		}
		return store.NewRedisRecordStore(client.Client), func() { _ = client.Close() }, nil

	case config.StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, errors.New("VERIFICATION_STORE=postgres requires DATABASE_URL")
		}
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		pg := store.NewPostgresRecordStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pg.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg, func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

// buildAuditPublisher sends audit events to Kafka when brokers are
// configured, otherwise to an in-process store.
func buildAuditPublisher(cfg config.Config, log *slog.Logger) (ports.AuditPublisher, func(), error) {
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := publisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		if err != nil {
			return nil, nil, fmt.Errorf("connect kafka: %w", err)
		}
		log.Info("audit events go to kafka", "topic", cfg.KafkaAuditTopic)
		return kp, kp.Close, nil
	}

	p := publisher.NewPublisher(auditmem.NewInMemoryStore(), publisher.WithAsyncBuffer(256))
	return p, p.Close, nil
}
