package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Built-in defaults for the verification thresholds. A value explicitly
// configured through the environment always wins, including zero: threshold
// resolution goes through os.LookupEnv, never "value or default" truthiness.
const (
	DefaultMinLivenessConfidence = 90.0
	DefaultFaceMatchThreshold    = 80.0
	DefaultAuditImagesLimit      = 3
)

// StoreBackend selects the verification record store implementation.
type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StoreRedis    StoreBackend = "redis"
	StorePostgres StoreBackend = "postgres"
)

// IsValid checks that the backend is one of the supported values.
func (b StoreBackend) IsValid() bool {
	switch b {
	case StoreMemory, StoreRedis, StorePostgres:
		return true
	}
	return false
}

// RedisConfig carries connection settings for the Redis record store.
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Collaborators carries the base URLs of the external services the
// orchestrator talks to. Each is consumed through a port interface; the
// HTTP adapters only need an address and a timeout.
type Collaborators struct {
	DocumentAnalysisURL string
	LivenessURL         string
	FaceCompareURL      string
	ImageStoreURL       string
	Timeout             time.Duration
}

// Config is the process configuration assembled from the environment.
type Config struct {
	Addr string

	Store       StoreBackend
	Redis       RedisConfig
	DatabaseURL string

	MinLivenessConfidence float64
	FaceMatchThreshold    float64
	AuditImagesLimit      int

	Collaborators Collaborators

	SessionTokenKey string
	SessionTokenTTL time.Duration

	KafkaBrokers    []string
	KafkaAuditTopic string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:            envOrDefault("ID_VERIFY_ADDR", ":8080"),
		Store:           StoreBackend(envOrDefault("VERIFICATION_STORE", string(StoreMemory))),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SessionTokenKey: os.Getenv("SESSION_TOKEN_KEY"),
		KafkaAuditTopic: envOrDefault("KAFKA_AUDIT_TOPIC", "idverify.audit"),
	}

	if !cfg.Store.IsValid() {
		return Config{}, fmt.Errorf("unknown VERIFICATION_STORE %q", cfg.Store)
	}

	var err error
	if cfg.MinLivenessConfidence, err = envFloat("MIN_LIVENESS_CONFIDENCE", DefaultMinLivenessConfidence); err != nil {
		return Config{}, err
	}
	if cfg.FaceMatchThreshold, err = envFloat("FACE_MATCH_THRESHOLD", DefaultFaceMatchThreshold); err != nil {
		return Config{}, err
	}
	if cfg.AuditImagesLimit, err = envInt("AUDIT_IMAGES_LIMIT", DefaultAuditImagesLimit); err != nil {
		return Config{}, err
	}
	if cfg.SessionTokenTTL, err = envDuration("SESSION_TOKEN_TTL", 15*time.Minute); err != nil {
		return Config{}, err
	}

	cfg.Redis = RedisConfig{
		URL:          os.Getenv("REDIS_URL"),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	collaboratorTimeout, err := envDuration("COLLABORATOR_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.Collaborators = Collaborators{
		DocumentAnalysisURL: os.Getenv("DOCUMENT_ANALYSIS_URL"),
		LivenessURL:         os.Getenv("LIVENESS_URL"),
		FaceCompareURL:      os.Getenv("FACE_COMPARE_URL"),
		ImageStoreURL:       os.Getenv("IMAGE_STORE_URL"),
		Timeout:             collaboratorTimeout,
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envFloat distinguishes "explicitly configured" from "absent": a configured
// value of 0 is honored, only a missing variable falls back to the default.
func envFloat(key string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func envInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
