package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type App struct {
	Port    string `env:"PORT,default=8787"`
	LogMode string `env:"LOG_MODE,default=development"`

	OpenAIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL  string        `env:"OPENAI_BASE_URL,default=https://api.openai.com"`
	OpenAIModel    string        `env:"OPENAI_MODEL,default=gpt-5.2"`
	OpenAIJobModel string        `env:"OPENAI_JOB_MODEL,default=gpt-4o"`
	OpenAITimeout  time.Duration `env:"OPENAI_TIMEOUT,default=45s"`

	DefaultUserID      string `env:"DEFAULT_USER_ID,default=demo-user"`
	DefaultWorkspaceID string `env:"DEFAULT_WORKSPACE_ID,default=demo-workspace"`

	QueueBackend      string        `env:"QUEUE_BACKEND,default=memory"`
	RedisURL          string        `env:"REDIS_URL,default=redis://localhost:6379/0"`
	WorkerConcurrency int           `env:"WORKER_CONCURRENCY,default=5"`
	JobStepRetries    int           `env:"JOB_STEP_RETRIES,default=2"`
	PublishRetries    int           `env:"PUBLISH_RETRIES,default=3"`
	PublishDelay      time.Duration `env:"PUBLISH_DELAY,default=2s"`
	StaleJobAfter     time.Duration `env:"STALE_JOB_AFTER,default=2m"`

	ContentGenerationCost int `env:"CONTENT_GENERATION_COST,default=5"`
	TrendResearchCost     int `env:"TREND_RESEARCH_COST,default=10"`

	BootstrapCacheTTL     time.Duration `env:"BOOTSTRAP_CACHE_TTL,default=10m"`
	BootstrapCacheBackend string        `env:"BOOTSTRAP_CACHE_BACKEND,default=memory"`

	StatsRefreshCron     string `env:"STATS_REFRESH_CRON,default=0 */6 * * *"`
	AnalyticsRefreshCron string `env:"ANALYTICS_REFRESH_CRON,default=0 2 * * *"`
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// to help with testing
var envProcess = envconfig.Process

func LoadConfigFromEnv(ctx context.Context) (*App, error) {
	var cfg App
	if err := envProcess(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func validateConfig(cfg *App) error {
	var errors []string

	if cfg.QueueBackend != BackendMemory && cfg.QueueBackend != BackendRedis {
		errors = append(errors, "QUEUE_BACKEND must be memory or redis")
	}
	if cfg.BootstrapCacheBackend != BackendMemory && cfg.BootstrapCacheBackend != BackendRedis {
		errors = append(errors, "BOOTSTRAP_CACHE_BACKEND must be memory or redis")
	}
	if (cfg.QueueBackend == BackendRedis || cfg.BootstrapCacheBackend == BackendRedis) &&
		strings.TrimSpace(cfg.RedisURL) == "" {
		errors = append(errors, "REDIS_URL is required for the redis backend")
	}

	if cfg.WorkerConcurrency < 1 {
		errors = append(errors, "WORKER_CONCURRENCY must be at least 1")
	}
	if cfg.JobStepRetries < 0 {
		errors = append(errors, "JOB_STEP_RETRIES must be non-negative")
	}
	if cfg.PublishRetries < 0 {
		errors = append(errors, "PUBLISH_RETRIES must be non-negative")
	}
	if cfg.ContentGenerationCost < 0 || cfg.TrendResearchCost < 0 {
		errors = append(errors, "job costs must be non-negative")
	}

	// Validate the external call stays bounded
	if cfg.OpenAITimeout <= 0 || cfg.OpenAITimeout > 5*time.Minute {
		errors = append(errors, "OPENAI_TIMEOUT must be between 0 and 5m")
	}

	if strings.TrimSpace(cfg.DefaultUserID) == "" {
		errors = append(errors, "DEFAULT_USER_ID is required")
	}
	if strings.TrimSpace(cfg.DefaultWorkspaceID) == "" {
		errors = append(errors, "DEFAULT_WORKSPACE_ID is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
