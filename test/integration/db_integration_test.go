package integration

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	applog "github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/storage/postgres"
	"github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB   *sql.DB
	testDSN  string
	testPort string
)

// tables in delete order, children first
var tables = []string{
	"scheduled_posts", "content_items", "trend_topics", "trend_reports", "jobs",
	"dashboard_stats", "analytics_days", "weekly_analytics", "engagement_heatmaps",
	"platform_stats", "competitor_profiles", "users", "workspaces",
}

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	pool.MaxWait = 60 * time.Second

	if err := pool.Client.Ping(); err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	pg, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "17-alpine",
		Env: []string{
			"POSTGRES_USER=testuser",
			"POSTGRES_PASSWORD=testpass",
			"POSTGRES_DB=trendplanner",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start postgres container: %s", err)
	}

	testPort = pg.GetPort("5432/tcp")
	testDSN = fmt.Sprintf(
		"host=localhost user=testuser password=testpass dbname=trendplanner port=%s sslmode=disable TimeZone=UTC",
		testPort,
	)

	if err := pool.Retry(func() error {
		var err error
		testDB, err = sql.Open("postgres", testDSN)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := testDB.PingContext(ctx); err != nil {
			testDB.Close()
			return err
		}

		if err := postgres.RunMigrations(testDB); err != nil {
			log.Printf("Failed to run migrations: %v", err)
			testDB.Close()
			return err
		}
		return nil
	}); err != nil {
		log.Fatalf("Could not connect to postgres: %s", err)
	}

	os.Setenv("POSTGRES_USER", "testuser")
	os.Setenv("POSTGRES_PASSWORD", "testpass")
	os.Setenv("POSTGRES_DB", "trendplanner")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", testPort)
	os.Setenv("DB_MAX_RETRIES", "3")
	os.Setenv("DB_RETRY_DELAY", "100ms")
	os.Setenv("DB_LOG_LEVEL", "silent")

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}

	if err := pool.Purge(pg); err != nil {
		log.Fatalf("Could not purge postgres container: %s", err)
	}

	os.Exit(code)
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(filename), "../..", "migrations")
	_, err := os.Stat(dir)
	require.NoError(t, err, "migrations directory does not exist: %s", dir)
	return dir
}

func TestMigrations_DownAndUp(t *testing.T) {
	dir := migrationsDir(t)
	require.NoError(t, goose.SetDialect("postgres"))

	require.NoError(t, goose.DownTo(testDB, dir, 0))
	var n int
	require.NoError(t, testDB.QueryRow(
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name = 'jobs'`,
	).Scan(&n))
	assert.Equal(t, 0, n)

	require.NoError(t, goose.Up(testDB, dir))
	require.NoError(t, testDB.QueryRow(
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name::text = ANY($1)`,
		pq.Array(tables),
	).Scan(&n))
	assert.Equal(t, len(tables), n)
}

func TestConnectDB(t *testing.T) {
	tests := []struct {
		name        string
		config      *postgres.Config
		wantErr     bool
		errContains string
	}{
		{
			name:   "loads config from environment",
			config: nil,
		},
		{
			name: "explicit config",
			config: &postgres.Config{
				User:       "testuser",
				Password:   "testpass",
				Host:       "localhost",
				Port:       testPort,
				Database:   "trendplanner",
				MaxRetries: 3,
				RetryDelay: 100 * time.Millisecond,
				LogLevel:   logger.Silent,
			},
		},
		{
			name: "connection refused",
			config: &postgres.Config{
				User:       "testuser",
				Password:   "testpass",
				Host:       "localhost",
				Port:       "19999",
				Database:   "trendplanner",
				MaxRetries: 2,
				RetryDelay: 5 * time.Millisecond,
				LogLevel:   logger.Silent,
			},
			wantErr:     true,
			errContains: "database connection failed after 2 attempts",
		},
		{
			name: "invalid credentials",
			config: &postgres.Config{
				User:       "testuser",
				Password:   "wrongpass",
				Host:       "localhost",
				Port:       testPort,
				Database:   "trendplanner",
				MaxRetries: 2,
				RetryDelay: 5 * time.Millisecond,
				LogLevel:   logger.Silent,
			},
			wantErr:     true,
			errContains: "database connection failed after 2 attempts",
		},
		{
			name: "zero retries fails immediately",
			config: &postgres.Config{
				User:       "testuser",
				Password:   "testpass",
				Host:       "localhost",
				Port:       testPort,
				Database:   "trendplanner",
				MaxRetries: 0,
				LogLevel:   logger.Silent,
			},
			wantErr:     true,
			errContains: "database connection failed after 0 attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := postgres.ConnectDB(tt.config, applog.NewNop())

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, db)
				return
			}

			require.NoError(t, err)
			defer closeTestDB(db)

			var dbName string
			require.NoError(t, db.Raw("SELECT current_database()").Scan(&dbName).Error)
			assert.Equal(t, "trendplanner", dbName)

			sqlDB, err := db.DB()
			require.NoError(t, err)
			assert.Equal(t, 50, sqlDB.Stats().MaxOpenConnections)
		})
	}
}

// setupTestDB returns a fresh connection over emptied tables.
func setupTestDB(tb testing.TB) (*gorm.DB, context.Context) {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tb.Cleanup(cancel)

	db, err := postgres.ConnectDB(&postgres.Config{
		User:       "testuser",
		Password:   "testpass",
		Host:       "localhost",
		Port:       testPort,
		Database:   "trendplanner",
		MaxRetries: 3,
		RetryDelay: 100 * time.Millisecond,
		LogLevel:   logger.Silent,
	}, applog.NewNop())
	require.NoError(tb, err)

	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			tb.Logf("Warning: Failed to clean %s: %v", table, err)
		}
	}

	tb.Cleanup(func() {
		closeTestDB(db)
	})

	return db, ctx
}

func closeTestDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
