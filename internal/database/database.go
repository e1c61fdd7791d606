package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/config"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager owns the Postgres connection pool. GORM runs on top of the same
// pool so both data access paths share one set of connections.
type Manager struct {
	pool          *pgxpool.Pool
	db            *gorm.DB
	url           string
	migrationsDir string
}

// NewManager creates a new database manager
func NewManager(ctx context.Context, cfg *config.Config) (*Manager, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	poolConfig.MaxConns = 100
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: stdlib.OpenDBFromPool(pool),
	}), &gorm.Config{})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Manager{
		pool:          pool,
		db:            db,
		url:           cfg.PostgresURL(),
		migrationsDir: cfg.MigrationsDir,
	}, nil
}

// RunMigrations applies pending SQL migrations from the configured directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://"+m.migrationsDir, m.url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Pool returns the pgx connection pool
func (m *Manager) Pool() *pgxpool.Pool {
	return m.pool
}

// Close releases every pooled connection.
func (m *Manager) Close() {
	if sqlDB, err := m.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	m.pool.Close()
}
