// Package postgresql provides PostgreSQL persistence for translation
// reports.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq" // postgres driver

	"github.com/flowlift/flowlift/pkg/models"
	"github.com/flowlift/flowlift/pkg/persistence/sqlbase"
)

// Persistence implements the persistence layer for PostgreSQL.
type Persistence struct {
	db         *sql.DB
	logger     *slog.Logger
	reportRepo *ReportRepository
}

// NewPersistence connects, runs migrations and returns a ready store.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (*Persistence, error) {
	database, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	err = database.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	migrationManager := sqlbase.NewMigrationManager(logger, database, migrations())

	err = migrationManager.RunMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Persistence{
		db:         database,
		logger:     logger,
		reportRepo: NewReportRepository(database, logger),
	}, nil
}

// Close closes the database connection.
func (p *Persistence) Close(_ context.Context) error {
	if p.db != nil {
		err := p.db.Close()
		if err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies the database connection is healthy.
func (p *Persistence) HealthCheck(ctx context.Context) error {
	err := p.db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// Reports returns all translation reports.
func (p *Persistence) Reports(ctx context.Context) ([]*models.TranslationReport, error) {
	return p.reportRepo.GetAll(ctx)
}

// ReportByID returns a report by its ID.
func (p *Persistence) ReportByID(ctx context.Context, id string) (*models.TranslationReport, error) {
	return p.reportRepo.GetByID(ctx, id)
}

// SaveReport saves a report to the database.
func (p *Persistence) SaveReport(ctx context.Context, report *models.TranslationReport) error {
	return p.reportRepo.Save(ctx, report)
}

// DeleteReport deletes a report by its ID.
func (p *Persistence) DeleteReport(ctx context.Context, id string) error {
	return p.reportRepo.Delete(ctx, id)
}
