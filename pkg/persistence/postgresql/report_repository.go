package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flowlift/flowlift/pkg/models"
	"github.com/flowlift/flowlift/pkg/persistence"
)

// ReportRepository handles translation-report database operations.
type ReportRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *sql.DB, logger *slog.Logger) *ReportRepository {
	return &ReportRepository{db: db, logger: logger}
}

const reportColumns = `
	id
  , workflow_name
  , node_count
  , trigger_count
  , mapped_count
  , unmapped_count
  , coverage
  , unmapped_types
  , triggers
  , variables
  , skipped_connections
  , created_at
  , updated_at
`

// GetAll returns all translation reports, newest first.
func (r *ReportRepository) GetAll(ctx context.Context) ([]*models.TranslationReport, error) {
	query := `SELECT` + reportColumns + `FROM translation_reports ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}

	defer func() {
		if err := rows.Close(); err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	reports := make([]*models.TranslationReport, 0)

	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return reports, nil
}

// GetByID returns one report, or persistence.ErrReportNotFound.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*models.TranslationReport, error) {
	query := `SELECT` + reportColumns + `FROM translation_reports WHERE id = $1`

	report, err := scanReport(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrReportNotFound
		}

		return nil, fmt.Errorf("failed to scan report: %w", err)
	}

	return report, nil
}

// Save upserts a report by ID.
func (r *ReportRepository) Save(ctx context.Context, report *models.TranslationReport) error {
	unmappedTypes, err := json.Marshal(report.UnmappedTypes)
	if err != nil {
		return persistence.NewReportError("Save", report.ID, err)
	}

	triggers, err := json.Marshal(report.Triggers)
	if err != nil {
		return persistence.NewReportError("Save", report.ID, err)
	}

	variables, err := json.Marshal(report.Variables)
	if err != nil {
		return persistence.NewReportError("Save", report.ID, err)
	}

	query := `
		INSERT INTO translation_reports (
			id, workflow_name, node_count, trigger_count, mapped_count,
			unmapped_count, coverage, unmapped_types, triggers, variables,
			skipped_connections, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			workflow_name = EXCLUDED.workflow_name,
			node_count = EXCLUDED.node_count,
			trigger_count = EXCLUDED.trigger_count,
			mapped_count = EXCLUDED.mapped_count,
			unmapped_count = EXCLUDED.unmapped_count,
			coverage = EXCLUDED.coverage,
			unmapped_types = EXCLUDED.unmapped_types,
			triggers = EXCLUDED.triggers,
			variables = EXCLUDED.variables,
			skipped_connections = EXCLUDED.skipped_connections,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		report.ID,
		report.WorkflowName,
		report.NodeCount,
		report.TriggerCount,
		report.MappedCount,
		report.UnmappedCount,
		report.Coverage,
		unmappedTypes,
		triggers,
		variables,
		report.SkippedConnections,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return persistence.NewReportError("Save", report.ID, err)
	}

	return nil
}

// Delete removes a report by ID, or persistence.ErrReportNotFound.
func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM translation_reports WHERE id = $1", id)
	if err != nil {
		return persistence.NewReportError("Delete", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return persistence.NewReportError("Delete", id, err)
	}

	if affected == 0 {
		return persistence.ErrReportNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*models.TranslationReport, error) {
	var (
		report        models.TranslationReport
		unmappedTypes []byte
		triggers      []byte
		variables     []byte
	)

	err := row.Scan(
		&report.ID,
		&report.WorkflowName,
		&report.NodeCount,
		&report.TriggerCount,
		&report.MappedCount,
		&report.UnmappedCount,
		&report.Coverage,
		&unmappedTypes,
		&triggers,
		&variables,
		&report.SkippedConnections,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(unmappedTypes, &report.UnmappedTypes); err != nil {
		return nil, fmt.Errorf("failed to decode unmapped_types: %w", err)
	}

	if err := json.Unmarshal(triggers, &report.Triggers); err != nil {
		return nil, fmt.Errorf("failed to decode triggers: %w", err)
	}

	if err := json.Unmarshal(variables, &report.Variables); err != nil {
		return nil, fmt.Errorf("failed to decode variables: %w", err)
	}

	return &report, nil
}
