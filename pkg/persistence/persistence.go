// Package persistence provides the storage abstraction for translation
// reports.
package persistence

import (
	"context"

	"github.com/flowlift/flowlift/pkg/models"
)

type Persistence interface {
	Reports(ctx context.Context) ([]*models.TranslationReport, error)
	SaveReport(ctx context.Context, report *models.TranslationReport) error
	ReportByID(ctx context.Context, id string) (*models.TranslationReport, error)
	DeleteReport(ctx context.Context, id string) error
	HealthCheck(ctx context.Context) error

	Close(ctx context.Context) error
}
