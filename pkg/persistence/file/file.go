// Package file provides file-based persistence for translation reports.
// Reports are stored one JSON document per file under <root>/reports.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flowlift/flowlift/pkg/models"
	"github.com/flowlift/flowlift/pkg/persistence"
)

// Persistence implements persistence.Persistence on the local file system.
type Persistence struct {
	root string
}

// NewPersistence creates a file-backed store rooted at the given directory.
// A "file://" prefix on root is accepted and stripped.
func NewPersistence(root string) (*Persistence, error) {
	cleanRoot := strings.TrimPrefix(root, "file://")

	if err := os.MkdirAll(filepath.Join(cleanRoot, "reports"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	return &Persistence{root: cleanRoot}, nil
}

// Close performs any necessary cleanup. For file-based persistence there is
// nothing to clean up.
func (p *Persistence) Close(_ context.Context) error {
	return nil
}

// HealthCheck verifies the root directory still exists.
func (p *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(p.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// Reports returns all stored reports sorted by creation time, newest first.
func (p *Persistence) Reports(_ context.Context) ([]*models.TranslationReport, error) {
	root := os.DirFS(p.reportsDir())

	jsonFiles, err := fs.Glob(root, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list report files: %w", err)
	}

	reports := make([]*models.TranslationReport, 0, len(jsonFiles))

	for _, file := range jsonFiles {
		report, err := p.readReport(filepath.Join(p.reportsDir(), file))
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

// SaveReport writes a report, overwriting any existing file with the same ID.
func (p *Persistence) SaveReport(_ context.Context, report *models.TranslationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return persistence.NewReportError("Save", report.ID, err)
	}

	if err := os.WriteFile(p.reportPath(report.ID), data, 0o644); err != nil {
		return persistence.NewReportError("Save", report.ID, err)
	}

	return nil
}

// ReportByID loads one report, or persistence.ErrReportNotFound.
func (p *Persistence) ReportByID(_ context.Context, id string) (*models.TranslationReport, error) {
	report, err := p.readReport(p.reportPath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, persistence.ErrReportNotFound
		}

		return nil, err
	}

	return report, nil
}

// DeleteReport removes a report, or persistence.ErrReportNotFound when no
// such report exists.
func (p *Persistence) DeleteReport(_ context.Context, id string) error {
	err := os.Remove(p.reportPath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return persistence.ErrReportNotFound
		}

		return persistence.NewReportError("Delete", id, err)
	}

	return nil
}

func (p *Persistence) reportsDir() string {
	return filepath.Join(p.root, "reports")
}

func (p *Persistence) reportPath(id string) string {
	return filepath.Join(p.reportsDir(), id+".json")
}

func (p *Persistence) readReport(path string) (*models.TranslationReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var report models.TranslationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report file %s: %w", path, err)
	}

	return &report, nil
}
