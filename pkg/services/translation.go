package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/flowlift/flowlift/pkg/mapper"
	"github.com/flowlift/flowlift/pkg/models"
	"github.com/flowlift/flowlift/pkg/otelhelper"
	"github.com/flowlift/flowlift/pkg/parser"
	"github.com/flowlift/flowlift/pkg/persistence"
	"github.com/flowlift/flowlift/pkg/translator"
)

const tracerName = "github.com/flowlift/flowlift/pkg/services"

// TranslateRequest carries one document through the full pipeline.
type TranslateRequest struct {
	Document     []byte
	MappingTable map[string]string
	Overrides    map[string]string
	BaseURL      string
}

// TranslateResult bundles the raw pipeline outputs with the report built
// from them.
type TranslateResult struct {
	Workflow *models.Workflow           `json:"workflow"`
	Mapping  models.MapResult           `json:"mapping"`
	Triggers []models.TriggerDescriptor `json:"triggers"`
	Report   *models.TranslationReport  `json:"report"`
}

// Translation orchestrates parse, node mapping and trigger translation, and
// optionally persists the resulting report. The store may be nil, in which
// case report lookups fail with ErrNoStoreAvailable and Translate skips
// persisting.
type Translation struct {
	persistence persistence.Persistence
	tracer      trace.Tracer
	logger      *slog.Logger
}

// NewTranslation creates a new translation service.
func NewTranslation(store persistence.Persistence, logger *slog.Logger) *Translation {
	return &Translation{
		persistence: store,
		tracer:      otel.Tracer(tracerName),
		logger:      logger,
	}
}

// HealthCheck checks the health of the persistence layer.
func (t *Translation) HealthCheck(ctx context.Context) (string, bool) {
	if t.persistence == nil {
		return "No report store configured", true
	}

	err := t.persistence.HealthCheck(ctx)
	if err != nil {
		return "Report store is unhealthy: " + err.Error(), false
	}

	return "Report store is healthy", true
}

// Parse runs only the parser stage.
func (t *Translation) Parse(ctx context.Context, document []byte) (*models.Workflow, error) {
	_, span := otelhelper.StartSpan(ctx, t.tracer, "translation.parse",
		attribute.Int(otelhelper.DocumentSizeKey, len(document)),
	)
	defer span.End()

	if len(document) == 0 {
		return nil, NewValidationError("Parse", "empty_document", "document is empty", ErrEmptyDocument)
	}

	workflow, err := parser.Parse(document)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, NewValidationError("Parse", "invalid_document", err.Error(), errors.Join(ErrInvalidDocument, err))
	}

	span.SetAttributes(
		attribute.String(otelhelper.WorkflowNameKey, workflow.Name),
		attribute.Int(otelhelper.NodeCountKey, len(workflow.Nodes)),
	)

	return workflow, nil
}

// Translate runs the full pipeline. Node mapping and trigger translation
// both only read the parsed workflow, so they run concurrently.
func (t *Translation) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	ctx, span := otelhelper.StartSpan(ctx, t.tracer, "translation.translate",
		attribute.Int(otelhelper.DocumentSizeKey, len(req.Document)),
	)
	defer span.End()

	workflow, err := t.Parse(ctx, req.Document)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	var (
		mapping  models.MapResult
		triggers []models.TriggerDescriptor
	)

	group, _ := errgroup.WithContext(ctx)

	group.Go(func() error {
		mapping = mapper.MapNodes(workflow.Nodes, req.MappingTable, req.Overrides)

		return nil
	})

	group.Go(func() error {
		triggers = translator.TranslateTriggers(workflow.Triggers, req.BaseURL)

		return nil
	})

	_ = group.Wait()

	report := buildReport(workflow, mapping, triggers)

	span.SetAttributes(
		attribute.String(otelhelper.WorkflowNameKey, workflow.Name),
		attribute.Int(otelhelper.NodeCountKey, report.NodeCount),
		attribute.Int(otelhelper.TriggerCountKey, report.TriggerCount),
		attribute.Float64(otelhelper.CoverageKey, report.Coverage),
		attribute.String(otelhelper.ReportIDKey, report.ID),
	)

	if t.persistence != nil {
		if err := t.persistence.SaveReport(ctx, report); err != nil {
			otelhelper.SetError(span, err)

			return nil, err
		}

		t.logger.InfoContext(ctx, "Saved translation report",
			"report_id", report.ID,
			"workflow", report.WorkflowName,
			"coverage", report.Coverage,
		)
	}

	return &TranslateResult{
		Workflow: workflow,
		Mapping:  mapping,
		Triggers: triggers,
		Report:   report,
	}, nil
}

// ListReports returns all persisted reports.
func (t *Translation) ListReports(ctx context.Context) ([]*models.TranslationReport, error) {
	if t.persistence == nil {
		return nil, ErrNoStoreAvailable
	}

	return t.persistence.Reports(ctx)
}

// GetReport returns one persisted report by ID.
func (t *Translation) GetReport(ctx context.Context, id string) (*models.TranslationReport, error) {
	if t.persistence == nil {
		return nil, ErrNoStoreAvailable
	}

	if id == "" {
		return nil, NewValidationError("GetReport", "empty_report_id", "report ID is required", ErrEmptyReportID)
	}

	return t.persistence.ReportByID(ctx, id)
}

// DeleteReport removes one persisted report by ID.
func (t *Translation) DeleteReport(ctx context.Context, id string) error {
	if t.persistence == nil {
		return ErrNoStoreAvailable
	}

	if id == "" {
		return NewValidationError("DeleteReport", "empty_report_id", "report ID is required", ErrEmptyReportID)
	}

	return t.persistence.DeleteReport(ctx, id)
}

func buildReport(workflow *models.Workflow, mapping models.MapResult, triggers []models.TriggerDescriptor) *models.TranslationReport {
	now := time.Now().UTC()

	return &models.TranslationReport{
		ID:                 uuid.New().String(),
		WorkflowName:       workflow.Name,
		NodeCount:          len(workflow.Nodes),
		TriggerCount:       len(workflow.Triggers),
		MappedCount:        len(mapping.Mapped),
		UnmappedCount:      len(mapping.Unmapped),
		Coverage:           mapping.Coverage,
		UnmappedTypes:      unmappedTypes(mapping.Unmapped),
		Triggers:           triggers,
		Variables:          workflow.Variables,
		SkippedConnections: workflow.Stats.SkippedConnections,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func unmappedTypes(unmapped []models.MappingEntry) []string {
	seen := make(map[string]struct{})

	for _, entry := range unmapped {
		seen[entry.Node.Type] = struct{}{}
	}

	types := make([]string, 0, len(seen))
	for nodeType := range seen {
		types = append(types, nodeType)
	}

	sort.Strings(types)

	return types
}
