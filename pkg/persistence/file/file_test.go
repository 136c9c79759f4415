package file

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlift/flowlift/pkg/models"
	"github.com/flowlift/flowlift/pkg/persistence"
)

func setupStore(t *testing.T) *Persistence {
	t.Helper()

	store, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	return store
}

func sampleReport(id string, createdAt time.Time) *models.TranslationReport {
	return &models.TranslationReport{
		ID:            id,
		WorkflowName:  "Order intake",
		NodeCount:     4,
		TriggerCount:  1,
		MappedCount:   3,
		UnmappedCount: 1,
		Coverage:      0.75,
		UnmappedTypes: []string{"vendor.custom"},
		Triggers: []models.TriggerDescriptor{
			{
				Kind:           models.TriggerKindWebhook,
				SourceNodeName: "Hook",
				Webhook: &models.WebhookConfig{
					Method: "POST",
					Path:   "/webhook",
				},
			},
		},
		Variables: []string{"API_KEY"},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestFilePersistence_SaveAndGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	report := sampleReport("report-1", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.SaveReport(ctx, report))

	loaded, err := store.ReportByID(ctx, "report-1")
	require.NoError(t, err)

	assert.Equal(t, report.WorkflowName, loaded.WorkflowName)
	assert.Equal(t, report.Coverage, loaded.Coverage)
	assert.Equal(t, report.UnmappedTypes, loaded.UnmappedTypes)
	require.Len(t, loaded.Triggers, 1)
	assert.Equal(t, models.TriggerKindWebhook, loaded.Triggers[0].Kind)
}

func TestFilePersistence_GetMissing(t *testing.T) {
	store := setupStore(t)

	_, err := store.ReportByID(context.Background(), "nope")
	assert.ErrorIs(t, err, persistence.ErrReportNotFound)
}

func TestFilePersistence_ListSortedNewestFirst(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.SaveReport(ctx, sampleReport("old", base.Add(-time.Hour))))
	require.NoError(t, store.SaveReport(ctx, sampleReport("new", base)))

	reports, err := store.Reports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "new", reports[0].ID)
	assert.Equal(t, "old", reports[1].ID)
}

func TestFilePersistence_Delete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveReport(ctx, sampleReport("gone", time.Now().UTC())))
	require.NoError(t, store.DeleteReport(ctx, "gone"))

	_, err := store.ReportByID(ctx, "gone")
	assert.ErrorIs(t, err, persistence.ErrReportNotFound)

	assert.ErrorIs(t, store.DeleteReport(ctx, "gone"), persistence.ErrReportNotFound)
}

func TestFilePersistence_HealthCheck(t *testing.T) {
	store := setupStore(t)

	assert.NoError(t, store.HealthCheck(context.Background()))
}
