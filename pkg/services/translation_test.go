package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlift/flowlift/pkg/log"
	"github.com/flowlift/flowlift/pkg/models"
	"github.com/flowlift/flowlift/pkg/persistence/file"
)

const sampleDocument = `{
	"name": "Order sync",
	"nodes": [
		{
			"id": "1",
			"name": "Hook",
			"type": "n8n-nodes-base.webhook",
			"parameters": {"path": "/orders", "httpMethod": "POST"}
		},
		{
			"id": "2",
			"name": "Fetch",
			"type": "n8n-nodes-base.httpRequest",
			"parameters": {"url": "{{ $env.API_BASE }}/orders"}
		},
		{
			"id": "3",
			"name": "Upload",
			"type": "vendor.unknownNode",
			"parameters": {}
		}
	],
	"connections": {
		"Hook": {"main": [[{"node": "Fetch"}]]},
		"Fetch": {"main": [[{"node": "Upload"}]]}
	}
}`

func newTestService(t *testing.T) *Translation {
	t.Helper()

	store, err := file.NewPersistence(t.TempDir())
	require.NoError(t, err)

	return NewTranslation(store, log.WithModule("test"))
}

func TestTranslate_FullPipeline(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	result, err := service.Translate(ctx, TranslateRequest{
		Document: []byte(sampleDocument),
		MappingTable: map[string]string{
			"n8n-nodes-base.webhook":     "trigger.webhook",
			"n8n-nodes-base.httpRequest": "http.call",
		},
		BaseURL: "https://target.example",
	})
	require.NoError(t, err)

	assert.Equal(t, "Order sync", result.Workflow.Name)
	assert.Len(t, result.Workflow.Nodes, 3)
	assert.Equal(t, []string{"API_BASE"}, result.Workflow.Variables)

	assert.Len(t, result.Mapping.Mapped, 2)
	assert.Len(t, result.Mapping.Unmapped, 1)
	assert.Equal(t, 0.6667, result.Mapping.Coverage)

	require.Len(t, result.Triggers, 1)
	trigger := result.Triggers[0]
	assert.Equal(t, models.TriggerKindWebhook, trigger.Kind)
	assert.Equal(t, "Hook", trigger.SourceNodeName)
	assert.Equal(t, "https://target.example/orders", trigger.Webhook.FullURL)

	report := result.Report
	require.NotNil(t, report)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 3, report.NodeCount)
	assert.Equal(t, 1, report.TriggerCount)
	assert.Equal(t, []string{"vendor.unknownNode"}, report.UnmappedTypes)
}

func TestTranslate_PersistsReport(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	result, err := service.Translate(ctx, TranslateRequest{Document: []byte(sampleDocument)})
	require.NoError(t, err)

	loaded, err := service.GetReport(ctx, result.Report.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Report.WorkflowName, loaded.WorkflowName)

	reports, err := service.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	require.NoError(t, service.DeleteReport(ctx, result.Report.ID))

	reports, err = service.ListReports(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestTranslate_WithoutStore(t *testing.T) {
	service := NewTranslation(nil, log.WithModule("test"))
	ctx := context.Background()

	result, err := service.Translate(ctx, TranslateRequest{Document: []byte(sampleDocument)})
	require.NoError(t, err)
	assert.NotNil(t, result.Report)

	_, err = service.ListReports(ctx)
	assert.ErrorIs(t, err, ErrNoStoreAvailable)

	_, err = service.GetReport(ctx, "any")
	assert.ErrorIs(t, err, ErrNoStoreAvailable)
}

func TestTranslate_EmptyDocument(t *testing.T) {
	service := NewTranslation(nil, log.WithModule("test"))

	_, err := service.Translate(context.Background(), TranslateRequest{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestTranslate_UndecodableDocument(t *testing.T) {
	service := NewTranslation(nil, log.WithModule("test"))

	_, err := service.Translate(context.Background(), TranslateRequest{Document: []byte("{broken")})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParse_OnlyParserStage(t *testing.T) {
	service := NewTranslation(nil, log.WithModule("test"))

	workflow, err := service.Parse(context.Background(), []byte(sampleDocument))
	require.NoError(t, err)

	assert.Len(t, workflow.Triggers, 1)
	assert.Len(t, workflow.Connections, 2)
}
