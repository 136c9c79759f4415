package translator

import (
	"testing"

	"github.com/flowlift/flowlift/pkg/models"
)

func triggerNode(name, nodeType string, params map[string]any) *models.Node {
	if params == nil {
		params = make(map[string]any)
	}

	return &models.Node{Name: name, Type: nodeType, Parameters: params}
}

func TestTranslate_WebhookDefaults(t *testing.T) {
	node := triggerNode("Incoming hook", "n8n-nodes-base.webhook", nil)

	descriptors := TranslateTriggers([]*models.Node{node}, "")
	if len(descriptors) != 1 {
		t.Fatalf("Expected 1 descriptor, got %d", len(descriptors))
	}

	d := descriptors[0]
	if d.Kind != models.TriggerKindWebhook {
		t.Fatalf("Expected webhook kind, got %s", d.Kind)
	}

	if d.SourceNodeName != "Incoming hook" {
		t.Errorf("Expected source node name to be carried, got %q", d.SourceNodeName)
	}

	cfg := d.Webhook
	if cfg.Method != "POST" || cfg.Path != "/webhook" {
		t.Errorf("Unexpected defaults: method=%q path=%q", cfg.Method, cfg.Path)
	}

	if cfg.AuthMode != "none" || cfg.ResponseMode != "onReceived" {
		t.Errorf("Unexpected defaults: auth=%q response=%q", cfg.AuthMode, cfg.ResponseMode)
	}

	if cfg.FullURL != "" {
		t.Errorf("Expected empty full URL without base URL, got %q", cfg.FullURL)
	}
}

func TestTranslate_WebhookWithParameters(t *testing.T) {
	node := triggerNode("Intake", "webhook.trigger", map[string]any{
		"path":       "/intake",
		"httpMethod": "PUT",
	})

	descriptors := TranslateTriggers([]*models.Node{node}, "https://x.example")

	cfg := descriptors[0].Webhook
	if cfg.Method != "PUT" {
		t.Errorf("Expected method PUT, got %q", cfg.Method)
	}

	if cfg.Path != "/intake" {
		t.Errorf("Expected path /intake, got %q", cfg.Path)
	}

	if cfg.FullURL != "https://x.example/intake" {
		t.Errorf("Expected joined URL, got %q", cfg.FullURL)
	}
}

func TestTranslate_WebhookPathWithoutLeadingSlash(t *testing.T) {
	node := triggerNode("Hook", "n8n-nodes-base.webhook", map[string]any{"path": "orders"})

	descriptors := TranslateTriggers([]*models.Node{node}, "https://x.example")

	cfg := descriptors[0].Webhook
	if cfg.Path != "/orders" {
		t.Errorf("Expected normalized path /orders, got %q", cfg.Path)
	}

	if cfg.FullURL != "https://x.example/orders" {
		t.Errorf("Expected joined URL, got %q", cfg.FullURL)
	}
}

func TestTranslate_DispatchPriority(t *testing.T) {
	// A type matching both webhook and cron substrings must classify as
	// webhook: rule order decides.
	node := triggerNode("Both", "custom.webhookCronTrigger", nil)

	descriptors := TranslateTriggers([]*models.Node{node}, "")
	if descriptors[0].Kind != models.TriggerKindWebhook {
		t.Errorf("Expected webhook to win dispatch, got %s", descriptors[0].Kind)
	}
}

func TestTranslate_ScheduleCronString(t *testing.T) {
	node := triggerNode("Nightly", "n8n-nodes-base.cron", map[string]any{
		"cronExpression": "0 3 * * *",
	})

	descriptors := TranslateTriggers([]*models.Node{node}, "")

	d := descriptors[0]
	if d.Kind != models.TriggerKindSchedule {
		t.Fatalf("Expected schedule kind, got %s", d.Kind)
	}

	cfg := d.Schedule
	if cfg.CronExpression != "0 3 * * *" {
		t.Errorf("Expected cron expression, got %q", cfg.CronExpression)
	}

	if !cfg.CronValid {
		t.Error("Expected a parseable cron expression to be marked valid")
	}

	if cfg.Timezone != "UTC" {
		t.Errorf("Expected default timezone UTC, got %q", cfg.Timezone)
	}
}

func TestTranslate_ScheduleIntervalForm(t *testing.T) {
	node := triggerNode("Every hour", "n8n-nodes-base.scheduleTrigger", map[string]any{
		"rule": map[string]any{
			"interval": []any{
				map[string]any{"field": "hours", "hoursInterval": float64(1)},
			},
		},
	})

	descriptors := TranslateTriggers([]*models.Node{node}, "")

	cfg := descriptors[0].Schedule
	if cfg.CronExpression != "" {
		t.Errorf("Expected empty cron expression for interval form, got %q", cfg.CronExpression)
	}

	if cfg.IntervalSpec == nil {
		t.Fatal("Expected interval spec to be extracted")
	}

	if cfg.IntervalSpec["field"] != "hours" {
		t.Errorf("Expected first interval element, got %+v", cfg.IntervalSpec)
	}
}

func TestTranslate_ScheduleInvalidCronMarked(t *testing.T) {
	node := triggerNode("Broken", "schedule.trigger", map[string]any{
		"cronExpression": "not a cron",
	})

	descriptors := TranslateTriggers([]*models.Node{node}, "")

	cfg := descriptors[0].Schedule
	if cfg.CronExpression != "not a cron" {
		t.Errorf("Expected expression preserved, got %q", cfg.CronExpression)
	}

	if cfg.CronValid {
		t.Error("Expected unparseable cron expression to be marked invalid")
	}
}

func TestTranslate_Manual(t *testing.T) {
	node := triggerNode("Run it", "n8n-nodes-base.manualTrigger", nil)

	descriptors := TranslateTriggers([]*models.Node{node}, "")

	d := descriptors[0]
	if d.Kind != models.TriggerKindManual {
		t.Fatalf("Expected manual kind, got %s", d.Kind)
	}

	if d.Manual.Description != "Manually triggered" {
		t.Errorf("Unexpected description: %q", d.Manual.Description)
	}
}

func TestTranslate_PollingFallback(t *testing.T) {
	node := triggerNode("Inbox", "n8n-nodes-base.imapTrigger", map[string]any{
		"resource": "message",
		"pollTimes": map[string]any{
			"item": []any{
				map[string]any{"mode": "everyMinute"},
			},
		},
	})

	// imapTrigger matches no specific rule, so it falls through to polling.
	descriptors := TranslateTriggers([]*models.Node{node}, "")

	d := descriptors[0]
	if d.Kind != models.TriggerKindPolling {
		t.Fatalf("Expected polling fallback, got %s", d.Kind)
	}

	if d.Polling.Resource != "message" {
		t.Errorf("Expected resource 'message', got %q", d.Polling.Resource)
	}

	if d.Polling.PollIntervalSpec["mode"] != "everyMinute" {
		t.Errorf("Expected poll interval spec extracted, got %+v", d.Polling.PollIntervalSpec)
	}
}

func TestTranslate_PollingEmptyConfig(t *testing.T) {
	node := triggerNode("Bare", "vendor.pollerTrigger", nil)

	descriptors := TranslateTriggers([]*models.Node{node}, "")

	d := descriptors[0]
	if d.Kind != models.TriggerKindPolling {
		t.Fatalf("Expected polling fallback, got %s", d.Kind)
	}

	if d.Polling.Resource != "" || d.Polling.PollIntervalSpec != nil {
		t.Error("Expected empty-but-present polling config")
	}
}

func TestTranslate_OneDescriptorPerTrigger(t *testing.T) {
	triggers := []*models.Node{
		triggerNode("A", "n8n-nodes-base.webhook", nil),
		triggerNode("B", "n8n-nodes-base.cron", nil),
		triggerNode("C", "n8n-nodes-base.manualTrigger", nil),
		triggerNode("D", "custom.fooTrigger", nil),
	}

	descriptors := TranslateTriggers(triggers, "")
	if len(descriptors) != len(triggers) {
		t.Fatalf("Expected %d descriptors, got %d", len(triggers), len(descriptors))
	}

	for i, d := range descriptors {
		if d.SourceNodeName != triggers[i].Name {
			t.Errorf("Descriptor %d traces to %q, want %q", i, d.SourceNodeName, triggers[i].Name)
		}
	}
}
