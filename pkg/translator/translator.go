// Package translator converts trigger nodes into target-native trigger
// descriptors.
package translator

import (
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/flowlift/flowlift/pkg/models"
)

// rule pairs a type predicate with a descriptor builder. Rules are tried in
// order and the first match wins, so classification precedence is explicit
// here rather than buried in a conditional chain: a type matching both
// "webhook" and "cron" is a webhook because that rule comes first.
type rule struct {
	match func(loweredType string) bool
	build func(node *models.Node, baseURL string) models.TriggerDescriptor
}

var rules = []rule{
	{
		match: func(t string) bool {
			return strings.Contains(t, "webhook")
		},
		build: buildWebhook,
	},
	{
		match: func(t string) bool {
			return strings.Contains(t, "cron") || strings.Contains(t, "schedule")
		},
		build: buildSchedule,
	},
	{
		match: func(t string) bool {
			return strings.Contains(t, "manual")
		},
		build: buildManual,
	},
	{
		// Fallback: anything that looked like a trigger but matched no
		// specific kind is treated as a poller.
		match: func(string) bool {
			return true
		},
		build: buildPolling,
	},
}

// TranslateTriggers produces one descriptor per trigger node. Missing or
// oddly shaped configuration degrades to empty-but-present fields; nothing
// here fails.
func TranslateTriggers(triggers []*models.Node, baseURL string) []models.TriggerDescriptor {
	descriptors := make([]models.TriggerDescriptor, 0, len(triggers))

	for _, node := range triggers {
		loweredType := strings.ToLower(node.Type)

		for _, r := range rules {
			if !r.match(loweredType) {
				continue
			}

			descriptors = append(descriptors, r.build(node, baseURL))

			break
		}
	}

	return descriptors
}

func buildWebhook(node *models.Node, baseURL string) models.TriggerDescriptor {
	method := stringParam(node.Parameters, "httpMethod", "")
	if method == "" {
		method = stringParam(node.Parameters, "method", "POST")
	}

	config := &models.WebhookConfig{
		Method:       strings.ToUpper(method),
		Path:         stringParam(node.Parameters, "path", "/webhook"),
		AuthMode:     stringParam(node.Parameters, "authentication", "none"),
		ResponseMode: stringParam(node.Parameters, "responseMode", "onReceived"),
	}

	if !strings.HasPrefix(config.Path, "/") {
		config.Path = "/" + config.Path
	}

	if baseURL != "" {
		config.FullURL = baseURL + config.Path
	}

	return models.TriggerDescriptor{
		Kind:           models.TriggerKindWebhook,
		SourceNodeName: node.Name,
		Webhook:        config,
	}
}

func buildSchedule(node *models.Node, _ string) models.TriggerDescriptor {
	config := &models.ScheduleConfig{
		CronExpression: stringParam(node.Parameters, "cronExpression", ""),
		Timezone:       stringParam(node.Parameters, "timezone", "UTC"),
	}

	// The interval-object form nests the real configuration under
	// rule.interval; the first element carries the cron string if any.
	if ruleValue, ok := node.Parameters["rule"].(map[string]any); ok {
		if interval, ok := ruleValue["interval"].([]any); ok && len(interval) > 0 {
			if first, ok := interval[0].(map[string]any); ok {
				config.IntervalSpec = first

				if config.CronExpression == "" {
					if expr, ok := first["expression"].(string); ok {
						config.CronExpression = expr
					}
				}
			}
		}
	}

	if config.CronExpression != "" {
		_, err := cron.ParseStandard(config.CronExpression)
		config.CronValid = err == nil
	}

	return models.TriggerDescriptor{
		Kind:           models.TriggerKindSchedule,
		SourceNodeName: node.Name,
		Schedule:       config,
	}
}

func buildManual(node *models.Node, _ string) models.TriggerDescriptor {
	return models.TriggerDescriptor{
		Kind:           models.TriggerKindManual,
		SourceNodeName: node.Name,
		Manual: &models.ManualConfig{
			Description: "Manually triggered",
		},
	}
}

func buildPolling(node *models.Node, _ string) models.TriggerDescriptor {
	config := &models.PollingConfig{
		Resource: stringParam(node.Parameters, "resource", ""),
	}

	if pollTimes, ok := node.Parameters["pollTimes"].(map[string]any); ok {
		if items, ok := pollTimes["item"].([]any); ok && len(items) > 0 {
			if first, ok := items[0].(map[string]any); ok {
				config.PollIntervalSpec = first
			}
		}
	}

	return models.TriggerDescriptor{
		Kind:           models.TriggerKindPolling,
		SourceNodeName: node.Name,
		Polling:        config,
	}
}

func stringParam(params map[string]any, key, fallback string) string {
	if value, ok := params[key].(string); ok && value != "" {
		return value
	}

	return fallback
}
