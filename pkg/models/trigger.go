package models

// TriggerKind classifies a translated trigger.
type TriggerKind string

const (
	TriggerKindWebhook  TriggerKind = "webhook"
	TriggerKindSchedule TriggerKind = "schedule"
	TriggerKindManual   TriggerKind = "manual"
	TriggerKindPolling  TriggerKind = "polling"
)

// TriggerDescriptor is the target-native form of a trigger node. Exactly one
// of the kind-specific config fields is set, matching Kind.
type TriggerDescriptor struct {
	Kind TriggerKind `json:"kind"`

	// SourceNodeName traces the descriptor back to the originating node.
	SourceNodeName string `json:"source_node_name"`

	Webhook  *WebhookConfig  `json:"webhook,omitempty"`
	Schedule *ScheduleConfig `json:"schedule,omitempty"`
	Manual   *ManualConfig   `json:"manual,omitempty"`
	Polling  *PollingConfig  `json:"polling,omitempty"`
}

// WebhookConfig describes an HTTP-endpoint trigger.
type WebhookConfig struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	FullURL      string `json:"full_url"`
	AuthMode     string `json:"auth_mode"`
	ResponseMode string `json:"response_mode"`
}

// ScheduleConfig describes a time-based trigger. CronExpression may be empty
// when the source used an interval-object form instead of a cron string.
type ScheduleConfig struct {
	CronExpression string         `json:"cron_expression"`
	CronValid      bool           `json:"cron_valid"`
	IntervalSpec   map[string]any `json:"interval_spec,omitempty"`
	Timezone       string         `json:"timezone"`
}

// ManualConfig describes a human-initiated trigger.
type ManualConfig struct {
	Description string `json:"description"`
}

// PollingConfig is the fallback for trigger nodes that are neither webhook,
// schedule nor manual. Both fields are best-effort and may be empty.
type PollingConfig struct {
	PollIntervalSpec map[string]any `json:"poll_interval_spec,omitempty"`
	Resource         string         `json:"resource"`
}
