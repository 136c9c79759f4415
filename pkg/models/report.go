package models

import "time"

// TranslationReport is the persisted summary of one translation run: the
// parse output condensed to counts, the mapper partition, and the translated
// trigger descriptors.
type TranslationReport struct {
	ID           string `json:"id"`
	WorkflowName string `json:"workflow_name"`

	NodeCount     int     `json:"node_count"`
	TriggerCount  int     `json:"trigger_count"`
	MappedCount   int     `json:"mapped_count"`
	UnmappedCount int     `json:"unmapped_count"`
	Coverage      float64 `json:"coverage"`

	// UnmappedTypes lists the distinct node types without a target
	// capability, sorted, for manual follow-up.
	UnmappedTypes []string `json:"unmapped_types"`

	Triggers  []TriggerDescriptor `json:"triggers"`
	Variables []string            `json:"variables"`

	SkippedConnections int `json:"skipped_connections"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
