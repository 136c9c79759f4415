package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrations(t *testing.T) {
	m := migrations()

	migration, exists := m[1]
	assert.True(t, exists, "Migration version 1 should exist")
	assert.Contains(t, migration, "CREATE TABLE translation_reports", "Should create translation_reports table")
	assert.Contains(t, migration, "idx_translation_reports_created_at", "Should index created_at")
	assert.Contains(t, migration, "idx_translation_reports_workflow_name", "Should index workflow_name")
}

func TestMigrations_ReportColumnsCovered(t *testing.T) {
	migration := migrations()[1]

	columns := []string{
		"workflow_name",
		"node_count",
		"trigger_count",
		"mapped_count",
		"unmapped_count",
		"coverage",
		"unmapped_types",
		"triggers",
		"variables",
		"skipped_connections",
	}

	for _, column := range columns {
		assert.Contains(t, migration, column, "Migration should define column %s", column)
	}
}
