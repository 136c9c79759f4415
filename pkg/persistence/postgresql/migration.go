package postgresql

func migrations() map[int]string {
	return map[int]string{
		1: `
			-- Create translation_reports table
			CREATE TABLE translation_reports (
				id UUID PRIMARY KEY,
				workflow_name VARCHAR(255) NOT NULL,
				node_count INT NOT NULL DEFAULT 0,
				trigger_count INT NOT NULL DEFAULT 0,
				mapped_count INT NOT NULL DEFAULT 0,
				unmapped_count INT NOT NULL DEFAULT 0,
				coverage DOUBLE PRECISION NOT NULL DEFAULT 0,
				unmapped_types JSONB NOT NULL DEFAULT '[]',
				triggers JSONB NOT NULL DEFAULT '[]',
				variables JSONB NOT NULL DEFAULT '[]',
				skipped_connections INT NOT NULL DEFAULT 0,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL
			);

			CREATE INDEX idx_translation_reports_workflow_name ON translation_reports(workflow_name);
			CREATE INDEX idx_translation_reports_created_at ON translation_reports(created_at);
		`,
	}
}
