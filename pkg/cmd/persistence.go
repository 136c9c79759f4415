// Package cmd provides shared construction helpers for the flowlift command
// line entrypoints.
package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/flowlift/flowlift/pkg/persistence"
	"github.com/flowlift/flowlift/pkg/persistence/file"
	"github.com/flowlift/flowlift/pkg/persistence/postgresql"
)

// NewPersistence selects a report store implementation by URL scheme:
// postgres:// and postgresql:// select PostgreSQL, anything else is treated
// as a file system root.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) (persistence.Persistence, error) {
	switch parseProvider(databaseURL) {
	case "postgres", "postgresql":
		return postgresql.NewPersistence(ctx, logger, databaseURL)
	default:
		return file.NewPersistence(databaseURL)
	}
}

func parseProvider(databaseURL string) string {
	scheme, _, found := strings.Cut(databaseURL, "://")
	if !found {
		return "file"
	}

	return scheme
}
