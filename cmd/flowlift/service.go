package main

import (
	"context"
	"log/slog"

	"github.com/flowlift/flowlift/pkg/cmd"
	"github.com/flowlift/flowlift/pkg/services"
)

// newTranslationService wires a translation service with an optional report
// store. The returned cleanup closes the store and is safe to call even when
// no store was configured.
func newTranslationService(ctx context.Context, logger *slog.Logger, databaseURL string) (*services.Translation, func(context.Context), error) {
	if databaseURL == "" {
		return services.NewTranslation(nil, logger), func(context.Context) {}, nil
	}

	store, err := cmd.NewPersistence(ctx, logger, databaseURL)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func(ctx context.Context) {
		if err := store.Close(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to close report store", "error", err)
		}
	}

	return services.NewTranslation(store, logger), cleanup, nil
}
