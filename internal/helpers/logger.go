package helpers

import (
	"context"

	"matchdash/internal/models"

	"go.uber.org/zap"
)

// GetLogger returns the request scoped logger, or the global one outside a request.
func GetLogger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(models.LoggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}
