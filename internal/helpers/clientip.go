package helpers

import (
	"context"

	"matchdash/internal/models"
)

// ClientIPFromContext returns the address stored by the ClientIP middleware.
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(models.ClientIPKey{}).(string)
	return ip
}
