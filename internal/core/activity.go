package core

import (
	"matchdash/internal/activity"
	"matchdash/internal/models"
)

func NewActivityLogger(config models.ActivityConfiguration) activity.IActivityLogger {
	switch config.Type {
	case "filesystem":
		return activity.NewFilesystemClient(config)
	default:
		return activity.NopLogger{}
	}
}
