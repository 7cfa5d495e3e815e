package configuration

import (
	"matchdash/internal/models"

	"go.uber.org/zap"
)

const (
	ProfileDefault = "default"
	ProfileAPI     = "api"
	ProfileMigrate = "migrate"
)

// Profiles defines all available deployment profiles.
var Profiles = map[string]models.Profile{
	ProfileDefault: {
		Name:       ProfileDefault,
		HTTPServer: true,
		Migrations: true,
	},
	ProfileAPI: {
		Name:       ProfileAPI,
		HTTPServer: true,
		Migrations: false,
	},
	ProfileMigrate: {
		Name:       ProfileMigrate,
		HTTPServer: false,
		Migrations: true,
	},
}

// GetProfile returns the profile by name. Returns the default profile if name is empty.
func GetProfile(name string) models.Profile {
	if name == "" {
		name = ProfileDefault
	}

	profile, ok := Profiles[name]

	if !ok {
		zap.L().Fatal("Unknown profile",
			zap.String("profile", name),
			zap.Strings("available_profiles", []string{ProfileDefault, ProfileAPI, ProfileMigrate}))
	}

	zap.L().Info("Loaded profile", zap.String("profile", profile.Name))

	return profile
}
