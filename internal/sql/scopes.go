package sql

import (
	"strings"

	"matchdash/internal/configuration"

	"gorm.io/gorm"
)

// NormalizeCountry turns the raw filter value into the value to match, or ""
// when no filter applies.
func NormalizeCountry(country string) string {
	country = strings.TrimSpace(country)
	if strings.EqualFold(country, configuration.CountryFilterAll) {
		return ""
	}
	return country
}

// InCountry restricts a users query to one country. An empty country leaves
// the query untouched, so every counter of a snapshot shares the same filter.
func InCountry(country string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if country == "" {
			return db
		}
		return db.Where("users.country = ?", country)
	}
}
