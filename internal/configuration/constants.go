package configuration

const AppName = "matchdash"

// JWT Audience constants for token type separation.
const (
	AudienceAccessToken = "dashboard:*"
)

const (
	CacheLoginRateLimitKey = "login:ratelimit:%s"
	CacheLoginAttemptsKey  = "login:attempts:%s"
)

// Dashboard list sizes.
const (
	TopUsersLimit           = 20
	VerificationQueueLimit  = 20
	CountryGenderGroupLimit = 20
	TopFavoritedLimit       = 10
)

// Dashboard time windows, in days.
const (
	ActiveWindowDays = 30
	TrendWindowDays  = 90
)

// CountryFilterAll disables the country filter of the KPI snapshot.
const CountryFilterAll = "all"

const DefaultActivityDays = 30

// Supported database types.
const (
	DatabasePostgres = "postgres"
	DatabaseMySQL    = "mysql"
	DatabaseSQLite   = "sqlite"
)

var ArrayConfigFields = []string{
	"app.trusted_proxies",
	"app.allowed_origins",
	"cache.redis.hosts",
	"cache.valkey.hosts",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
