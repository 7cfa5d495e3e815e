package models

type Configuration struct {
	App       AppConfiguration       `mapstructure:"app"       validate:"required"`
	Database  DatabaseConfiguration  `mapstructure:"database"  validate:"required"`
	Cache     CacheConfiguration     `mapstructure:"cache"     validate:"required"`
	Activity  ActivityConfiguration  `mapstructure:"activity"  validate:"required"`
	Telemetry TelemetryConfiguration `mapstructure:"telemetry"`
}

type AppConfiguration struct {
	Profile           string   `mapstructure:"profile"             validate:"oneof=default api migrate"`
	AdminUsername     string   `mapstructure:"admin_username"      validate:"omitempty,max=64"`
	AdminPassword     string   `mapstructure:"admin_password"      validate:"required_with=AdminUsername"`
	AdminName         string   `mapstructure:"admin_name"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"     validate:"required"`
	JWTSecret         string   `mapstructure:"jwt_secret"          validate:"required,min=16"`
	AccessTokenExpiry int      `mapstructure:"access_token_expiry" validate:"gte=1,lte=1440"`
	LogLevel          string   `mapstructure:"log_level"           validate:"oneof=debug info warn error fatal panic"`
	Port              int      `mapstructure:"port"                validate:"gte=80,lte=65535"`
	TrustedProxies    []string `mapstructure:"trusted_proxies"`
	Timezone          string   `mapstructure:"timezone"            validate:"required,timezone"`
	RequestTimeout    int      `mapstructure:"request_timeout"     validate:"gte=1,lte=300"`
	QueryParallelism  int      `mapstructure:"query_parallelism"   validate:"gte=1,lte=32"`
	LoginRateLimit    int      `mapstructure:"login_rate_limit"    validate:"gte=1"`
	LoginMaxAttempts  int      `mapstructure:"login_max_attempts"  validate:"gte=1"`
	LoginLockout      int      `mapstructure:"login_lockout"       validate:"gte=1"`
}

type DatabaseConfiguration struct {
	Type     string `mapstructure:"type"     validate:"required,oneof=postgres mysql sqlite"`
	Host     string `mapstructure:"host"     validate:"required_unless=Type sqlite"`
	Port     int32  `mapstructure:"port"     validate:"omitempty,gte=1,lte=65535"`
	User     string `mapstructure:"user"     validate:"required_unless=Type sqlite"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"     validate:"required"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CacheConfiguration struct {
	Type   string                    `mapstructure:"type"   validate:"required,oneof=none redis valkey"`
	Redis  *RedisCacheConfiguration  `mapstructure:"redis"  validate:"required_if=Type redis"`
	Valkey *ValkeyCacheConfiguration `mapstructure:"valkey" validate:"required_if=Type valkey"`
}

type RedisCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"           validate:"required,min=1"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type ValkeyCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"           validate:"required,min=1"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type ActivityConfiguration struct {
	Type       string                           `mapstructure:"type"       validate:"required,oneof=none filesystem"`
	Filesystem *FilesystemActivityConfiguration `mapstructure:"filesystem" validate:"required_if=Type filesystem"`
}

type FilesystemActivityConfiguration struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type TelemetryConfiguration struct {
	Tracing   TracingConfiguration   `mapstructure:"tracing"`
	Profiling ProfilingConfiguration `mapstructure:"profiling"`
	Metrics   MetricsConfiguration   `mapstructure:"metrics"`
}

type TracingConfiguration struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"     validate:"required_if=Enabled true"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
}

type ProfilingConfiguration struct {
	Enabled       bool   `mapstructure:"enabled"`
	ServerAddress string `mapstructure:"server_address" validate:"required_if=Enabled true"`
}

type MetricsConfiguration struct {
	Enabled bool `mapstructure:"enabled"`
}

// AuthConfig groups authentication-related configuration for services.
type AuthConfig struct {
	JWTSecret         string
	AccessTokenExpiry int
	MaxAttempts       int
	LockoutSeconds    int
}

// GetAuthConfig extracts authentication configuration from AppConfiguration.
func (c *AppConfiguration) GetAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:         c.JWTSecret,
		AccessTokenExpiry: c.AccessTokenExpiry,
		MaxAttempts:       c.LoginMaxAttempts,
		LockoutSeconds:    c.LoginLockout,
	}
}
