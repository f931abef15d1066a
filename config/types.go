package config

import "fmt"

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Nats           NatsConfig           `mapstructure:"nats"`
	Email          EmailConfig          `mapstructure:"email"`
	Authentication AuthenticationConfig `mapstructure:"authentication"`
	Notifications  NotificationsConfig  `mapstructure:"notifications"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	Domain         string     `mapstructure:"domain"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type DatabaseConfig struct {
	Host     string             `mapstructure:"host"`
	Port     int                `mapstructure:"port"`
	User     string             `mapstructure:"user"`
	Password string             `mapstructure:"password"`
	DBName   string             `mapstructure:"dbname"`
	SSLMode  string             `mapstructure:"sslmode"`
	Pool     DatabasePoolConfig `mapstructure:"pool"`
}

type DatabasePoolConfig struct {
	MaxOpenConns       int `mapstructure:"max_open_conns"`
	MaxIdleConns       int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int `mapstructure:"conn_max_lifetime_minutes"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type NatsConfig struct {
	URL string `mapstructure:"url"`
}

type EmailConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	SMTPHost       string `mapstructure:"smtp_host"`
	SMTPPort       int    `mapstructure:"smtp_port"`
	SMTPUsername   string `mapstructure:"smtp_username"`
	SMTPPassword   string `mapstructure:"smtp_password"`
	SMTPUseTLS     bool   `mapstructure:"smtp_use_tls"`
	From           string `mapstructure:"from"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type AuthenticationConfig struct {
	// JWTSecret signs and verifies the HS256 bearer tokens issued by the
	// identity layer in front of this service.
	JWTSecret        string `mapstructure:"jwt_secret"`
	TokenTTLMinutes  int    `mapstructure:"token_ttl_minutes"`
	Issuer           string `mapstructure:"issuer"`
	RateLimitEnabled bool   `mapstructure:"rate_limit_enabled"`
}

type NotificationsConfig struct {
	// SweepIntervalMinutes is how often the overdue-pending reconciliation
	// sweep runs.
	SweepIntervalMinutes int `mapstructure:"sweep_interval_minutes"`
	SweepBatchLimit      int `mapstructure:"sweep_batch_limit"`

	// DigestHourUTC is the hour of day (UTC) the daily digest emails go out.
	DigestHourUTC   int `mapstructure:"digest_hour_utc"`
	DigestWindowHrs int `mapstructure:"digest_window_hours"`

	RetentionDays    int `mapstructure:"retention_days"`
	BroadcastWorkers int `mapstructure:"broadcast_workers"`
}

type LoggingConfig struct {
	Level  string              `mapstructure:"level"`
	Format string              `mapstructure:"format"`
	Output LoggingOutputConfig `mapstructure:"output"`
}

type LoggingOutputConfig struct {
	Stdout bool              `mapstructure:"stdout"`
	File   LoggingFileConfig `mapstructure:"file"`
}

type LoggingFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks the parts of the configuration that cannot fall back to a
// safe default, then fills in defaults for the rest.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Authentication.JWTSecret == "" {
		return fmt.Errorf("authentication.jwt_secret is required")
	}
	if c.Notifications.DigestHourUTC < 0 || c.Notifications.DigestHourUTC > 23 {
		return fmt.Errorf("notifications.digest_hour_utc must be between 0 and 23, got %d", c.Notifications.DigestHourUTC)
	}
	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Notifications.SweepIntervalMinutes <= 0 {
		c.Notifications.SweepIntervalMinutes = 24 * 60
	}
	if c.Notifications.SweepBatchLimit <= 0 {
		c.Notifications.SweepBatchLimit = 50
	}
	if c.Notifications.DigestWindowHrs <= 0 {
		c.Notifications.DigestWindowHrs = 24
	}
	if c.Notifications.RetentionDays <= 0 {
		c.Notifications.RetentionDays = 90
	}
	if c.Notifications.BroadcastWorkers <= 0 {
		c.Notifications.BroadcastWorkers = 16
	}
	if c.Authentication.TokenTTLMinutes <= 0 {
		c.Authentication.TokenTTLMinutes = 60
	}
}
