package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/helpcentre-io/helpcentre-api/internal/email"
	"github.com/helpcentre-io/helpcentre-api/internal/service/article"
	"github.com/helpcentre-io/helpcentre-api/internal/service/auth"
	"github.com/helpcentre-io/helpcentre-api/pkg/logger"
)

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
}

type DataConfig struct {
	Dir          string `mapstructure:"dir"`
	UsersFile    string `mapstructure:"users_file"`
	DismissalsDB string `mapstructure:"dismissals_db"`
	CacheMinutes int    `mapstructure:"cache_minutes"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool   `mapstructure:"prometheus_enabled"`
	MetricsPrefix     string `mapstructure:"metrics_prefix"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Data       DataConfig       `mapstructure:"data"`
	Auth       auth.Config      `mapstructure:"auth"`
	ArticleAPI article.Config   `mapstructure:"article_api"`
	SMTP       email.SMTPConfig `mapstructure:"smtp"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Security   SecurityConfig   `mapstructure:"security"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    logger.Config    `mapstructure:"logging"`
}

// LoadConfig reads config.yml and overlays HELPCENTRE_* environment
// variables, e.g. HELPCENTRE_ARTICLE_API_AUTH_TOKEN.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app")
	viper.AddConfigPath("/app/config")

	viper.SetEnvPrefix("HELPCENTRE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The knowledge-base proxy settings also answer to the SEARCH_API_* names
	// the upstream contract uses; the prefixed name wins when both are set.
	viper.BindEnv("article_api.url", "HELPCENTRE_ARTICLE_API_URL", "SEARCH_API_URL")
	viper.BindEnv("article_api.auth_token", "HELPCENTRE_ARTICLE_API_AUTH_TOKEN", "SEARCH_API_AUTH_TOKEN")
	viper.BindEnv("article_api.company_code", "HELPCENTRE_ARTICLE_API_COMPANY_CODE", "SEARCH_API_COMPANY_CODE")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; env vars and defaults can carry a deployment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.request_timeout", "30s")
	viper.SetDefault("server.max_header_bytes", 1<<20)

	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.users_file", "data/users.json")
	viper.SetDefault("data.dismissals_db", "data/dismissals.db")
	viper.SetDefault("data.cache_minutes", 5)

	viper.SetDefault("auth.expiry_hours", 12)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 50)
	viper.SetDefault("rate_limit.burst", 100)

	viper.SetDefault("security.allowed_origins", []string{"*"})

	viper.SetDefault("monitoring.prometheus_enabled", true)
	viper.SetDefault("monitoring.metrics_prefix", "helpcentre")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.max_size_mb", 50)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age_days", 14)
}
