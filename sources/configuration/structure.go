package configuration

import (
	"time"
)

type Config struct {
	Service      ServiceConfig      `yaml:"service"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Telegram     TelegramConfig     `yaml:"telegram"`
	Proxy        ProxyConfig        `yaml:"proxy"`
	Network      NetworkConfig      `yaml:"network"`
	Throttler    ThrottlerConfig    `yaml:"throttler"`
	Features     FeaturesConfig     `yaml:"features"`
	Localization LocalizationConfig `yaml:"localization"`
	Permissions  PermissionsConfig  `yaml:"permissions"`
}

type ServiceConfig struct {
	StartupPort            int `yaml:"startup_port"`
	SystemMetricsPort      int `yaml:"system_metrics_port"`
	ApplicationMetricsPort int `yaml:"application_metrics_port"`
}

type DatabaseConfig struct {
	Host     string          `yaml:"host"`
	Port     string          `yaml:"port"`
	User     string          `yaml:"user"`
	Password string          `yaml:"password"`
	DBName   string          `yaml:"dbname"`
	SSLMode  string          `yaml:"ssl_mode"`
	TimeZone string          `yaml:"time_zone"`
	Replicas []ReplicaConfig `yaml:"replicas"`
}

type ReplicaConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RedisConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

type TelegramConfig struct {
	BotToken       string        `yaml:"bot_token"`
	APIEndpoint    string        `yaml:"api_endpoint"`
	PollerTimeout  int           `yaml:"poller_timeout"`
	AllowedUpdates []string      `yaml:"allowed_updates"`
	PayloadTTL     time.Duration `yaml:"payload_ttl"`
}

type ProxyConfig struct {
	URL      string `yaml:"url"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type NetworkConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type ThrottlerConfig struct {
	Limit time.Duration `yaml:"limit"`
}

type FeaturesConfig struct {
	UnleashAPIURL     string `yaml:"unleash_api_url"`
	UnleashAppName    string `yaml:"unleash_app_name"`
	UnleashInstanceID string `yaml:"unleash_instance_id"`
	RefreshInterval   int    `yaml:"refresh_interval"`
}

type LocalizationConfig struct {
	DefaultLanguage    string   `yaml:"default_language"`
	SupportedLanguages []string `yaml:"supported_languages"`
}

// PermissionsConfig holds the permission level decoding table.
// Level 0 is the baseline role and is never stored.
type PermissionsConfig struct {
	Roles map[int]string `yaml:"roles"`
}
