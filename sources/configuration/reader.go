package configuration

import (
	"fmt"
	"os"
	"regexp"
	"toaster/sources/platform"
	"toaster/sources/tracing"

	"gopkg.in/yaml.v3"
)

var envPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::([^}]*))?\}`)

// NewYaml reads the configuration from CONFIG_PATH (default: config.yaml),
// expanding ${VAR} and ${VAR:default} references before parsing.
func NewYaml(log *tracing.Logger) (*Config, error) {
	defer tracing.ProfilePoint(log, "Configuration loaded", "configuration.load")()

	filePath := platform.Get("CONFIG_PATH", "config.yaml")

	log.I("reading configuration", "path", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.E("failed to read configuration file", tracing.InnerError, err, "path", filePath)
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	config, err := parse(content)
	if err != nil {
		log.E("failed to parse configuration file", tracing.InnerError, err, "path", filePath)
		return nil, err
	}

	return config, nil
}

func parse(content []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(expandEnv(string(content))), &config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if len(config.Permissions.Roles) == 0 {
		config.Permissions.Roles = map[int]string{
			0: "Пользователь",
			1: "Модератор",
			2: "Администратор",
		}
	}

	if config.Localization.DefaultLanguage == "" {
		config.Localization.DefaultLanguage = "ru"
	}

	if len(config.Localization.SupportedLanguages) == 0 {
		config.Localization.SupportedLanguages = []string{"ru", "en"}
	}

	if len(config.Telegram.AllowedUpdates) == 0 {
		config.Telegram.AllowedUpdates = []string{"message", "callback_query"}
	}
}

// expandEnv replaces ${VAR} or ${VAR:default} with environment values.
// An unset variable without a default becomes an empty string.
func expandEnv(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		key := matches[1]
		defaultValue := ""
		if len(matches) > 2 {
			defaultValue = matches[2]
		}

		value, exists := os.LookupEnv(key)
		if !exists {
			return defaultValue
		}
		return value
	})
}
