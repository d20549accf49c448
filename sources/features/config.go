package features

import (
	"toaster/sources/configuration"
)

type FeatureConfig struct {
	UnleashAPIURL     string
	UnleashInstanceID string
	UnleashAppName    string
	RefreshInterval   int
}

func NewFeatureConfig(config *configuration.Config) *FeatureConfig {
	fc := &FeatureConfig{
		UnleashAPIURL:     config.Features.UnleashAPIURL,
		UnleashInstanceID: config.Features.UnleashInstanceID,
		UnleashAppName:    config.Features.UnleashAppName,
		RefreshInterval:   config.Features.RefreshInterval,
	}

	if fc.UnleashAppName == "" {
		fc.UnleashAppName = "toaster"
	}
	if fc.UnleashInstanceID == "" {
		fc.UnleashInstanceID = "toaster"
	}
	if fc.RefreshInterval <= 0 {
		fc.RefreshInterval = 5
	}

	return fc
}
