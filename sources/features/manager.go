package features

import (
	"context"
	"time"
	"toaster/sources/tracing"

	"github.com/Unleash/unleash-client-go/v4"
)

// FeatureActionPrefix prefixes per-action kill switches, e.g. "toaster/actions/game_roll".
const FeatureActionPrefix = "toaster/actions/"

func ActionFeature(action string) string {
	return FeatureActionPrefix + action
}

// FeatureManager answers feature toggle questions. Without an Unleash URL every
// question gets its fallback value.
type FeatureManager struct {
	client *unleash.Client
	config *FeatureConfig
	log    *tracing.Logger
}

func NewFeatureManager(config *FeatureConfig, log *tracing.Logger) (*FeatureManager, error) {
	if config.UnleashAPIURL == "" {
		log.W("Unleash API URL is not set, feature toggles use fallbacks")
		return &FeatureManager{config: config, log: log}, nil
	}

	client, err := unleash.NewClient(
		unleash.WithUrl(config.UnleashAPIURL),
		unleash.WithAppName(config.UnleashAppName),
		unleash.WithInstanceId(config.UnleashInstanceID),
		unleash.WithRefreshInterval(time.Duration(config.RefreshInterval)*time.Second),
		unleash.WithListener(&unleashListener{log: log}),
	)
	if err != nil {
		log.E("Failed to initialize Unleash client", tracing.InnerError, err)
		return nil, err
	}

	log.I("Unleash client initialized successfully",
		"api_url", config.UnleashAPIURL,
		"app_name", config.UnleashAppName,
		"instance_id", config.UnleashInstanceID,
		"refresh_interval", config.RefreshInterval,
	)

	return &FeatureManager{client: client, config: config, log: log}, nil
}

func (f *FeatureManager) IsEnabledDefault(featureName string, defaultValue bool) bool {
	if f.client == nil {
		return defaultValue
	}
	return f.client.IsEnabled(featureName, unleash.WithFallback(defaultValue))
}

// IsActionEnabled reports whether a button action may run. Actions are on unless switched off.
func (f *FeatureManager) IsActionEnabled(action string) bool {
	enabled := f.IsEnabledDefault(ActionFeature(action), true)
	if !enabled {
		f.log.W("Action is switched off", tracing.Feature, ActionFeature(action))
	}
	return enabled
}

func (f *FeatureManager) Close() error {
	if f.client == nil {
		return nil
	}
	f.log.I("Closing Unleash client")
	return f.client.Close()
}

func (f *FeatureManager) OnStop(ctx context.Context) error {
	return f.Close()
}

type unleashListener struct {
	log *tracing.Logger
}

func (l *unleashListener) OnReady() {
	l.log.I("Unleash client ready")
}

func (l *unleashListener) OnError(err error) {
	l.log.E("Unleash client error", tracing.InnerError, err)
}

func (l *unleashListener) OnWarning(warning error) {
	l.log.W("Unleash client warning", tracing.InnerError, warning)
}

func (l *unleashListener) OnCount(name string, enabled bool) {
}

func (l *unleashListener) OnSent(payload unleash.MetricsData) {
}

func (l *unleashListener) OnRegistered(payload unleash.ClientData) {
	l.log.I("Unleash client registered", "instance_id", payload.InstanceID)
}
