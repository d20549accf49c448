package external

import "toaster/sources/configuration"

type OutsidersConfig struct {
	StartupPort            int
	SystemMetricsPort      int
	ApplicationMetricsPort int
}

func NewOutsidersConfig(config *configuration.Config) *OutsidersConfig {
	return &OutsidersConfig{
		StartupPort:            portOr(config.Service.StartupPort, 10000),
		SystemMetricsPort:      portOr(config.Service.SystemMetricsPort, 10001),
		ApplicationMetricsPort: portOr(config.Service.ApplicationMetricsPort, 10002),
	}
}

func portOr(port int, def int) int {
	if port <= 0 {
		return def
	}
	return port
}
