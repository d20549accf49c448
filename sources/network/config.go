package network

import (
	"time"
	"toaster/sources/configuration"
)

type ProxyConfig struct {
	ProxyAddress string
	ProxyUser    string
	ProxyPass    string
	Timeout      time.Duration
}

// Enabled reports whether outgoing traffic goes through a SOCKS5 proxy.
func (c *ProxyConfig) Enabled() bool {
	return c.ProxyAddress != ""
}

func NewProxyConfig(config *configuration.Config) *ProxyConfig {
	timeout := time.Duration(config.Network.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 75 * time.Second
	}

	return &ProxyConfig{
		ProxyAddress: config.Proxy.URL,
		ProxyUser:    config.Proxy.User,
		ProxyPass:    config.Proxy.Password,
		Timeout:      timeout,
	}
}
