package network

import (
	"toaster/sources/tracing"

	"golang.org/x/net/proxy"
)

func NewProxyDialer(config *ProxyConfig, log *tracing.Logger) proxy.Dialer {
	if !config.Enabled() {
		log.I("Proxy is not configured, dialing directly")
		return proxy.Direct
	}

	var auth *proxy.Auth
	if config.ProxyUser != "" {
		auth = &proxy.Auth{User: config.ProxyUser, Password: config.ProxyPass}
	}

	dialer, err := proxy.SOCKS5("tcp", config.ProxyAddress, auth, proxy.Direct)
	if err != nil {
		log.F("Failed to create proxy dialer", tracing.ProxyUrl, config.ProxyAddress, tracing.InnerError, err)
	}

	return dialer
}
