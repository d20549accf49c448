package external

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"toaster/sources/platform"
	"toaster/sources/repository"
	"toaster/sources/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthChecker interface {
	CheckDatabaseHealth(logger *tracing.Logger) error
	CheckRedisHealth(logger *tracing.Logger) error
}

type Outsiders struct {
	log    *tracing.Logger
	config *OutsidersConfig
	health HealthChecker
	ss     *http.Server
	sms    *http.Server
	as     *http.Server
}

type healthReport struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Version  string            `json:"version"`
	Build    string            `json:"build_time"`
	Uptime   string            `json:"uptime"`
	Services map[string]string `json:"services"`
}

func NewOutsiders(log *tracing.Logger, config *OutsidersConfig, health *repository.HealthRepository) *Outsiders {
	return newOutsiders(log, config, health)
}

func newOutsiders(log *tracing.Logger, config *OutsidersConfig, health HealthChecker) *Outsiders {
	systemRegistry := prometheus.NewRegistry()

	systemRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	x := &Outsiders{log: log, config: config, health: health}

	x.ss = &http.Server{
		Addr: fmt.Sprintf(":%d", config.StartupPort),
		Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
			m.HandleFunc("/health", x.healthHandler)
		}),
	}
	x.sms = &http.Server{
		Addr: fmt.Sprintf(":%d", config.SystemMetricsPort),
		Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
			m.Handle("/metrics", promhttp.HandlerFor(systemRegistry, promhttp.HandlerOpts{}))
		}),
	}
	x.as = &http.Server{
		Addr: fmt.Sprintf(":%d", config.ApplicationMetricsPort),
		Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
			m.Handle("/metrics", promhttp.Handler())
		}),
	}

	return x
}

func (x *Outsiders) startup() {
	x.log.I("Startup server is starting", tracing.OutsiderKind, "startup", "port", x.config.StartupPort)

	if err := x.ss.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start startup server", tracing.OutsiderKind, "startup", tracing.InnerError, err)
	}
}

func (x *Outsiders) systemMetrics() {
	x.log.I("System metrics server is starting", tracing.OutsiderKind, "system_metrics", "port", x.config.SystemMetricsPort)

	if err := x.sms.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start system metrics server", tracing.OutsiderKind, "system_metrics", tracing.InnerError, err)
	}
}

func (x *Outsiders) applicationMetrics() {
	x.log.I("Application metrics server is starting", tracing.OutsiderKind, "application_metrics", "port", x.config.ApplicationMetricsPort)

	if err := x.as.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start application metrics server", tracing.OutsiderKind, "application_metrics", tracing.InnerError, err)
	}
}

func (x *Outsiders) healthHandler(w http.ResponseWriter, r *http.Request) {
	log := x.log.With(tracing.OutsiderKind, "startup")
	log.D("Outsider service got a ping", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)

	report := healthReport{
		Status:   "ok",
		Service:  "toaster",
		Version:  platform.GetAppVersion(),
		Build:    platform.GetAppBuildTime(),
		Uptime:   time.Since(platform.GetAppStartTime()).Truncate(time.Second).String(),
		Services: map[string]string{"database": "ok", "redis": "ok"},
	}

	if err := x.health.CheckDatabaseHealth(log); err != nil {
		report.Status = "degraded"
		report.Services["database"] = err.Error()
	}

	if err := x.health.CheckRedisHealth(log); err != nil {
		report.Status = "degraded"
		report.Services["redis"] = err.Error()
	}

	status := http.StatusOK
	if report.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.E("Failed to write health report", tracing.InnerError, err)
	}
}
