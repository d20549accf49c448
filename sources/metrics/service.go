package metrics

import (
	"time"
	"toaster/sources/tracing"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricsService struct {
	log *tracing.Logger
}

var (
	dispatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toaster_dispatches_total",
			Help: "Total number of button events dispatched",
		},
		[]string{"action", "outcome"},
	)

	dispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toaster_dispatch_duration_seconds",
			Help:    "Duration of button event dispatch",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	acksSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toaster_acks_sent_total",
			Help: "Total number of snackbar acknowledgments sent",
		},
		[]string{"status"},
	)

	messagesEdited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toaster_messages_edited_total",
			Help: "Total number of keyboard messages rewritten",
		},
		[]string{"status"},
	)

	settingsToggled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toaster_settings_toggled_total",
			Help: "Total number of moderation settings toggled",
		},
		[]string{"destination", "status"},
	)

	commandsUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toaster_commands_used_total",
			Help: "Total number of commands used",
		},
		[]string{"command"},
	)

	clicksThrottled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "toaster_clicks_throttled_total",
			Help: "Total number of button clicks dropped by the throttler",
		},
	)
)

func init() {
	prometheus.MustRegister(dispatchesTotal)
	prometheus.MustRegister(dispatchDuration)
	prometheus.MustRegister(acksSent)
	prometheus.MustRegister(messagesEdited)
	prometheus.MustRegister(settingsToggled)
	prometheus.MustRegister(commandsUsed)
	prometheus.MustRegister(clicksThrottled)
}

func NewMetricsService(log *tracing.Logger) *MetricsService {
	return &MetricsService{
		log: log,
	}
}

// RecordDispatch counts a dispatch. Action is empty when nothing was resolved.
func (s *MetricsService) RecordDispatch(action string, outcome string, duration time.Duration) {
	if action == "" {
		action = "none"
	}
	dispatchesTotal.WithLabelValues(action, outcome).Inc()
	dispatchDuration.WithLabelValues(action).Observe(duration.Seconds())
}

func (s *MetricsService) RecordAckSent(status string) {
	acksSent.WithLabelValues(status).Inc()
}

func (s *MetricsService) RecordMessageEdited(status string) {
	messagesEdited.WithLabelValues(status).Inc()
}

func (s *MetricsService) RecordSettingToggled(destination string, status int) {
	state := "off"
	if status != 0 {
		state = "on"
	}
	settingsToggled.WithLabelValues(destination, state).Inc()
}

func (s *MetricsService) RecordCommandUsed(command string) {
	commandsUsed.WithLabelValues(command).Inc()
}

func (s *MetricsService) RecordClickThrottled() {
	clicksThrottled.Inc()
}
