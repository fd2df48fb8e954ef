package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "waste_bot"

	BotSubsystem      = "bot"
	NotifierSubsystem = "notifier"
	SyncSubsystem     = "sync"
)

// Бот метрики.
var (
	UserMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "user_messages_total",
			Help:      "Total number of user messages processed",
		},
		[]string{"message_type"},
	)
)

// Метрики отправки уведомлений.
var (
	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: NotifierSubsystem,
			Name:      "notifications_sent_total",
			Help:      "Total number of pickup notifications by delivery status",
		},
		[]string{"status"},
	)

	NotificationTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: NotifierSubsystem,
			Name:      "tick_duration_seconds",
			Help:      "Duration of one hourly dispatch tick in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// Метрики синхронизации календарей.
var (
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SyncSubsystem,
			Name:      "runs_total",
			Help:      "Total number of calendar sync runs",
		},
		[]string{"status"},
	)

	SyncLocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SyncSubsystem,
			Name:      "locations_total",
			Help:      "Total number of per-location sync attempts",
		},
		[]string{"status"},
	)

	FeedFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: SyncSubsystem,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Calendar feed fetch duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"status"},
	)

	PickupEventsStored = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: SyncSubsystem,
			Name:      "pickup_events_count",
			Help:      "Number of upcoming pickup events stored per location",
		},
		[]string{"location"},
	)
)

func RecordUserMessage(messageType string) {
	UserMessagesTotal.WithLabelValues(messageType).Inc()
}

func RecordNotification(status string) {
	NotificationsSentTotal.WithLabelValues(status).Inc()
}

func RecordNotificationTick(duration time.Duration) {
	NotificationTickDuration.Observe(duration.Seconds())
}

func RecordSyncRun(status string) {
	SyncRunsTotal.WithLabelValues(status).Inc()
}

func RecordSyncLocation(status string) {
	SyncLocationsTotal.WithLabelValues(status).Inc()
}

func RecordFeedFetch(status string, duration time.Duration) {
	FeedFetchDuration.WithLabelValues(status).Observe(duration.Seconds())
}

func UpdatePickupEventsCount(location string, count float64) {
	PickupEventsStored.WithLabelValues(location).Set(count)
}
