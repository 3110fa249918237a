package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "unityride"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// BookingTransitions counts booking state changes by target status
	BookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_transitions_total", Help: "Booking state transitions"},
		[]string{"status"},
	)
	// SeatConflicts counts approvals that lost the race for the last seat
	SeatConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "booking_seat_conflicts_total", Help: "Approvals rejected because no seat remained",
	})
	RidesOffered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "rides_offered_total", Help: "Rides offered by drivers",
	})
	RidesCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "rides_cancelled_total", Help: "Rides deleted by their driver or an admin",
	})

	// NotificationsSent counts notification writes by outcome (ok, failed)
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "notifications_sent_total", Help: "Notification dispatch attempts"},
		[]string{"result"},
	)
	WebSocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "websocket_clients", Help: "Connected notification feed clients",
	})
)
