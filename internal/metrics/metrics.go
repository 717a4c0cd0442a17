package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lifecycle events recorded by TicketEvents.
const (
	EventBooked   = "booked"
	EventPaid     = "paid"
	EventCanceled = "canceled"
	EventRefunded = "refunded"
	EventExpired  = "expired"
)

var (
	TicketEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railtickets_ticket_events_total",
		Help: "The total number of ticket lifecycle events",
	}, []string{"event"})
	OperationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railtickets_operation_failures_total",
		Help: "The total number of failed lifecycle operations",
	}, []string{"operation"})
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "railtickets_route_cache_lookups_total",
		Help: "Route summary cache lookups by result",
	}, []string{"result"})
)
