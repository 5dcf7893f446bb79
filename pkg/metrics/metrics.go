// Package metrics holds the Prometheus instruments shared by the bot.
// Everything is registered with the default registry and served by the web
// server on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pancy_store_operations_total",
			Help: "Record store operations by operation and result.",
		}, []string{"op", "result"})

	StoreDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pancy_store_operation_seconds",
			Help:    "Latency of record store operations, lock wait included.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"})

	StoreRecoveries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pancy_store_read_recoveries_total",
			Help: "Times an unreadable or corrupt document was replaced by an empty one.",
		})

	TicketsOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pancy_tickets_opened_total",
			Help: "Tickets whose channel was provisioned.",
		})

	TicketsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pancy_tickets_provision_failures_total",
			Help: "Ticket numbers burned because channel provisioning failed.",
		})

	TicketsClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pancy_tickets_closed_total",
			Help: "Ticket close attempts by result.",
		}, []string{"result"})

	StatusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pancy_status_transitions_total",
			Help: "Server status updates by target state.",
		}, []string{"state"})

	CommandsExecuted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pancy_commands_total",
			Help: "Slash commands and components handled, by name and result.",
		}, []string{"command", "result"})

	GatewayConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pancy_gateway_connected",
			Help: "1 while the gateway session is connected.",
		})
)

func init() {
	prometheus.MustRegister(
		StoreOperations,
		StoreDuration,
		StoreRecoveries,
		TicketsOpened,
		TicketsFailed,
		TicketsClosed,
		StatusTransitions,
		CommandsExecuted,
		GatewayConnected,
	)
}
