// Package metrics defines and registers all custom Prometheus metrics for the
// BlueWard access system. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register on the default Prometheus registry at package init;
// exposing them is left to the embedding application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blueward"

// LoginsTotal counts login attempts.
// Labels:
//   - result: "success", "not_found", or "canceled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// InvitesCreatedTotal counts issued invites.
// Label:
//   - kind: "standard" or "vip"
var InvitesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_created_total",
		Help:      "Total number of invites created, labelled by kind.",
	},
	[]string{"kind"},
)

// GateEventsTotal counts recorded gate events.
// Label:
//   - type: "check-in" or "check-out"
var GateEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_events_total",
		Help:      "Total number of check-in and check-out records appended.",
	},
	[]string{"type"},
)

// NotificationsReadTotal counts acknowledged notifications, including
// repeated acknowledgements of the same record.
var NotificationsReadTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_read_total",
		Help:      "Total number of mark-as-read calls that found their notification.",
	},
)

// StorageFailuresTotal counts best-effort local storage writes that failed.
// Label:
//   - op: "get", "set", or "remove"
var StorageFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_failures_total",
		Help:      "Total number of local key/value operations that failed.",
	},
	[]string{"op"},
)
