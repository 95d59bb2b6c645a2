// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UnmappedGatewayStatus counts gateway transactions whose status value
	// has no known verification mapping. A non-zero rate here means the
	// gateway integration and this service have drifted apart.
	UnmappedGatewayStatus = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopfwd_unmapped_gateway_status_total",
		Help: "Gateway transactions with an unrecognized gateway status value.",
	})

	// Decisions counts verification decisions by decision and outcome.
	Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopfwd_verification_decisions_total",
		Help: "Operator verification decisions applied to payment evidence.",
	}, []string{"decision", "outcome"})

	// NotificationFailures counts customer notifications that could not be
	// dispatched. Non-fatal; the decision itself has already committed.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopfwd_notification_failures_total",
		Help: "Customer notifications that failed to dispatch.",
	})
)
