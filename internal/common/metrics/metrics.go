// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_decisions_total",
			Help: "Total number of completed decisions by intent and recommendation",
		},
		[]string{"intent", "recommendation"},
	)

	FieldPromptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_field_prompts_total",
			Help: "Total number of needsField responses by intent and field",
		},
		[]string{"intent", "field"},
	)

	DecisionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_decision_errors_total",
			Help: "Total number of failed decision turns by error code",
		},
		[]string{"error_code"},
	)

	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "engine_turn_duration_seconds",
			Help: "Duration of decision turn processing in seconds",
		},
		[]string{"intent"},
	)
)
