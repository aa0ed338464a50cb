// internal/engine/intents/expansion/evaluator_test.go
package expansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-advisor/internal/models"
)

func snapshot(revenue, expenses, savings float64) models.FinancialSnapshot {
	return models.FinancialSnapshot{
		MonthlyRevenue:  revenue,
		MonthlyExpenses: expenses,
		CurrentSavings:  savings,
	}
}

func TestEvaluator_Intent(t *testing.T) {
	assert.Equal(t, models.IntentBusinessExpansion, New().Intent())
}

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		inputs   models.Payload
		snap     models.FinancialSnapshot
		expected models.Recommendation
	}{
		{
			name: "strong business with funded expansion approves",
			inputs: models.Payload{
				"estimated_expansion_cost":    200000.0,
				"expected_additional_revenue": 50000.0,
				"is_new_location":             true,
			},
			// margin 40%, savings cover cost + 2 months, payback 4 months
			snap:     snapshot(500000, 300000, 900000),
			expected: models.RecommendationApprove,
		},
		{
			name: "under one month of buffer rejects",
			inputs: models.Payload{
				"estimated_expansion_cost":    100000.0,
				"expected_additional_revenue": 30000.0,
				"is_new_location":             false,
			},
			snap:     snapshot(400000, 300000, 200000),
			expected: models.RecommendationReject,
		},
		{
			name: "unprofitable business rejects",
			inputs: models.Payload{
				"estimated_expansion_cost":    100000.0,
				"expected_additional_revenue": 40000.0,
				"is_new_location":             false,
			},
			snap:     snapshot(300000, 320000, 400000),
			expected: models.RecommendationReject,
		},
		{
			name: "thin margin and slow payback waits",
			inputs: models.Payload{
				"estimated_expansion_cost":    500000.0,
				"expected_additional_revenue": 10000.0,
				"is_new_location":             true,
			},
			// margin 10%, savings only cover cost, payback 50 months
			snap:     snapshot(400000, 360000, 600000),
			expected: models.RecommendationWait,
		},
		{
			name: "zero additional revenue still approves on margin and savings",
			inputs: models.Payload{
				"estimated_expansion_cost":    100000.0,
				"expected_additional_revenue": 0.0,
				"is_new_location":             false,
			},
			// margin 25% and savings signal met, payback infinite
			snap:     snapshot(400000, 300000, 800000),
			expected: models.RecommendationApprove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().Evaluate(tt.inputs, tt.snap)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Recommendation)
			assert.NotEmpty(t, result.Reasons)
		})
	}
}

func TestEvaluator_Evaluate_RejectDominates(t *testing.T) {
	// Every approval signal would pass, but the business is unprofitable.
	result, err := New().Evaluate(models.Payload{
		"estimated_expansion_cost":    10000.0,
		"expected_additional_revenue": 50000.0,
		"is_new_location":             false,
	}, snapshot(300000, 300000, 1000000))
	require.NoError(t, err)
	assert.Equal(t, models.RecommendationReject, result.Recommendation)
	assert.Contains(t, result.Reasons[0], "not yet profitable")
}

func TestEvaluator_Evaluate_NewLocationShapesSteps(t *testing.T) {
	inputs := models.Payload{
		"estimated_expansion_cost":    200000.0,
		"expected_additional_revenue": 50000.0,
		"is_new_location":             true,
	}
	result, err := New().Evaluate(inputs, snapshot(500000, 300000, 900000))
	require.NoError(t, err)
	require.Equal(t, models.RecommendationApprove, result.Recommendation)
	assert.Contains(t, result.Steps, "Negotiate a short initial lease for the new location")

	inputs["is_new_location"] = false
	result, err = New().Evaluate(inputs, snapshot(500000, 300000, 900000))
	require.NoError(t, err)
	assert.NotContains(t, result.Steps, "Negotiate a short initial lease for the new location")
}

func TestEvaluator_Evaluate_MissingField(t *testing.T) {
	_, err := New().Evaluate(models.Payload{
		"estimated_expansion_cost": 100000.0,
	}, snapshot(400000, 300000, 500000))
	require.Error(t, err)
}
