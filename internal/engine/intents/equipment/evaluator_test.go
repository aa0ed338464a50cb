// internal/engine/intents/equipment/evaluator_test.go
package equipment

import (
	"testing"

	"vendor-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputs(cost float64, critical, power bool, energySavings float64) models.Payload {
	return models.Payload{
		"estimated_equipment_cost":        cost,
		"is_critical_replacement":         critical,
		"is_power_solution":               power,
		"expected_monthly_energy_savings": energySavings,
	}
}

func TestEvaluate_CriticalReplacementOverridesLowMargin(t *testing.T) {
	// Margin is 2% but the replacement is critical and savings cover it.
	snap := models.FinancialSnapshot{MonthlyRevenue: 500000, MonthlyExpenses: 490000, CurrentSavings: 150000}

	result, err := New().Evaluate(inputs(120000, true, false, 0), snap)
	require.NoError(t, err)

	assert.Equal(t, models.RecommendationApprove, result.Recommendation)
	assert.Contains(t, result.Reasons[0], "Critical replacement")
}

func TestEvaluate_PowerSolutionPaybackApproves(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlyRevenue: 300000, MonthlyExpenses: 250000, CurrentSavings: 200000}

	// 120000 / 15000 = 8 months payback.
	result, err := New().Evaluate(inputs(120000, false, true, 15000), snap)
	require.NoError(t, err)

	assert.Equal(t, models.RecommendationApprove, result.Recommendation)
	assert.Contains(t, result.Reasons[0], "pays for itself in 8.0 months")
}

func TestEvaluate_NonEssentialAtALossRejects(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlyRevenue: 200000, MonthlyExpenses: 220000, CurrentSavings: 500000}

	result, err := New().Evaluate(inputs(50000, false, false, 0), snap)
	require.NoError(t, err)

	assert.Equal(t, models.RecommendationReject, result.Recommendation)
}

func TestEvaluate_CriticalButUnfundedAtALossRejects(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlyRevenue: 200000, MonthlyExpenses: 220000, CurrentSavings: 30000}

	result, err := New().Evaluate(inputs(100000, true, false, 0), snap)
	require.NoError(t, err)

	assert.Equal(t, models.RecommendationReject, result.Recommendation)
}

func TestEvaluate_NoStrongSignalWaits(t *testing.T) {
	snap := models.FinancialSnapshot{MonthlyRevenue: 300000, MonthlyExpenses: 270000, CurrentSavings: 100000}

	// Not critical, slow payback (120000/5000 = 24 months), margin 10% < 20%.
	result, err := New().Evaluate(inputs(120000, false, true, 5000), snap)
	require.NoError(t, err)

	assert.Equal(t, models.RecommendationWait, result.Recommendation)
	assert.Len(t, result.Reasons, 3)
	assert.NotEmpty(t, result.Steps)
}
