// internal/engine/resolver/resolver_test.go
package resolver

import (
	"testing"

	"vendor-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSnapshot = models.FinancialSnapshot{
	MonthlyRevenue:  300000,
	MonthlyExpenses: 200000,
	CurrentSavings:  150000,
}

func TestResolve_EmptyPayloadAsksFirstField(t *testing.T) {
	tests := []struct {
		intent models.Intent
		first  string
	}{
		{models.IntentHiring, "estimated_salary"},
		{models.IntentInventory, "estimated_inventory_cost"},
		{models.IntentMarketing, "proposed_marketing_budget"},
		{models.IntentSavings, "proposed_monthly_savings"},
		{models.IntentEquipment, "estimated_equipment_cost"},
		{models.IntentLoanManagement, "total_outstanding_debt"},
		{models.IntentBusinessExpansion, "estimated_expansion_cost"},
	}
	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			res := Resolve(tt.intent, models.Payload{}, testSnapshot, models.VendorProfile{}, "what should i do")
			require.False(t, res.Complete)
			require.NotNil(t, res.Needs)
			assert.Equal(t, tt.first, res.Needs.Field)
			assert.NotEmpty(t, res.Needs.Prompt)
			assert.Empty(t, res.Needs.PayloadSoFar)
		})
	}
}

func TestResolve_ProgressAndAtMostOneField(t *testing.T) {
	// Answering each prompted field in turn must strictly shrink the set of
	// unresolved fields and never re-ask an answered one.
	payload := models.Payload{}
	asked := map[string]bool{}

	answers := map[string]interface{}{
		"estimated_inventory_cost":   80000.0,
		"outstanding_supplier_debts": 0.0,
		"inventory_turnover_days":    25.0,
	}

	for i := 0; i < 10; i++ {
		res := Resolve(models.IntentInventory, payload, testSnapshot, models.VendorProfile{}, "should i restock")
		if res.Complete {
			break
		}
		field := res.Needs.Field
		require.False(t, asked[field], "field %s asked twice", field)
		asked[field] = true

		payload = res.Needs.PayloadSoFar.Clone()
		payload[field] = answers[field]
	}

	res := Resolve(models.IntentInventory, payload, testSnapshot, models.VendorProfile{}, "should i restock")
	require.True(t, res.Complete)
	assert.Len(t, asked, 3)
}

func TestResolve_DoesNotMutateCallerPayload(t *testing.T) {
	payload := models.Payload{"estimated_equipment_cost": 50000.0}
	Resolve(models.IntentEquipment, payload, testSnapshot, models.VendorProfile{}, "buy a solar inverter?")

	assert.Equal(t, models.Payload{"estimated_equipment_cost": 50000.0}, payload,
		"resolver must work on its own copy")
}

func TestResolve_Deterministic(t *testing.T) {
	payload := models.Payload{"estimated_salary": 40000.0}
	first := Resolve(models.IntentHiring, payload, testSnapshot, models.VendorProfile{}, "hire?")
	for i := 0; i < 5; i++ {
		again := Resolve(models.IntentHiring, payload, testSnapshot, models.VendorProfile{}, "hire?")
		assert.Equal(t, first, again)
	}
}

func TestResolve_ConditionalFieldTriggered(t *testing.T) {
	payload := models.Payload{
		"proposed_marketing_budget":  20000.0,
		"outstanding_business_debts": 0.0,
		"has_previous_campaigns":     true,
	}
	res := Resolve(models.IntentMarketing, payload, testSnapshot, models.VendorProfile{}, "run ads?")
	require.False(t, res.Complete)
	assert.Equal(t, "previous_campaign_roi", res.Needs.Field)
}

func TestResolve_ConditionalFieldSkippedAndDefaulted(t *testing.T) {
	payload := models.Payload{
		"proposed_marketing_budget":  20000.0,
		"outstanding_business_debts": 0.0,
		"has_previous_campaigns":     false,
	}
	res := Resolve(models.IntentMarketing, payload, testSnapshot, models.VendorProfile{}, "run ads?")
	require.True(t, res.Complete)

	roi, err := res.Inputs.Number("previous_campaign_roi")
	require.NoError(t, err)
	assert.Equal(t, 0.0, roi, "untriggered field gets its declared default")
}

func TestResolve_PowerKeywordSkipsThePowerQuestion(t *testing.T) {
	payload := models.Payload{
		"estimated_equipment_cost": 120000.0,
		"is_critical_replacement":  false,
	}
	res := Resolve(models.IntentEquipment, payload, testSnapshot, models.VendorProfile{}, "Should I buy a Solar panel set?")
	require.False(t, res.Complete)
	// is_power_solution is inferred true from "solar", so the next question is
	// the energy-savings follow-up, not the power question itself.
	assert.Equal(t, "expected_monthly_energy_savings", res.Needs.Field)

	payload["expected_monthly_energy_savings"] = 15000.0
	res = Resolve(models.IntentEquipment, payload, testSnapshot, models.VendorProfile{}, "Should I buy a Solar panel set?")
	require.True(t, res.Complete)

	power, err := res.Inputs.Bool("is_power_solution")
	require.NoError(t, err)
	assert.True(t, power, "inference lands in the resolved inputs")
	_, has := payload["is_power_solution"]
	assert.False(t, has, "inference never leaks into the caller's payload")
}

func TestResolve_ExplicitAnswerBeatsInference(t *testing.T) {
	payload := models.Payload{
		"estimated_equipment_cost": 120000.0,
		"is_critical_replacement":  false,
		"is_power_solution":        false,
	}
	res := Resolve(models.IntentEquipment, payload, testSnapshot, models.VendorProfile{}, "a generator, maybe")
	require.True(t, res.Complete)

	power, err := res.Inputs.Bool("is_power_solution")
	require.NoError(t, err)
	assert.False(t, power)
}

func TestResolve_FMCGProfileSkipsTurnover(t *testing.T) {
	payload := models.Payload{
		"estimated_inventory_cost":   50000.0,
		"outstanding_supplier_debts": 10000.0,
	}
	res := Resolve(models.IntentInventory, payload, testSnapshot, models.VendorProfile{IsFMCG: true}, "restock drinks")
	require.True(t, res.Complete)

	days, err := res.Inputs.Number("inventory_turnover_days")
	require.NoError(t, err)
	assert.Equal(t, 30.0, days)
}

func TestResolve_ZeroAnswerCountsWhenAllowed(t *testing.T) {
	payload := models.Payload{
		"estimated_inventory_cost":   50000.0,
		"outstanding_supplier_debts": 0.0,
		"inventory_turnover_days":    20.0,
	}
	res := Resolve(models.IntentInventory, payload, testSnapshot, models.VendorProfile{}, "restock")
	assert.True(t, res.Complete, "an explicit 0 on a zero-allowed field is an answer")
}

func TestResolve_NegativeAnswerIsReAsked(t *testing.T) {
	payload := models.Payload{"estimated_salary": -100.0}
	res := Resolve(models.IntentHiring, payload, testSnapshot, models.VendorProfile{}, "hire?")
	require.False(t, res.Complete)
	assert.Equal(t, "estimated_salary", res.Needs.Field)
}
