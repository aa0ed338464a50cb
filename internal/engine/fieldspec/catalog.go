// internal/engine/fieldspec/catalog.go
package fieldspec

import (
	"strings"

	"vendor-advisor/internal/models"
)

// powerKeywords presume a power solution from the question text, so vendors
// asking about a generator are not asked whether it is one.
var powerKeywords = []string{"generator", "solar", "inverter", "battery", "power"}

func mentionsPowerSolution(question string) bool {
	for _, kw := range powerKeywords {
		if strings.Contains(question, kw) {
			return true
		}
	}
	return false
}

// catalog declares, per intent, the ordered list of fields the resolver asks
// for. Order is the ask order; conditional fields follow the fields their
// trigger reads.
var catalog = map[models.Intent][]Spec{
	models.IntentHiring: {
		{
			Name:   "estimated_salary",
			Prompt: "What is the estimated monthly salary for this hire?",
			Type:   Number,
		},
		{
			Name:            "is_revenue_generating",
			Prompt:          "Will this role directly generate revenue (e.g., sales or production)?",
			Type:            Boolean,
			CanBeZeroOrNone: true,
			Default:         false,
		},
	},
	models.IntentInventory: {
		{
			Name:   "estimated_inventory_cost",
			Prompt: "How much will this inventory purchase cost?",
			Type:   Number,
		},
		{
			Name:            "outstanding_supplier_debts",
			Prompt:          "How much do you currently owe suppliers? Enter 0 if nothing.",
			Type:            Number,
			CanBeZeroOrNone: true,
			Default:         0.0,
		},
		{
			Name:   "inventory_turnover_days",
			Prompt: "On average, how many days does it take to sell through your stock?",
			Type:   Number,
			// FMCG stock is presumed fast-moving; don't ask.
			Trigger: func(ctx Context) bool { return !ctx.Profile.IsFMCG },
			Default: 30.0,
		},
	},
	models.IntentMarketing: {
		{
			Name:   "proposed_marketing_budget",
			Prompt: "How much do you plan to spend on this campaign?",
			Type:   Number,
		},
		{
			Name:            "outstanding_business_debts",
			Prompt:          "How much outstanding business debt do you have? Enter 0 if none.",
			Type:            Number,
			CanBeZeroOrNone: true,
			Default:         0.0,
		},
		{
			Name:            "has_previous_campaigns",
			Prompt:          "Have you run marketing campaigns before?",
			Type:            Boolean,
			CanBeZeroOrNone: true,
			Default:         false,
		},
		{
			Name:            "previous_campaign_roi",
			Prompt:          "What return did your last campaign make per unit spent? (e.g., 1.5 means 1.50 back per 1 spent; 0 if it made nothing)",
			Type:            Number,
			CanBeZeroOrNone: true,
			Trigger: func(ctx Context) bool {
				prev, err := ctx.Payload.Bool("has_previous_campaigns")
				return err == nil && prev
			},
			Default: 0.0,
		},
	},
	models.IntentSavings: {
		{
			Name:   "proposed_monthly_savings",
			Prompt: "How much do you want to set aside each month?",
			Type:   Number,
		},
	},
	models.IntentEquipment: {
		{
			Name:   "estimated_equipment_cost",
			Prompt: "How much does the equipment cost?",
			Type:   Number,
		},
		{
			Name:            "is_critical_replacement",
			Prompt:          "Is this replacing equipment your business cannot operate without?",
			Type:            Boolean,
			CanBeZeroOrNone: true,
			Default:         false,
		},
		{
			Name:            "is_power_solution",
			Prompt:          "Is this a power solution (generator, solar, inverter)?",
			Type:            Boolean,
			CanBeZeroOrNone: true,
			Infer: func(ctx Context) (interface{}, bool) {
				if mentionsPowerSolution(ctx.Question) {
					return true, true
				}
				return nil, false
			},
			Default: false,
		},
		{
			Name:            "expected_monthly_energy_savings",
			Prompt:          "How much do you expect to save on energy costs each month? Enter 0 if unsure.",
			Type:            Number,
			CanBeZeroOrNone: true,
			Trigger: func(ctx Context) bool {
				power, err := ctx.Payload.Bool("is_power_solution")
				return err == nil && power
			},
			Default: 0.0,
		},
	},
	models.IntentLoanManagement: {
		{
			Name:            "total_outstanding_debt",
			Prompt:          "What is your total outstanding debt? Enter 0 if none.",
			Type:            Number,
			CanBeZeroOrNone: true,
			Default:         0.0,
		},
		{
			Name:            "monthly_debt_repayments",
			Prompt:          "How much do you repay on debts each month? Enter 0 if nothing.",
			Type:            Number,
			CanBeZeroOrNone: true,
			Default:         0.0,
		},
		{
			Name:            "considering_new_loan",
			Prompt:          "Are you considering taking a new loan?",
			Type:            Boolean,
			CanBeZeroOrNone: true,
			Default:         false,
		},
		{
			Name:   "proposed_loan_amount",
			Prompt: "How much would the new loan be?",
			Type:   Number,
			Trigger: func(ctx Context) bool {
				newLoan, err := ctx.Payload.Bool("considering_new_loan")
				return err == nil && newLoan
			},
			Default: 0.0,
		},
	},
	models.IntentBusinessExpansion: {
		{
			Name:   "estimated_expansion_cost",
			Prompt: "How much will the expansion cost in total?",
			Type:   Number,
		},
		{
			Name:            "expected_additional_revenue",
			Prompt:          "How much additional monthly revenue do you expect from the expansion? Enter 0 if unsure.",
			Type:            Number,
			CanBeZeroOrNone: true,
			Default:         0.0,
		},
		{
			Name:            "is_new_location",
			Prompt:          "Does the expansion involve opening a new location?",
			Type:            Boolean,
			CanBeZeroOrNone: true,
			Default:         false,
		},
	},
}

// ForIntent returns the ordered field specs for an intent. The returned slice
// must not be modified.
func ForIntent(intent models.Intent) []Spec {
	return catalog[intent]
}

// Declared reports whether the intent's catalog declares the field. The
// orchestrator uses this to drop intent-irrelevant payload keys before
// resolution.
func Declared(intent models.Intent, field string) bool {
	for _, s := range catalog[intent] {
		if s.Name == field {
			return true
		}
	}
	return false
}
