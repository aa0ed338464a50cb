// internal/engine/intents/equipment/evaluator.go
package equipment

import (
	"fmt"

	"vendor-advisor/internal/engine/rules"
	"vendor-advisor/internal/models"
)

const (
	maxPaybackMonths = 12.0
	minStrongMargin  = 0.20
	bufferMonths     = 2.0
	approveThreshold = 1
)

// Evaluator decides whether the vendor should buy a piece of equipment. A
// single strong signal approves; a critical replacement the savings can cover
// overrides weak financials.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Intent() models.Intent {
	return models.IntentEquipment
}

func (e *Evaluator) Evaluate(inputs models.Payload, snap models.FinancialSnapshot) (models.DecisionResult, error) {
	cost, err := inputs.Number("estimated_equipment_cost")
	if err != nil {
		return models.DecisionResult{}, err
	}
	critical, err := inputs.Bool("is_critical_replacement")
	if err != nil {
		return models.DecisionResult{}, err
	}
	powerSolution, err := inputs.Bool("is_power_solution")
	if err != nil {
		return models.DecisionResult{}, err
	}
	energySavings, err := inputs.Number("expected_monthly_energy_savings")
	if err != nil {
		return models.DecisionResult{}, err
	}

	net := rules.NetIncome(snap)
	margin := rules.ProfitMargin(snap)
	payback := rules.PaybackMonths(cost, energySavings)

	rejects := []rules.RejectCheck{
		{
			Triggered: net <= 0 && !critical,
			Reason:    fmt.Sprintf("Net income of %.0f cannot absorb a non-essential purchase", net),
			Steps: []string{
				"Restore profitability before buying non-essential equipment",
			},
		},
		{
			Triggered: net <= 0 && cost > snap.CurrentSavings,
			Reason:    fmt.Sprintf("Savings of %.0f cannot fund the %.0f purchase while the business runs at a loss", snap.CurrentSavings, cost),
			Steps: []string{
				"Look into repairing the existing equipment or leasing instead",
			},
		},
	}

	paybackShortfall := fmt.Sprintf("expected energy savings of %.0f per month do not pay back the %.0f cost within 12 months", energySavings, cost)
	if !powerSolution {
		paybackShortfall = "the purchase has no measured monthly saving to pay itself back"
	}

	signals := []rules.Signal{
		{
			Met:       critical && snap.CurrentSavings >= cost,
			Reason:    "Critical replacement and savings cover the full cost",
			Shortfall: fmt.Sprintf("savings %.0f do not cover the %.0f cost of a critical replacement", snap.CurrentSavings, cost),
			Steps: []string{
				"Build savings to cover the replacement, or finance it over a short term",
			},
		},
		{
			Met:       powerSolution && payback <= maxPaybackMonths,
			Reason:    fmt.Sprintf("The power solution pays for itself in %.1f months", payback),
			Shortfall: paybackShortfall,
			Steps: []string{
				"Get quotes with measured energy savings before committing",
			},
		},
		{
			Met:       margin >= minStrongMargin && snap.CurrentSavings >= cost+bufferMonths*snap.MonthlyExpenses,
			Reason:    fmt.Sprintf("Profit margin of %.1f%% and savings cover the cost plus two months of expenses", margin*100),
			Shortfall: fmt.Sprintf("margin %.1f%% with savings %.0f does not leave two months of expenses after the purchase", margin*100, snap.CurrentSavings),
			Steps: []string{
				"Grow savings until the purchase leaves two months of expenses in reserve",
			},
		},
	}

	// A critical replacement never scores against the override it failed; the
	// shortfall above already explains the gap.
	if !critical {
		signals[0].Shortfall = "the purchase is not a critical replacement, so it must stand on its returns"
		signals[0].Steps = nil
	}

	rec, reasons, steps := rules.Evaluate(rejects, signals, approveThreshold, []string{
		"Proceed with the purchase and keep the receipt and warranty on file",
		"Track the running cost against the old setup for three months",
	})

	return models.DecisionResult{
		Recommendation: rec,
		Reasons:        reasons,
		Steps:          steps,
		Inputs:         inputs,
		Snapshot:       snap,
	}, nil
}
