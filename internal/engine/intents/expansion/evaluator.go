// internal/engine/intents/expansion/evaluator.go
package expansion

import (
	"fmt"

	"vendor-advisor/internal/engine/rules"
	"vendor-advisor/internal/models"
)

const (
	minStrongMargin  = 0.20
	bufferMonths     = 2.0
	maxPaybackMonths = 12.0
	approveThreshold = 2
)

// Evaluator decides whether the vendor should expand the business.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Intent() models.Intent {
	return models.IntentBusinessExpansion
}

func (e *Evaluator) Evaluate(inputs models.Payload, snap models.FinancialSnapshot) (models.DecisionResult, error) {
	cost, err := inputs.Number("estimated_expansion_cost")
	if err != nil {
		return models.DecisionResult{}, err
	}
	extraRevenue, err := inputs.Number("expected_additional_revenue")
	if err != nil {
		return models.DecisionResult{}, err
	}
	newLocation, err := inputs.Bool("is_new_location")
	if err != nil {
		return models.DecisionResult{}, err
	}

	net := rules.NetIncome(snap)
	margin := rules.ProfitMargin(snap)
	buffer := rules.BufferMonths(snap)
	payback := rules.PaybackMonths(cost, extraRevenue)

	rejects := []rules.RejectCheck{
		{
			Triggered: buffer < 1,
			Reason:    fmt.Sprintf("Savings of %.0f are below one month of expenses", snap.CurrentSavings),
			Steps: []string{
				"Build at least one month of expenses in savings before expanding",
			},
		},
		{
			Triggered: net <= 0,
			Reason:    fmt.Sprintf("Net income of %.0f means the current business is not yet profitable", net),
			Steps: []string{
				"Make the existing operation profitable before growing it",
			},
		},
	}

	paybackShortfall := fmt.Sprintf("the expansion would take more than 12 months to pay back at %.0f additional revenue per month", extraRevenue)
	if extraRevenue <= 0 {
		paybackShortfall = "no additional revenue is projected, so the expansion has no payback"
	}

	signals := []rules.Signal{
		{
			Met:       margin >= minStrongMargin,
			Reason:    fmt.Sprintf("Profit margin of %.1f%% shows the model works", margin*100),
			Shortfall: fmt.Sprintf("profit margin %.1f%% is below the 20%% threshold", margin*100),
			Steps: []string{
				"Strengthen the current location's margin before replicating it",
			},
		},
		{
			Met:       snap.CurrentSavings >= cost+bufferMonths*snap.MonthlyExpenses,
			Reason:    "Savings cover the expansion plus two months of expenses",
			Shortfall: fmt.Sprintf("savings %.0f do not cover the cost plus two months of expenses (%.0f needed)", snap.CurrentSavings, cost+bufferMonths*snap.MonthlyExpenses),
			Steps: []string{
				"Save toward the full cost plus a two-month buffer",
			},
		},
		{
			Met:       payback <= maxPaybackMonths,
			Reason:    fmt.Sprintf("Projected revenue pays back the cost in %.1f months", payback),
			Shortfall: paybackShortfall,
			Steps: []string{
				"Validate the revenue projection with a small pilot first",
			},
		},
	}

	approveSteps := []string{
		"Phase the spend so you can stop if early numbers disappoint",
		"Keep the existing operation's books separate to see the expansion's true performance",
	}
	if newLocation {
		approveSteps = append(approveSteps, "Negotiate a short initial lease for the new location")
	}

	rec, reasons, steps := rules.Evaluate(rejects, signals, approveThreshold, approveSteps)

	return models.DecisionResult{
		Recommendation: rec,
		Reasons:        reasons,
		Steps:          steps,
		Inputs:         inputs,
		Snapshot:       snap,
	}, nil
}
