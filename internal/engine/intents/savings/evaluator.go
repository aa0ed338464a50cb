// internal/engine/intents/savings/evaluator.go
package savings

import (
	"fmt"

	"vendor-advisor/internal/engine/rules"
	"vendor-advisor/internal/models"
)

const (
	maxSavingsShare  = 0.30
	minMargin        = 0.10
	targetBufferMo   = 6.0
	approveThreshold = 2
)

// Evaluator decides whether a monthly savings allocation is sustainable.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Intent() models.Intent {
	return models.IntentSavings
}

func (e *Evaluator) Evaluate(inputs models.Payload, snap models.FinancialSnapshot) (models.DecisionResult, error) {
	proposed, err := inputs.Number("proposed_monthly_savings")
	if err != nil {
		return models.DecisionResult{}, err
	}

	net := rules.NetIncome(snap)
	margin := rules.ProfitMargin(snap)
	buffer := rules.BufferMonths(snap)

	rejects := []rules.RejectCheck{
		{
			Triggered: net <= 0,
			Reason:    fmt.Sprintf("Net income of %.0f leaves no surplus to set aside", net),
			Steps: []string{
				"Restore profitability before committing to a savings plan",
			},
		},
		{
			Triggered: net > 0 && proposed > net,
			Reason:    fmt.Sprintf("Saving %.0f per month exceeds the %.0f the business earns", proposed, net),
			Steps: []string{
				"Set the monthly amount below your net income",
			},
		},
	}

	bufferShortfall := fmt.Sprintf("savings already cover %.1f months of expenses; consider investing surplus instead", buffer)

	signals := []rules.Signal{
		{
			Met:       proposed <= maxSavingsShare*net,
			Reason:    fmt.Sprintf("Saving %.0f per month stays within 30%% of net income", proposed),
			Shortfall: fmt.Sprintf("saving %.0f per month is above 30%% of net income (%.0f)", proposed, maxSavingsShare*net),
			Steps: []string{
				"Start with a smaller monthly amount and raise it as income grows",
			},
		},
		{
			Met:       margin >= minMargin,
			Reason:    fmt.Sprintf("Profit margin of %.1f%% supports regular saving", margin*100),
			Shortfall: fmt.Sprintf("profit margin %.1f%% is below the 10%% threshold", margin*100),
			Steps: []string{
				"Lift your margin so saving does not squeeze operations",
			},
		},
		{
			Met:       buffer < targetBufferMo,
			Reason:    fmt.Sprintf("Savings cover %.1f months of expenses; the allocation builds needed runway", buffer),
			Shortfall: bufferShortfall,
			Steps: []string{
				"Put surplus cash to work in the business or low-risk investments",
			},
		},
	}

	rec, reasons, steps := rules.Evaluate(rejects, signals, approveThreshold, []string{
		"Automate the transfer right after your busiest sales day",
		"Review the amount after your next financial update",
	})

	return models.DecisionResult{
		Recommendation: rec,
		Reasons:        reasons,
		Steps:          steps,
		Inputs:         inputs,
		Snapshot:       snap,
	}, nil
}
