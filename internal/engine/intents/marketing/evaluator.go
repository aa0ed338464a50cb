// internal/engine/intents/marketing/evaluator.go
package marketing

import (
	"fmt"

	"vendor-advisor/internal/engine/rules"
	"vendor-advisor/internal/models"
)

const (
	maxDebtRatio     = 0.40
	maxBudgetShare   = 0.10
	minMargin        = 0.15
	minCampaignROI   = 1.5
	approveThreshold = 2
)

// Evaluator decides whether the vendor should commit to marketing spend.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Intent() models.Intent {
	return models.IntentMarketing
}

// Evaluate runs the debt gate before any budget or campaign-history rule:
// marketing spend on top of heavy debt is rejected outright.
func (e *Evaluator) Evaluate(inputs models.Payload, snap models.FinancialSnapshot) (models.DecisionResult, error) {
	budget, err := inputs.Number("proposed_marketing_budget")
	if err != nil {
		return models.DecisionResult{}, err
	}
	debts, err := inputs.Number("outstanding_business_debts")
	if err != nil {
		return models.DecisionResult{}, err
	}
	hasPrevious, err := inputs.Bool("has_previous_campaigns")
	if err != nil {
		return models.DecisionResult{}, err
	}
	previousROI, err := inputs.Number("previous_campaign_roi")
	if err != nil {
		return models.DecisionResult{}, err
	}

	net := rules.NetIncome(snap)
	margin := rules.ProfitMargin(snap)
	debtRatio := rules.DebtRatio(debts, snap.MonthlyRevenue)

	rejects := []rules.RejectCheck{
		{
			Triggered: debtRatio > maxDebtRatio,
			Reason:    fmt.Sprintf("Outstanding debts of %.0f exceed 40%% of monthly revenue", debts),
			Steps: []string{
				"Bring debts below 40% of monthly revenue before spending on marketing",
			},
		},
		{
			Triggered: net <= 0,
			Reason:    fmt.Sprintf("Net income of %.0f cannot absorb discretionary marketing spend", net),
			Steps: []string{
				"Restore profitability before spending on marketing",
				"Use free channels (word of mouth, social media) in the meantime",
			},
		},
	}

	roiShortfall := fmt.Sprintf("previous campaign returned %.2f per unit spent, below the %.1f target", previousROI, minCampaignROI)
	if !hasPrevious {
		roiShortfall = "no campaign history to demonstrate marketing returns"
	}

	signals := []rules.Signal{
		{
			Met:       budget <= maxBudgetShare*snap.MonthlyRevenue,
			Reason:    fmt.Sprintf("Budget of %.0f stays within 10%% of monthly revenue", budget),
			Shortfall: fmt.Sprintf("budget %.0f is above 10%% of monthly revenue (%.0f)", budget, maxBudgetShare*snap.MonthlyRevenue),
			Steps: []string{
				"Scale the campaign budget down to at most 10% of monthly revenue",
			},
		},
		{
			Met:       margin >= minMargin,
			Reason:    fmt.Sprintf("Profit margin of %.1f%% can fund growth spend", margin*100),
			Shortfall: fmt.Sprintf("profit margin %.1f%% is below the 15%% threshold", margin*100),
			Steps: []string{
				"Improve your margin before scaling paid marketing",
			},
		},
		{
			Met:       hasPrevious && previousROI >= minCampaignROI,
			Reason:    fmt.Sprintf("Previous campaigns returned %.2f per unit spent", previousROI),
			Shortfall: roiShortfall,
			Steps: []string{
				"Run a small test campaign and measure the return before committing the full budget",
			},
		},
	}

	rec, reasons, steps := rules.Evaluate(rejects, signals, approveThreshold, []string{
		"Proceed with the campaign and track cost per sale weekly",
		"Stop spend early if returns fall below break-even",
	})

	return models.DecisionResult{
		Recommendation: rec,
		Reasons:        reasons,
		Steps:          steps,
		Inputs:         inputs,
		Snapshot:       snap,
	}, nil
}
