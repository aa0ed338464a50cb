// internal/engine/intents/hiring/evaluator.go
package hiring

import (
	"fmt"

	"vendor-advisor/internal/engine/rules"
	"vendor-advisor/internal/models"
)

// Evaluator decides whether the vendor can afford a new hire.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Intent() models.Intent {
	return models.IntentHiring
}

// Evaluate scores three affordability checks: net income covering three times
// the salary, savings covering a month of expenses, and net income staying
// positive after the salary. All three pass for APPROVE; none passing is a
// hard reject.
func (e *Evaluator) Evaluate(inputs models.Payload, snap models.FinancialSnapshot) (models.DecisionResult, error) {
	salary, err := inputs.Number("estimated_salary")
	if err != nil {
		return models.DecisionResult{}, err
	}
	revenueGenerating, err := inputs.Bool("is_revenue_generating")
	if err != nil {
		return models.DecisionResult{}, err
	}

	net := rules.NetIncome(snap)

	signals := []rules.Signal{
		{
			Met:       net >= 3*salary,
			Reason:    fmt.Sprintf("Net income of %.0f covers at least three times the %.0f salary", net, salary),
			Shortfall: fmt.Sprintf("net income %.0f is below three times the proposed salary (%.0f needed)", net, 3*salary),
			Steps: []string{
				"Grow monthly net income before taking on a fixed salary",
				"Consider part-time or commission-based help first",
			},
		},
		{
			Met:       snap.CurrentSavings >= snap.MonthlyExpenses,
			Reason:    fmt.Sprintf("Savings of %.0f cover at least one month of expenses", snap.CurrentSavings),
			Shortfall: fmt.Sprintf("savings %.0f are below one month of expenses (%.0f)", snap.CurrentSavings, snap.MonthlyExpenses),
			Steps: []string{
				"Build savings to at least one month of expenses before hiring",
			},
		},
		{
			Met:       net-salary > 0,
			Reason:    "Net income stays positive after paying the salary",
			Shortfall: fmt.Sprintf("paying the salary would leave net income at %.0f", net-salary),
			Steps: []string{
				"Grow monthly net income before taking on a fixed salary",
			},
		},
	}

	rejectSteps := []string{
		"Do not commit to a fixed salary yet",
		"Cut expenses or grow revenue until the salary fits the business",
		"Revisit this decision after your next financial update",
	}

	rejects := []rules.RejectCheck{
		{
			Triggered: rules.CountMet(signals) == 0,
			Reason:    "None of the hiring affordability checks passed",
			Steps:     rejectSteps,
		},
		{
			Triggered: net < salary && !revenueGenerating,
			Reason:    fmt.Sprintf("Net income %.0f cannot cover the %.0f salary for a role that does not generate revenue", net, salary),
			Steps:     rejectSteps,
		},
	}

	rec, reasons, steps := rules.Evaluate(rejects, signals, len(signals), []string{
		"Proceed with the hire and track the payroll impact monthly",
		"Set a 3-month review point for the new role",
	})

	return models.DecisionResult{
		Recommendation: rec,
		Reasons:        reasons,
		Steps:          steps,
		Inputs:         inputs,
		Snapshot:       snap,
	}, nil
}
