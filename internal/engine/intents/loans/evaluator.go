// internal/engine/intents/loans/evaluator.go
package loans

import (
	"fmt"

	"vendor-advisor/internal/engine/rules"
	"vendor-advisor/internal/models"
)

const (
	maxRepaymentShare = 0.30
	maxDebtRatio      = 0.60
	maxNewLoanRatio   = 0.40
	safeDebtRatio     = 0.20
	safeRepayShare    = 0.15
	minBufferMonths   = 2.0
	approveThreshold  = 2
)

// Evaluator decides whether the vendor's debt position is manageable and
// whether a contemplated new loan is safe to take.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Intent() models.Intent {
	return models.IntentLoanManagement
}

func (e *Evaluator) Evaluate(inputs models.Payload, snap models.FinancialSnapshot) (models.DecisionResult, error) {
	totalDebt, err := inputs.Number("total_outstanding_debt")
	if err != nil {
		return models.DecisionResult{}, err
	}
	repayments, err := inputs.Number("monthly_debt_repayments")
	if err != nil {
		return models.DecisionResult{}, err
	}
	newLoan, err := inputs.Bool("considering_new_loan")
	if err != nil {
		return models.DecisionResult{}, err
	}
	loanAmount, err := inputs.Number("proposed_loan_amount")
	if err != nil {
		return models.DecisionResult{}, err
	}

	repayShare := rules.DebtRatio(repayments, snap.MonthlyRevenue)
	debtRatio := rules.DebtRatio(totalDebt, snap.MonthlyRevenue)
	projectedRatio := rules.DebtRatio(totalDebt+loanAmount, snap.MonthlyRevenue)
	buffer := rules.BufferMonths(snap)

	rejects := []rules.RejectCheck{
		{
			Triggered: repayShare > maxRepaymentShare,
			Reason:    fmt.Sprintf("Monthly repayments of %.0f exceed 30%% of monthly revenue", repayments),
			Steps: []string{
				"Restructure or consolidate repayments below 30% of revenue",
				"Talk to your lenders before missing a payment",
			},
		},
		{
			Triggered: debtRatio > maxDebtRatio,
			Reason:    fmt.Sprintf("Total debt of %.0f exceeds 60%% of monthly revenue", totalDebt),
			Steps: []string{
				"Pay down existing debt before anything else",
			},
		},
		{
			Triggered: newLoan && projectedRatio > maxNewLoanRatio,
			Reason:    fmt.Sprintf("Taking the new loan would push total debt of %.0f above 40%% of monthly revenue", totalDebt+loanAmount),
			Steps: []string{
				"Do not take the new loan at the proposed size",
				"Pay down existing debt before anything else",
			},
		},
	}

	signals := []rules.Signal{
		{
			Met:       debtRatio <= safeDebtRatio,
			Reason:    "Total debt sits within 20% of monthly revenue",
			Shortfall: fmt.Sprintf("total debt of %.0f is above 20%% of monthly revenue", totalDebt),
			Steps: []string{
				"Set a monthly pay-down target to bring debt under 20% of revenue",
			},
		},
		{
			Met:       repayShare <= safeRepayShare,
			Reason:    "Repayments take no more than 15% of monthly revenue",
			Shortfall: fmt.Sprintf("repayments of %.0f take more than 15%% of monthly revenue", repayments),
			Steps: []string{
				"Refinance to a longer term to lower the monthly repayment",
			},
		},
		{
			Met:       buffer >= minBufferMonths,
			Reason:    fmt.Sprintf("Savings cover %.1f months of expenses", buffer),
			Shortfall: fmt.Sprintf("savings cover only %.1f months of expenses, below the 2-month target", buffer),
			Steps: []string{
				"Build a two-month expense buffer before taking on more debt",
			},
		},
	}

	rec, reasons, steps := rules.Evaluate(rejects, signals, approveThreshold, []string{
		"Your debt position is manageable; keep repayments on schedule",
		"Review the position after your next financial update",
	})

	return models.DecisionResult{
		Recommendation: rec,
		Reasons:        reasons,
		Steps:          steps,
		Inputs:         inputs,
		Snapshot:       snap,
	}, nil
}
