// internal/engine/intents/inventory/evaluator.go
package inventory

import (
	"fmt"

	"vendor-advisor/internal/engine/rules"
	"vendor-advisor/internal/models"
)

const (
	maxSupplierDebtRatio = 0.40
	fastTurnoverDays     = 30.0
	minMargin            = 0.15
	approveThreshold     = 2
)

// Evaluator decides whether the vendor should make an inventory purchase.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Intent() models.Intent {
	return models.IntentInventory
}

func (e *Evaluator) Evaluate(inputs models.Payload, snap models.FinancialSnapshot) (models.DecisionResult, error) {
	cost, err := inputs.Number("estimated_inventory_cost")
	if err != nil {
		return models.DecisionResult{}, err
	}
	supplierDebts, err := inputs.Number("outstanding_supplier_debts")
	if err != nil {
		return models.DecisionResult{}, err
	}
	turnoverDays, err := inputs.Number("inventory_turnover_days")
	if err != nil {
		return models.DecisionResult{}, err
	}

	net := rules.NetIncome(snap)
	margin := rules.ProfitMargin(snap)
	debtRatio := rules.DebtRatio(supplierDebts, snap.MonthlyRevenue)

	rejects := []rules.RejectCheck{
		{
			Triggered: debtRatio > maxSupplierDebtRatio,
			Reason:    fmt.Sprintf("Supplier debts of %.0f exceed 40%% of monthly revenue", supplierDebts),
			Steps: []string{
				"Clear supplier debts below 40% of monthly revenue before restocking",
				"Negotiate a repayment schedule with your suppliers",
			},
		},
		{
			Triggered: net <= 0 && cost > snap.CurrentSavings,
			Reason:    fmt.Sprintf("The business is not profitable and savings of %.0f cannot fund the %.0f purchase", snap.CurrentSavings, cost),
			Steps: []string{
				"Restore profitability before committing cash to stock",
			},
		},
	}

	signals := []rules.Signal{
		{
			Met:       turnoverDays <= fastTurnoverDays,
			Reason:    fmt.Sprintf("Stock sells through in %.0f days", turnoverDays),
			Shortfall: fmt.Sprintf("stock takes %.0f days to sell through, above the %.0f-day target", turnoverDays, fastTurnoverDays),
			Steps: []string{
				"Focus the purchase on your fastest-moving lines",
			},
		},
		{
			Met:       snap.CurrentSavings >= cost+snap.MonthlyExpenses,
			Reason:    "Savings cover the purchase plus a month of expenses",
			Shortfall: fmt.Sprintf("savings %.0f do not cover the purchase plus one month of expenses (%.0f needed)", snap.CurrentSavings, cost+snap.MonthlyExpenses),
			Steps: []string{
				"Buy a smaller batch that leaves one month of expenses in reserve",
			},
		},
		{
			Met:       margin >= minMargin,
			Reason:    fmt.Sprintf("Profit margin of %.1f%% is healthy", margin*100),
			Shortfall: fmt.Sprintf("profit margin %.1f%% is below the 15%% threshold", margin*100),
			Steps: []string{
				"Review pricing or cut costs to lift your margin",
			},
		},
	}

	rec, reasons, steps := rules.Evaluate(rejects, signals, approveThreshold, []string{
		"Proceed with the purchase and track sell-through weekly",
		"Keep supplier payments current to protect your credit terms",
	})

	return models.DecisionResult{
		Recommendation: rec,
		Reasons:        reasons,
		Steps:          steps,
		Inputs:         inputs,
		Snapshot:       snap,
	}, nil
}
