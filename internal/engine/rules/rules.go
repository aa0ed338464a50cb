// internal/engine/rules/rules.go

// Package rules carries the tiered reject/approve/wait control flow shared by
// every intent evaluator, plus the derived-metric helpers their checks read.
package rules

import (
	"math"

	"vendor-advisor/internal/models"
)

// RejectCheck is a Tier-1 hard-risk predicate. Any triggered check forces
// REJECT regardless of approval strength.
type RejectCheck struct {
	Triggered bool
	Reason    string
	Steps     []string
}

// Signal is a Tier-2 approval-strength predicate, worth one point toward the
// intent's threshold. Shortfall and Steps describe the gap when unmet and the
// recommendation falls through to WAIT.
type Signal struct {
	Met       bool
	Reason    string
	Shortfall string
	Steps     []string
}

// Evaluate runs the three tiers: triggered reject checks short-circuit to
// REJECT; otherwise met signals are counted against threshold for APPROVE;
// otherwise WAIT, with a reason and remediation for every unmet signal.
// Reasons keep declaration order; steps are deduplicated preserving first
// occurrence.
func Evaluate(rejects []RejectCheck, signals []Signal, threshold int, approveSteps []string) (models.Recommendation, []string, []string) {
	var reasons []string
	var steps []string

	for _, rc := range rejects {
		if rc.Triggered {
			reasons = append(reasons, rc.Reason)
			steps = append(steps, rc.Steps...)
		}
	}
	if len(reasons) > 0 {
		return models.RecommendationReject, reasons, dedupe(steps)
	}

	met := 0
	for _, sig := range signals {
		if sig.Met {
			met++
		}
	}
	if met >= threshold {
		for _, sig := range signals {
			if sig.Met {
				reasons = append(reasons, sig.Reason)
			}
		}
		return models.RecommendationApprove, reasons, dedupe(approveSteps)
	}

	for _, sig := range signals {
		if !sig.Met {
			reasons = append(reasons, sig.Shortfall)
			steps = append(steps, sig.Steps...)
		}
	}
	return models.RecommendationWait, reasons, dedupe(steps)
}

// CountMet returns how many signals are met. Evaluators that key a reject
// check off the signal count (hiring's zero-strength rule) use this before
// calling Evaluate.
func CountMet(signals []Signal) int {
	met := 0
	for _, sig := range signals {
		if sig.Met {
			met++
		}
	}
	return met
}

func dedupe(steps []string) []string {
	if len(steps) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(steps))
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ==========================
// Derived metrics
// ==========================

// NetIncome is monthly revenue minus monthly expenses.
func NetIncome(s models.FinancialSnapshot) float64 {
	return s.MonthlyRevenue - s.MonthlyExpenses
}

// ProfitMargin is net income over revenue. Zero revenue reads as 0%: no
// income means no margin, not an error.
func ProfitMargin(s models.FinancialSnapshot) float64 {
	if s.MonthlyRevenue == 0 {
		return 0
	}
	return NetIncome(s) / s.MonthlyRevenue
}

// BufferMonths is how many months of expenses current savings cover. Zero
// expenses means no burn, so the buffer is unbounded.
func BufferMonths(s models.FinancialSnapshot) float64 {
	if s.MonthlyExpenses == 0 {
		return math.Inf(1)
	}
	return s.CurrentSavings / s.MonthlyExpenses
}

// DebtRatio is a debt-style ratio: amount over revenue. Positive debt against
// zero revenue is the highest-risk state and reads as infinite, so every
// reject threshold fires; zero against zero reads as 0.
func DebtRatio(amount, revenue float64) float64 {
	if revenue == 0 {
		if amount > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return amount / revenue
}

// PaybackMonths is cost over monthly gain. A non-positive gain never pays
// back and reads as infinite, leaving the payback signal unmet.
func PaybackMonths(cost, monthlyGain float64) float64 {
	if monthlyGain <= 0 {
		return math.Inf(1)
	}
	return cost / monthlyGain
}
