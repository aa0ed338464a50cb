// internal/models/decision.go
package models

import "fmt"

// Intent is the category of financial decision being evaluated. The set is
// closed; every intent has its own field catalog and rule evaluator.
type Intent string

const (
	IntentHiring            Intent = "hiring"
	IntentInventory         Intent = "inventory"
	IntentMarketing         Intent = "marketing"
	IntentSavings           Intent = "savings"
	IntentEquipment         Intent = "equipment"
	IntentLoanManagement    Intent = "loan_management"
	IntentBusinessExpansion Intent = "business_expansion"
)

// AllIntents lists every supported intent in a stable order.
var AllIntents = []Intent{
	IntentHiring,
	IntentInventory,
	IntentMarketing,
	IntentSavings,
	IntentEquipment,
	IntentLoanManagement,
	IntentBusinessExpansion,
}

// ParseIntent validates a wire-level intent string.
func ParseIntent(s string) (Intent, error) {
	for _, in := range AllIntents {
		if string(in) == s {
			return in, nil
		}
	}
	return "", fmt.Errorf("unknown intent %q", s)
}

// Recommendation is the terminal verdict of a completed conversation.
type Recommendation string

const (
	RecommendationApprove Recommendation = "APPROVE"
	RecommendationWait    Recommendation = "WAIT"
	RecommendationReject  Recommendation = "REJECT"
)

// FinancialSnapshot is the vendor's most recently reported figures. It is a
// read-only input to the engine.
type FinancialSnapshot struct {
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	CurrentSavings  float64 `json:"currentSavings"`
}

// Valid reports whether every figure is non-negative.
func (s FinancialSnapshot) Valid() bool {
	return s.MonthlyRevenue >= 0 && s.MonthlyExpenses >= 0 && s.CurrentSavings >= 0
}

// VendorProfile carries the profile flags field triggers may consult.
type VendorProfile struct {
	UserID       string `json:"userId"`
	BusinessType string `json:"businessType"`
	IsFMCG       bool   `json:"isFmcg"`
}

// DataNeeded asks the caller for exactly one more answer. PayloadSoFar echoes
// the accumulated payload so the caller can resubmit it merged with the new
// value under Field.
type DataNeeded struct {
	Field           string   `json:"field"`
	Prompt          string   `json:"prompt"`
	Type            string   `json:"type"`
	Options         []string `json:"options,omitempty"`
	CanBeZeroOrNone bool     `json:"canBeZeroOrNone"`
	PayloadSoFar    Payload  `json:"payloadSoFar"`
}

// DecisionResult is the terminal output of a completed conversation. Reasons
// and Steps are ordered; Steps are deduplicated. Inputs echoes every resolved
// answer including injected defaults.
type DecisionResult struct {
	Recommendation Recommendation    `json:"recommendation"`
	Reasons        []string          `json:"reasons"`
	Steps          []string          `json:"steps"`
	Inputs         Payload           `json:"inputs"`
	Snapshot       FinancialSnapshot `json:"snapshot"`
}
