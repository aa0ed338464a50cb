// internal/engine/classify/classify.go
package classify

import (
	"errors"
	"strings"

	"vendor-advisor/internal/models"
)

// ErrNoIntentMatch is returned when a question matches no known intent.
var ErrNoIntentMatch = errors.New("no intent keywords matched")

// intentKeywords maps each intent to the phrases that signal it. Matching is
// case-insensitive substring matching against the raw question, so multi-word
// phrases are allowed.
var intentKeywords = map[models.Intent][]string{
	models.IntentHiring: {
		"hire", "hiring", "employee", "staff", "worker", "salary", "recruit",
	},
	models.IntentInventory: {
		"inventory", "stock", "restock", "supplier", "goods", "merchandise",
	},
	models.IntentMarketing: {
		"marketing", "advertis", "promotion", "campaign", "ads", "billboard",
	},
	models.IntentSavings: {
		"save", "saving", "savings", "set aside", "put away",
	},
	models.IntentEquipment: {
		"equipment", "machine", "generator", "solar", "inverter", "freezer",
		"fridge", "vehicle", "tool",
	},
	models.IntentLoanManagement: {
		"loan", "debt", "borrow", "repay", "interest", "credit",
	},
	models.IntentBusinessExpansion: {
		"expand", "expansion", "new location", "branch", "grow", "second shop",
		"scale",
	},
}

// Result carries the classified intent and how confident the match is.
type Result struct {
	Intent     models.Intent
	Confidence float64
	Matched    []string
}

// Classify picks the intent whose keywords appear most often in the question.
// Confidence is the winning intent's share of all keyword hits, so a question
// that only mentions hiring scores 1.0 while one that mixes hiring and loan
// language scores lower. Ties resolve in AllIntents order for determinism.
func Classify(question string) (Result, error) {
	q := strings.ToLower(question)

	hits := make(map[models.Intent][]string)
	total := 0
	for _, intent := range models.AllIntents {
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(q, kw) {
				hits[intent] = append(hits[intent], kw)
				total++
			}
		}
	}

	if total == 0 {
		return Result{}, ErrNoIntentMatch
	}

	var best models.Intent
	bestCount := 0
	for _, intent := range models.AllIntents {
		if len(hits[intent]) > bestCount {
			best = intent
			bestCount = len(hits[intent])
		}
	}

	return Result{
		Intent:     best,
		Confidence: float64(bestCount) / float64(total),
		Matched:    hits[best],
	}, nil
}
