// internal/engine/resolver/resolver.go

// Package resolver walks an intent's field catalog against the accumulated
// payload and decides whether the conversation needs another answer.
package resolver

import (
	"strings"

	"vendor-advisor/internal/engine/fieldspec"
	"vendor-advisor/internal/models"
)

// Resolution is the outcome of one resolve pass. Exactly one of Needs or
// Inputs is set: Needs carries the single next question, Inputs the fully
// defaulted answer set ready for evaluation.
type Resolution struct {
	Complete bool
	Needs    *models.DataNeeded
	Inputs   models.Payload
}

// Resolve scans the intent's specs in declared order and returns the first
// triggered, unanswered field, or the resolved inputs when every triggered
// field is answered. The caller's payload is never mutated; inference and
// defaulting happen on a working copy. Deterministic for identical inputs.
func Resolve(intent models.Intent, payload models.Payload, snapshot models.FinancialSnapshot, profile models.VendorProfile, question string) Resolution {
	specs := fieldspec.ForIntent(intent)
	work := payload.Clone()

	ctx := fieldspec.Context{
		Payload:  work,
		Snapshot: snapshot,
		Profile:  profile,
		Question: strings.ToLower(question),
	}

	for _, spec := range specs {
		if !work.Known(spec.Name) && spec.Infer != nil {
			if v, ok := spec.Infer(ctx); ok {
				work[spec.Name] = v
			}
		}

		if spec.Trigger != nil && !spec.Trigger(ctx) {
			continue
		}

		if !spec.Answered(work) {
			return Resolution{Needs: spec.Needed(payload)}
		}
	}

	// Every triggered field is answered. Inject declared defaults for fields
	// whose trigger never fired so evaluators always see concrete values.
	for _, spec := range specs {
		if !work.Known(spec.Name) && spec.Default != nil {
			work[spec.Name] = spec.Default
		}
	}

	return Resolution{Complete: true, Inputs: work}
}
