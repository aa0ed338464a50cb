// internal/engine/orchestrator/orchestrator.go

// Package orchestrator ties intent classification, slot filling, and the
// per-intent evaluators into a single conversational turn.
package orchestrator

import (
	"time"

	standarderrors "vendor-advisor/internal/common/errors"
	"vendor-advisor/internal/common/logger"
	"vendor-advisor/internal/common/metrics"
	"vendor-advisor/internal/engine/fieldspec"
	"vendor-advisor/internal/engine/intents/equipment"
	"vendor-advisor/internal/engine/intents/expansion"
	"vendor-advisor/internal/engine/intents/hiring"
	"vendor-advisor/internal/engine/intents/inventory"
	"vendor-advisor/internal/engine/intents/loans"
	"vendor-advisor/internal/engine/intents/marketing"
	"vendor-advisor/internal/engine/intents/savings"
	"vendor-advisor/internal/engine/resolver"
	"vendor-advisor/internal/models"
)

// Evaluator is one intent's decision logic. Evaluate is called only with a
// fully resolved input payload.
type Evaluator interface {
	Intent() models.Intent
	Evaluate(inputs models.Payload, snap models.FinancialSnapshot) (models.DecisionResult, error)
}

// TurnResult is the outcome of one conversational turn. Exactly one of Needs
// or Decision is set.
type TurnResult struct {
	Needs    *models.DataNeeded
	Decision *models.DecisionResult
}

type Engine struct {
	evaluators map[models.Intent]Evaluator
	logger     logger.Logger
}

func New(log logger.Logger) *Engine {
	e := &Engine{
		evaluators: make(map[models.Intent]Evaluator),
		logger: log.WithFields(map[string]interface{}{
			"component": "orchestrator",
		}),
	}
	for _, ev := range []Evaluator{
		hiring.New(),
		inventory.New(),
		marketing.New(),
		savings.New(),
		equipment.New(),
		loans.New(),
		expansion.New(),
	} {
		e.evaluators[ev.Intent()] = ev
	}
	return e
}

// Decide runs one turn: it normalizes the accumulated payload, resolves the
// intent's field catalog, and either asks for the next missing field or
// dispatches to the intent's evaluator.
func (e *Engine) Decide(intent models.Intent, question string, payload models.Payload, snap models.FinancialSnapshot, profile models.VendorProfile) (TurnResult, error) {
	start := time.Now()
	defer func() {
		metrics.TurnDuration.WithLabelValues(string(intent)).Observe(time.Since(start).Seconds())
	}()

	evaluator, ok := e.evaluators[intent]
	if !ok {
		metrics.DecisionErrorsTotal.WithLabelValues(string(standarderrors.ErrCodeInvalidIntent)).Inc()
		return TurnResult{}, standarderrors.NewInvalidIntentError(string(intent))
	}

	if !snap.Valid() {
		metrics.DecisionErrorsTotal.WithLabelValues(string(standarderrors.ErrCodeSnapshotNotFound)).Inc()
		return TurnResult{}, standarderrors.NewSnapshotNotFoundError(profile.UserID)
	}

	res := resolver.Resolve(intent, normalize(intent, payload), snap, profile, question)
	if !res.Complete {
		metrics.FieldPromptsTotal.WithLabelValues(string(intent), res.Needs.Field).Inc()
		e.logger.Debug("asking for next field", map[string]interface{}{
			"intent": string(intent),
			"field":  res.Needs.Field,
		})
		return TurnResult{Needs: res.Needs}, nil
	}

	decision, err := evaluator.Evaluate(res.Inputs, snap)
	if err != nil {
		stdErr := standarderrors.NewFieldSpecMismatchError(string(intent), err)
		metrics.DecisionErrorsTotal.WithLabelValues(string(stdErr.Code)).Inc()
		e.logger.WithError(err).Error("evaluator failed on resolved inputs", map[string]interface{}{
			"intent": string(intent),
		})
		return TurnResult{}, stdErr
	}

	metrics.DecisionsTotal.WithLabelValues(string(intent), string(decision.Recommendation)).Inc()
	e.logger.Info("decision completed", map[string]interface{}{
		"intent":         string(intent),
		"recommendation": string(decision.Recommendation),
		"userId":         profile.UserID,
	})
	return TurnResult{Decision: &decision}, nil
}

// normalize drops payload keys the intent's catalog does not declare so stray
// client state cannot leak into evaluation.
func normalize(intent models.Intent, payload models.Payload) models.Payload {
	clean := make(models.Payload, len(payload))
	for k, v := range payload {
		if fieldspec.Declared(intent, k) {
			clean[k] = v
		}
	}
	return clean
}
