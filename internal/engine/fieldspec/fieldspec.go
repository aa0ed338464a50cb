// internal/engine/fieldspec/fieldspec.go
package fieldspec

import (
	"vendor-advisor/internal/models"
)

// ValueType is the wire type of an answer.
type ValueType string

const (
	Number  ValueType = "number"
	Boolean ValueType = "boolean"
	Enum    ValueType = "enum"
)

// Context is what trigger predicates and inference functions may consult: the
// working payload (already-known answers plus inferred values), the financial
// snapshot, the vendor profile and the lowercased question text.
type Context struct {
	Payload  models.Payload
	Snapshot models.FinancialSnapshot
	Profile  models.VendorProfile
	Question string
}

// Spec declares one input the engine may need to ask for. Specs are evaluated
// in declared order; conditional specs are declared after the fields their
// trigger depends on.
type Spec struct {
	Name            string
	Prompt          string
	Type            ValueType
	Options         []string
	CanBeZeroOrNone bool

	// Trigger decides whether the field is required for this conversation
	// instance. nil means always required.
	Trigger func(Context) bool

	// Infer supplies a value without asking, e.g. presuming a power solution
	// from keywords in the question. Consulted only when the payload has no
	// concrete value for the field.
	Infer func(Context) (interface{}, bool)

	// Default is injected into the resolved inputs when the trigger never
	// fired, so evaluators always see a concrete, typed value.
	Default interface{}
}

// Answered reports whether the payload carries a usable value for this spec.
// A numeric answer must be strictly positive unless the Spec allows zero;
// negative numbers are never accepted. A boolean answer counts either way.
func (s Spec) Answered(p models.Payload) bool {
	if !p.Known(s.Name) {
		return false
	}
	switch s.Type {
	case Number:
		v, err := p.Number(s.Name)
		if err != nil {
			return false
		}
		if s.CanBeZeroOrNone {
			return v >= 0
		}
		return v > 0
	case Boolean:
		_, err := p.Bool(s.Name)
		return err == nil
	case Enum:
		v, err := p.Enum(s.Name)
		if err != nil {
			return false
		}
		for _, opt := range s.Options {
			if v == opt {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Needed converts the Spec into the prompt the caller must re-ask, echoing
// the payload so the next turn can resubmit it merged with the new answer.
func (s Spec) Needed(payload models.Payload) *models.DataNeeded {
	return &models.DataNeeded{
		Field:           s.Name,
		Prompt:          s.Prompt,
		Type:            string(s.Type),
		Options:         s.Options,
		CanBeZeroOrNone: s.CanBeZeroOrNone,
		PayloadSoFar:    payload.Clone(),
	}
}
