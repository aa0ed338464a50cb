// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// turnRequestSchema validates the inbound decision-turn request before the
// engine runs. The payload stays loosely typed here; value-level checks are
// the resolver's job.
var turnRequestSchema = map[string]interface{}{
	"type":                 "object",
	"required":             []interface{}{"userId", "question"},
	"additionalProperties": false,
	"properties": map[string]interface{}{
		"userId": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"intent": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{
				"hiring", "inventory", "marketing", "savings",
				"equipment", "loan_management", "business_expansion",
			},
		},
		"question": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
			"maxLength": 2000,
		},
		"payload": map[string]interface{}{
			"type": "object",
		},
	},
}

// feedbackRequestSchema validates the feedback upsert request.
var feedbackRequestSchema = map[string]interface{}{
	"type":                 "object",
	"required":             []interface{}{"userId", "decisionId", "helpful"},
	"additionalProperties": false,
	"properties": map[string]interface{}{
		"userId":     map[string]interface{}{"type": "string", "minLength": 1},
		"decisionId": map[string]interface{}{"type": "string", "minLength": 1},
		"helpful":    map[string]interface{}{"type": "boolean"},
		"comment":    map[string]interface{}{"type": "string", "maxLength": 2000},
	},
}

// snapshotRequestSchema validates the snapshot webhook body.
var snapshotRequestSchema = map[string]interface{}{
	"type":                 "object",
	"required":             []interface{}{"userId", "monthlyRevenue", "monthlyExpenses", "currentSavings"},
	"additionalProperties": false,
	"properties": map[string]interface{}{
		"userId":          map[string]interface{}{"type": "string", "minLength": 1},
		"monthlyRevenue":  map[string]interface{}{"type": "number", "minimum": 0},
		"monthlyExpenses": map[string]interface{}{"type": "number", "minimum": 0},
		"currentSavings":  map[string]interface{}{"type": "number", "minimum": 0},
	},
}

// ValidateTurnRequest checks a decoded decision-turn request.
func ValidateTurnRequest(body map[string]interface{}) error {
	return validate(turnRequestSchema, body)
}

// ValidateFeedbackRequest checks a decoded feedback upsert request.
func ValidateFeedbackRequest(body map[string]interface{}) error {
	return validate(feedbackRequestSchema, body)
}

// ValidateSnapshotRequest checks a decoded snapshot webhook body.
func ValidateSnapshotRequest(body map[string]interface{}) error {
	return validate(snapshotRequestSchema, body)
}

func validate(schemaMap, data map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(schemaMap)
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("invalid request: %s", strings.Join(msgs, "; "))
	}

	return nil
}
