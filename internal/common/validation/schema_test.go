// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTurnRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]interface{}
		wantErr bool
	}{
		{
			name: "valid with payload",
			body: map[string]interface{}{
				"userId":   "vendor-1",
				"intent":   "hiring",
				"question": "Should I hire a second shop assistant?",
				"payload":  map[string]interface{}{"estimated_salary": 40000.0},
			},
			wantErr: false,
		},
		{
			name: "valid without intent, classifier decides",
			body: map[string]interface{}{
				"userId":   "vendor-1",
				"question": "Can I afford a new generator?",
			},
			wantErr: false,
		},
		{
			name: "missing question",
			body: map[string]interface{}{
				"userId": "vendor-1",
				"intent": "hiring",
			},
			wantErr: true,
		},
		{
			name: "unknown intent",
			body: map[string]interface{}{
				"userId":   "vendor-1",
				"intent":   "gambling",
				"question": "Should I?",
			},
			wantErr: true,
		},
		{
			name: "payload must be an object",
			body: map[string]interface{}{
				"userId":   "vendor-1",
				"question": "Should I?",
				"payload":  "yes",
			},
			wantErr: true,
		},
		{
			name: "extra top-level field rejected",
			body: map[string]interface{}{
				"userId":   "vendor-1",
				"question": "Should I?",
				"admin":    true,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTurnRequest(tt.body)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSnapshotRequest(t *testing.T) {
	assert.NoError(t, ValidateSnapshotRequest(map[string]interface{}{
		"userId":          "vendor-1",
		"monthlyRevenue":  500000.0,
		"monthlyExpenses": 350000.0,
		"currentSavings":  400000.0,
	}))

	assert.Error(t, ValidateSnapshotRequest(map[string]interface{}{
		"userId":          "vendor-1",
		"monthlyRevenue":  -1.0,
		"monthlyExpenses": 0.0,
		"currentSavings":  0.0,
	}), "negative figures are out of range")
}

func TestValidateFeedbackRequest(t *testing.T) {
	assert.NoError(t, ValidateFeedbackRequest(map[string]interface{}{
		"userId":     "vendor-1",
		"decisionId": "d-1",
		"helpful":    true,
		"comment":    "spot on",
	}))

	assert.Error(t, ValidateFeedbackRequest(map[string]interface{}{
		"userId":     "vendor-1",
		"decisionId": "d-1",
	}), "helpful flag is required")
}
