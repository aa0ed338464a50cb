// internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"
	"time"

	standarderrors "vendor-advisor/internal/common/errors"
	"vendor-advisor/internal/common/validation"
	"vendor-advisor/internal/engine/classify"
	"vendor-advisor/internal/models"
)

type decisionRequest struct {
	UserID   string         `json:"userId"`
	Intent   string         `json:"intent,omitempty"`
	Question string         `json:"question"`
	Payload  models.Payload `json:"payload,omitempty"`
}

type feedbackRequest struct {
	UserID     string `json:"userId"`
	DecisionID string `json:"decisionId"`
	Helpful    bool   `json:"helpful"`
	Comment    string `json:"comment,omitempty"`
}

type snapshotRequest struct {
	UserID          string  `json:"userId"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	CurrentSavings  float64 `json:"currentSavings"`
}

// decodeAndValidate decodes the body once into a raw map for schema
// validation, then re-marshals into the typed request.
func decodeAndValidate(r *http.Request, schemaCheck func(map[string]interface{}) error, dst interface{}) error {
	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return standarderrors.NewValidationFailedError("request body is not valid JSON")
	}
	if err := schemaCheck(raw); err != nil {
		return standarderrors.NewValidationFailedError(err.Error())
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return standarderrors.NewValidationFailedError(err.Error())
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return standarderrors.NewValidationFailedError(err.Error())
	}
	return nil
}

// handleDecision runs one conversational turn. When the request omits the
// intent, the question is classified by keyword; a question that matches no
// intent is rejected so the client can ask the vendor to rephrase.
func (s *Server) handleDecision(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "error"
	defer func() {
		if s.obs != nil {
			s.obs.RecordTurnProcessed(r.Context(), status)
			s.obs.RecordTurnDuration(r.Context(), time.Since(start), status)
		}
	}()

	var req decisionRequest
	if err := decodeAndValidate(r, validation.ValidateTurnRequest, &req); err != nil {
		s.respondStandardError(w, r, err)
		return
	}

	var intent models.Intent
	if req.Intent != "" {
		parsed, err := models.ParseIntent(req.Intent)
		if err != nil {
			s.respondStandardError(w, r, standarderrors.NewInvalidIntentError(req.Intent))
			return
		}
		intent = parsed
	} else {
		classified, err := classify.Classify(req.Question)
		if err != nil {
			s.respondStandardError(w, r, standarderrors.NewInvalidIntentError(req.Question))
			return
		}
		intent = classified.Intent
		s.logger.Debug("classified intent from question", map[string]interface{}{
			"intent":     string(intent),
			"confidence": classified.Confidence,
		})
	}

	ctx := r.Context()
	snap, err := s.store.FetchLatestSnapshot(ctx, req.UserID)
	if err != nil {
		s.respondStandardError(w, r, err)
		return
	}
	profile, err := s.store.FetchProfile(ctx, req.UserID)
	if err != nil {
		s.respondStandardError(w, r, err)
		return
	}

	if req.Payload == nil {
		req.Payload = models.Payload{}
	}
	turn, err := s.engine.Decide(intent, req.Question, req.Payload, snap, profile)
	if err != nil {
		s.respondStandardError(w, r, err)
		return
	}

	if turn.Needs != nil {
		status = "needs_field"
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":     "needs_field",
			"intent":     string(intent),
			"dataNeeded": turn.Needs,
		})
		return
	}

	decisionID, err := s.store.SaveDecision(ctx, req.UserID, intent, req.Question, *turn.Decision)
	if err != nil {
		s.respondStandardError(w, r, err)
		return
	}

	status = "complete"
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "complete",
		"intent":     string(intent),
		"decisionId": decisionID,
		"decision":   turn.Decision,
	})
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeAndValidate(r, validation.ValidateFeedbackRequest, &req); err != nil {
		s.respondStandardError(w, r, err)
		return
	}

	if err := s.store.UpsertFeedback(r.Context(), req.DecisionID, req.Helpful, req.Comment); err != nil {
		s.respondStandardError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "recorded",
	})
}

// handleSnapshotWebhook ingests a newly reported snapshot and invalidates the
// cached copy so the next turn evaluates against fresh figures.
func (s *Server) handleSnapshotWebhook(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if err := decodeAndValidate(r, validation.ValidateSnapshotRequest, &req); err != nil {
		s.respondStandardError(w, r, err)
		return
	}

	snap := models.FinancialSnapshot{
		MonthlyRevenue:  req.MonthlyRevenue,
		MonthlyExpenses: req.MonthlyExpenses,
		CurrentSavings:  req.CurrentSavings,
	}
	if err := s.store.InsertSnapshot(r.Context(), req.UserID, snap); err != nil {
		s.respondStandardError(w, r, err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"status": "accepted",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
			})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
	})
}

func (s *Server) respondStandardError(w http.ResponseWriter, r *http.Request, err error) {
	std := standarderrors.AsStandard(err)
	if std.HTTPStatus() >= http.StatusInternalServerError {
		s.logger.WithError(err).Error("request failed", map[string]interface{}{
			"path": r.URL.Path,
			"code": string(std.Code),
		})
	} else {
		s.logger.WithError(err).Warn("request rejected", map[string]interface{}{
			"path": r.URL.Path,
			"code": string(std.Code),
		})
	}

	respondJSON(w, std.HTTPStatus(), map[string]interface{}{
		"error": map[string]interface{}{
			"code":      string(std.Code),
			"message":   std.PublicMessage(),
			"retryable": std.Retryable,
		},
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
