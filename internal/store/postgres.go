// internal/store/postgres.go

// Package store persists snapshots, decisions, and feedback in PostgreSQL,
// with a Redis read-through cache in front of snapshot lookups.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	standarderrors "vendor-advisor/internal/common/errors"
	"vendor-advisor/internal/common/logger"
	"vendor-advisor/internal/models"
)

type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func New(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db: db,
		logger: log.WithFields(map[string]interface{}{
			"component": "store",
		}),
	}
}

// FetchLatestSnapshot returns the most recently reported figures for a vendor.
func (s *Store) FetchLatestSnapshot(ctx context.Context, userID string) (models.FinancialSnapshot, error) {
	var snap models.FinancialSnapshot
	query := `SELECT monthly_revenue, monthly_expenses, current_savings
		FROM financial_snapshots
		WHERE user_id = $1
		ORDER BY reported_at DESC
		LIMIT 1`
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&snap.MonthlyRevenue, &snap.MonthlyExpenses, &snap.CurrentSavings,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FinancialSnapshot{}, standarderrors.NewSnapshotNotFoundError(userID)
		}
		return models.FinancialSnapshot{}, standarderrors.NewSnapshotFetchFailedError(err)
	}
	return snap, nil
}

// FetchProfile returns the vendor's profile flags. A missing profile is an
// error; every registered vendor row is created at signup.
func (s *Store) FetchProfile(ctx context.Context, userID string) (models.VendorProfile, error) {
	profile := models.VendorProfile{UserID: userID}
	query := `SELECT business_type, is_fmcg FROM vendor_profiles WHERE user_id = $1`
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&profile.BusinessType, &profile.IsFMCG)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VendorProfile{}, standarderrors.NewProfileNotFoundError(userID)
		}
		return models.VendorProfile{}, standarderrors.NewSnapshotFetchFailedError(err)
	}
	return profile, nil
}

// SaveDecision records a completed decision and returns its id.
func (s *Store) SaveDecision(ctx context.Context, userID string, intent models.Intent, question string, result models.DecisionResult) (string, error) {
	id := uuid.New().String()

	inputs, err := json.Marshal(result.Inputs)
	if err != nil {
		return "", standarderrors.NewDecisionSaveFailedError(fmt.Errorf("marshal inputs: %w", err))
	}
	reasons, err := json.Marshal(result.Reasons)
	if err != nil {
		return "", standarderrors.NewDecisionSaveFailedError(fmt.Errorf("marshal reasons: %w", err))
	}
	steps, err := json.Marshal(result.Steps)
	if err != nil {
		return "", standarderrors.NewDecisionSaveFailedError(fmt.Errorf("marshal steps: %w", err))
	}

	query := `INSERT INTO decisions
		(id, user_id, intent, question, recommendation, reasons, steps, inputs,
		 monthly_revenue, monthly_expenses, current_savings, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())`
	_, err = s.db.ExecContext(ctx, query,
		id, userID, string(intent), question, string(result.Recommendation),
		reasons, steps, inputs,
		result.Snapshot.MonthlyRevenue, result.Snapshot.MonthlyExpenses, result.Snapshot.CurrentSavings,
	)
	if err != nil {
		return "", standarderrors.NewDecisionSaveFailedError(err)
	}

	s.logger.Debug("decision saved", map[string]interface{}{
		"decisionId": id,
		"userId":     userID,
		"intent":     string(intent),
	})
	return id, nil
}

// UpsertFeedback stores one feedback row per decision; resubmitting replaces
// the previous answer.
func (s *Store) UpsertFeedback(ctx context.Context, decisionID string, helpful bool, comment string) error {
	query := `INSERT INTO decision_feedback (decision_id, helpful, comment, submitted_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (decision_id)
		DO UPDATE SET helpful = EXCLUDED.helpful, comment = EXCLUDED.comment, submitted_at = NOW()`
	if _, err := s.db.ExecContext(ctx, query, decisionID, helpful, comment); err != nil {
		return standarderrors.NewFeedbackSaveFailedError(err)
	}
	return nil
}

// InsertSnapshot appends a new reported snapshot for a vendor.
func (s *Store) InsertSnapshot(ctx context.Context, userID string, snap models.FinancialSnapshot) error {
	query := `INSERT INTO financial_snapshots
		(user_id, monthly_revenue, monthly_expenses, current_savings, reported_at)
		VALUES ($1, $2, $3, $4, NOW())`
	_, err := s.db.ExecContext(ctx, query, userID, snap.MonthlyRevenue, snap.MonthlyExpenses, snap.CurrentSavings)
	if err != nil {
		return standarderrors.NewSnapshotSaveFailedError(err)
	}
	return nil
}
