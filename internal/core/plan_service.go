package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"purenote-backend-go/internal/db"
	"purenote-backend-go/internal/models"
)

// planService implements PlanService.
type planService struct {
	repo   db.PlanRepository
	logger *zap.Logger
}

// NewPlanService creates a PlanService instance.
func NewPlanService(repo db.PlanRepository, logger *zap.Logger) PlanService {
	return &planService{repo: repo, logger: logger}
}

// GetPlan returns the current plan for identity. Anonymous callers, users
// without a stored record, and storage failures all resolve to "free" — the
// lowest tier is a safe default, not a security-relevant value.
func (s *planService) GetPlan(ctx context.Context, identity *models.UserIdentity) (string, error) {
	if identity == nil {
		return models.PlanFree, nil
	}

	plan, err := s.repo.Get(ctx, identity.ID)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			s.logger.Warn("Failed to load user plan, defaulting to free",
				zap.String("userId", identity.ID), zap.Error(err))
		}
		return models.PlanFree, nil
	}
	return plan.Plan, nil
}

// UpdatePlan overwrites the user's plan record unconditionally
// (last-write-wins, no history retained).
func (s *planService) UpdatePlan(ctx context.Context, identity models.UserIdentity, plan string) (string, error) {
	if !models.IsValidPlan(plan) {
		return "", fmt.Errorf("%w: invalid plan %q", ErrInvalidInput, plan)
	}

	record := &models.UserPlan{
		Plan:      plan,
		UserID:    identity.ID,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Set(ctx, record); err != nil {
		return "", fmt.Errorf("%w: saving plan: %v", ErrStorage, err)
	}

	s.logger.Info("User plan updated", zap.String("userEmail", identity.Email), zap.String("plan", plan))
	return plan, nil
}
