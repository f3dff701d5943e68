package db

import (
	"context"
	"errors"

	"purenote-backend-go/internal/models"
)

// kvPlanRepository implements PlanRepository over the key-value store.
type kvPlanRepository struct {
	kv *KVStore
}

// NewPlanRepository creates a PlanRepository backed by the key-value store.
func NewPlanRepository(kv *KVStore) PlanRepository {
	return &kvPlanRepository{kv: kv}
}

func (r *kvPlanRepository) Get(ctx context.Context, userID string) (*models.UserPlan, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Get operation")
	}
	var plan models.UserPlan
	if err := r.kv.Get(ctx, models.UserPlanKey(userID), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *kvPlanRepository) Set(ctx context.Context, plan *models.UserPlan) error {
	if plan == nil || plan.UserID == "" {
		return errors.New("plan userID cannot be empty for Set operation")
	}
	return r.kv.Set(ctx, models.UserPlanKey(plan.UserID), plan)
}
