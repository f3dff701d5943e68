package db

import (
	"context"
	"errors"
	"fmt"

	"purenote-backend-go/internal/models"
)

// kvReviewRepository implements ReviewRepository over the key-value store.
// The review ID doubles as the store key, so no extra key building is needed
// beyond what models.ReviewKey produced at creation time.
type kvReviewRepository struct {
	kv *KVStore
}

// NewReviewRepository creates a ReviewRepository backed by the key-value store.
func NewReviewRepository(kv *KVStore) ReviewRepository {
	return &kvReviewRepository{kv: kv}
}

func (r *kvReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	snaps, err := r.kv.GetByPrefix(ctx, models.ReviewKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	reviews := make([]models.Review, 0, len(snaps))
	for _, snap := range snaps {
		var review models.Review
		if err := snap.DataTo(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review %q: %w", snap.Ref.ID, err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (r *kvReviewRepository) Get(ctx context.Context, reviewID string) (*models.Review, error) {
	if reviewID == "" {
		return nil, errors.New("reviewID cannot be empty for Get operation")
	}
	var review models.Review
	if err := r.kv.Get(ctx, reviewID, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *kvReviewRepository) Set(ctx context.Context, review *models.Review) error {
	if review == nil || review.ID == "" {
		return errors.New("review ID cannot be empty for Set operation")
	}
	return r.kv.Set(ctx, review.ID, review)
}

func (r *kvReviewRepository) Delete(ctx context.Context, reviewID string) error {
	if reviewID == "" {
		return errors.New("reviewID cannot be empty for Delete operation")
	}
	return r.kv.Delete(ctx, reviewID)
}
