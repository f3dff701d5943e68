package db

import (
	"context"
	"errors"

	"purenote-backend-go/internal/models"
)

// kvDonationRepository implements DonationRepository over the key-value store.
type kvDonationRepository struct {
	kv *KVStore
}

// NewDonationRepository creates a DonationRepository backed by the key-value store.
func NewDonationRepository(kv *KVStore) DonationRepository {
	return &kvDonationRepository{kv: kv}
}

func (r *kvDonationRepository) Get(ctx context.Context, sessionID string) (*models.Donation, error) {
	if sessionID == "" {
		return nil, errors.New("sessionID cannot be empty for Get operation")
	}
	var donation models.Donation
	if err := r.kv.Get(ctx, models.DonationKey(sessionID), &donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *kvDonationRepository) Set(ctx context.Context, donation *models.Donation) error {
	if donation == nil || donation.SessionID == "" {
		return errors.New("donation sessionID cannot be empty for Set operation")
	}
	return r.kv.Set(ctx, models.DonationKey(donation.SessionID), donation)
}
