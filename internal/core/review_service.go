package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"purenote-backend-go/internal/db"
	"purenote-backend-go/internal/models"
)

// reviewService implements ReviewService.
type reviewService struct {
	repo   db.ReviewRepository
	logger *zap.Logger
}

// NewReviewService creates a ReviewService instance.
func NewReviewService(repo db.ReviewRepository, logger *zap.Logger) ReviewService {
	return &reviewService{repo: repo, logger: logger}
}

// ListReviews returns all reviews sorted by creation time, newest first.
func (s *reviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing reviews: %v", ErrStorage, err)
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// CreateReview validates and persists a new review authored by identity. The
// stored author name and email are a snapshot taken now; they are not
// refreshed if the user later changes their profile.
func (s *reviewService) CreateReview(ctx context.Context, identity models.UserIdentity, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}

	userName := identity.Name
	if userName == "" {
		userName = identity.Email
	}

	now := time.Now().UTC()
	review := &models.Review{
		ID:        models.ReviewKey(now, identity.ID),
		UserID:    identity.ID,
		UserName:  userName,
		UserEmail: identity.Email,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
	}

	if err := s.repo.Set(ctx, review); err != nil {
		return nil, fmt.Errorf("%w: saving review: %v", ErrStorage, err)
	}

	s.logger.Info("Review created", zap.String("reviewId", review.ID), zap.String("userEmail", identity.Email))
	return review, nil
}

// DeleteReview removes a review after checking that identity is its author.
func (s *reviewService) DeleteReview(ctx context.Context, identity models.UserIdentity, reviewID string) error {
	review, err := s.repo.Get(ctx, reviewID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: review %q", ErrNotFound, reviewID)
		}
		return fmt.Errorf("%w: loading review %q: %v", ErrStorage, reviewID, err)
	}

	if review.UserID != identity.ID {
		return fmt.Errorf("%w: you can only delete your own reviews", ErrForbidden)
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("%w: deleting review %q: %v", ErrStorage, reviewID, err)
	}

	s.logger.Info("Review deleted", zap.String("reviewId", reviewID), zap.String("userEmail", identity.Email))
	return nil
}
