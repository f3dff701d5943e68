package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"purenote-backend-go/internal/models"
)

var testIdentity = models.UserIdentity{
	ID:    "uid-1",
	Email: "alice@example.com",
	Name:  "Alice",
}

func TestCreateReview_RejectsInvalidRating(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, zap.NewNop())

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.CreateReview(context.Background(), testIdentity, rating, "fine")
		assert.ErrorIs(t, err, ErrInvalidInput, "rating %d should be rejected", rating)
	}
	assert.Empty(t, repo.reviews, "nothing should be written for invalid ratings")
}

func TestCreateReview_RejectsEmptyComment(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, zap.NewNop())

	for _, comment := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateReview(context.Background(), testIdentity, 5, comment)
		assert.ErrorIs(t, err, ErrInvalidInput, "comment %q should be rejected", comment)
	}
	assert.Empty(t, repo.reviews)
}

func TestCreateReview_PersistsSnapshot(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, zap.NewNop())

	review, err := svc.CreateReview(context.Background(), testIdentity, 4, "  solid app  ")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(review.ID, models.ReviewKeyPrefix))
	assert.Equal(t, testIdentity.ID, review.UserID)
	assert.Equal(t, "Alice", review.UserName)
	assert.Equal(t, "alice@example.com", review.UserEmail)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "solid app", review.Comment, "comment should be trimmed")
	assert.False(t, review.CreatedAt.IsZero())

	stored, ok := repo.reviews[review.ID]
	require.True(t, ok, "review should be persisted under its own ID")
	assert.Equal(t, *review, stored)
}

func TestCreateReview_UserNameFallsBackToEmail(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, zap.NewNop())

	identity := models.UserIdentity{ID: "uid-2", Email: "bob@example.com"}
	review, err := svc.CreateReview(context.Background(), identity, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", review.UserName)
}

func TestDeleteReview_NotFound(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), zap.NewNop())

	err := svc.DeleteReview(context.Background(), testIdentity, "review:123_nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReview_ForbiddenForNonAuthor(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, zap.NewNop())

	review, err := svc.CreateReview(context.Background(), testIdentity, 5, "mine")
	require.NoError(t, err)

	other := models.UserIdentity{ID: "uid-other", Email: "mallory@example.com"}
	err = svc.DeleteReview(context.Background(), other, review.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, repo.reviews, review.ID, "record must remain after a forbidden delete")
}

func TestDeleteReview_AuthorSucceeds(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, zap.NewNop())

	review, err := svc.CreateReview(context.Background(), testIdentity, 5, "mine")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(context.Background(), testIdentity, review.ID))
	assert.NotContains(t, repo.reviews, review.ID)
}

func TestListReviews_SortedNewestFirst(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, zap.NewNop())

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{2 * time.Hour, 0, 5 * time.Hour, time.Minute} {
		createdAt := base.Add(offset)
		review := models.Review{
			ID:        models.ReviewKey(createdAt, testIdentity.ID),
			UserID:    testIdentity.ID,
			Rating:    (i % 5) + 1,
			Comment:   "c",
			CreatedAt: createdAt,
		}
		repo.reviews[review.ID] = review
	}

	reviews, err := svc.ListReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 4)
	for i := 1; i < len(reviews); i++ {
		assert.True(t, reviews[i-1].CreatedAt.After(reviews[i].CreatedAt),
			"reviews must be in descending createdAt order")
	}
}

func TestListReviews_StorageErrorSurfaces(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.listErr = errors.New("firestore unavailable")
	svc := NewReviewService(repo, zap.NewNop())

	_, err := svc.ListReviews(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
}
