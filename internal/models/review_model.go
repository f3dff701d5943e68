package models

import (
	"fmt"
	"time"
)

// ReviewKeyPrefix is the key-value namespace for review records.
const ReviewKeyPrefix = "review:"

// Review is a user-submitted review. UserName and UserEmail are a denormalized
// snapshot of the author at creation time and are never refreshed afterwards.
// Reviews are immutable once created; only the author may delete one.
type Review struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"userId" firestore:"userId"`
	UserName  string    `json:"userName" firestore:"userName"`
	UserEmail string    `json:"userEmail" firestore:"userEmail"`
	Rating    int       `json:"rating" firestore:"rating"` // 1..5 inclusive
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// ReviewKey builds the store key (which is also the review ID) from the
// creation time and the author's UID. Embedding both keeps creation order and
// authorship inspectable from the key alone.
func ReviewKey(createdAt time.Time, userID string) string {
	return fmt.Sprintf("%s%d_%s", ReviewKeyPrefix, createdAt.UnixMilli(), userID)
}
