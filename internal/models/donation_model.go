package models

import "time"

// DonationKeyPrefix is the key-value namespace for donation records.
const DonationKeyPrefix = "donation:"

// Donation statuses. A donation is created exactly once in pending state and
// transitions at most once to completed, never backward. Records are never
// deleted; they double as an audit trail.
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
)

// Donation tracks one checkout attempt, keyed by the processor's session ID.
// Amount is the donated value in euros; conversion to cents happens only at
// the payment-processor boundary.
type Donation struct {
	SessionID   string     `json:"sessionId" firestore:"sessionId"`
	Amount      float64    `json:"amount" firestore:"amount"`
	Message     string     `json:"message,omitempty" firestore:"message,omitempty"`
	Email       string     `json:"email,omitempty" firestore:"email,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt"`
	Status      string     `json:"status" firestore:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty" firestore:"completedAt,omitempty"`
}

// DonationKey builds the store key for a donation record.
func DonationKey(sessionID string) string {
	return DonationKeyPrefix + sessionID
}
