package models

import "time"

// UserPlanKeyPrefix is the key-value namespace for per-user plan records.
const UserPlanKeyPrefix = "user_plan:"

// Plan names. Absence of a stored record is equivalent to PlanFree.
const (
	PlanFree = "free"
	PlanPro  = "pro"
	PlanTeam = "team"
)

// UserPlan is the single current-plan record for a user. It is overwritten on
// every plan change (last-write-wins, no history) and never deleted.
type UserPlan struct {
	Plan      string    `json:"plan" firestore:"plan"`
	UserID    string    `json:"userId" firestore:"userId"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// UserPlanKey builds the store key for a user's plan record.
func UserPlanKey(userID string) string {
	return UserPlanKeyPrefix + userID
}

// IsValidPlan reports whether name belongs to the fixed plan enumeration.
func IsValidPlan(name string) bool {
	switch name {
	case PlanFree, PlanPro, PlanTeam:
		return true
	}
	return false
}
