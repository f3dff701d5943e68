package models

// UserIdentity is the resolved identity of an authenticated user as reported
// by Firebase Auth. The backend treats it as read-only: it is derived from the
// verified ID token (or from the provider's user record after signup/signin)
// and never stored by this service.
type UserIdentity struct {
	ID    string `json:"id"` // Firebase Auth UID, stable and opaque
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthSession is the result of a successful password sign-in: the identity
// provider's issued ID token plus the identity it belongs to.
type AuthSession struct {
	AccessToken string
	User        UserIdentity
}
