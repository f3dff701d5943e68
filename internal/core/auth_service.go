package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"purenote-backend-go/internal/models"
)

// identityToolkitSignInURL is the Identity Toolkit password sign-in endpoint.
// The Admin SDK has no password grant, so sign-in goes through the REST API
// with the project's Web API key.
const identityToolkitSignInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// authService implements AuthService on top of the Firebase Auth Admin client
// plus the Identity Toolkit REST endpoint for password sign-in.
type authService struct {
	authClient     *auth.Client
	webAPIKey      string
	signInEndpoint string
	httpClient     *http.Client
	logger         *zap.Logger
}

// NewAuthService creates an AuthService. webAPIKey is the Firebase project's
// Web API key, required for password sign-in.
func NewAuthService(authClient *auth.Client, webAPIKey string, logger *zap.Logger) AuthService {
	return &authService{
		authClient:     authClient,
		webAPIKey:      webAPIKey,
		signInEndpoint: identityToolkitSignInURL,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		logger:         logger,
	}
}

// signInResponse is the subset of the Identity Toolkit response we need.
type signInResponse struct {
	IDToken     string `json:"idToken"`
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// signInErrorResponse is the Identity Toolkit error envelope.
type signInErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*models.AuthSession, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.signInEndpoint+"?key="+s.webAPIKey, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider sign-in call failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sign-in response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		var errRes signInErrorResponse
		message := "invalid credentials"
		if jsonErr := json.Unmarshal(resBody, &errRes); jsonErr == nil && errRes.Error.Message != "" {
			message = errRes.Error.Message
		}
		s.logger.Warn("Sign-in rejected by identity provider",
			zap.String("email", email),
			zap.Int("status", res.StatusCode),
			zap.String("message", message),
		)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, message)
	}

	var out signInResponse
	if err := json.Unmarshal(resBody, &out); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	s.logger.Info("User signed in", zap.String("email", email))
	return &models.AuthSession{
		AccessToken: out.IDToken,
		User: models.UserIdentity{
			ID:    out.LocalID,
			Email: out.Email,
			Name:  out.DisplayName,
		},
	}, nil
}

func (s *authService) SignUp(ctx context.Context, email, password, name string) (*models.UserIdentity, error) {
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password, and name are required", ErrInvalidInput)
	}

	// Email is confirmed up front since no mail server is configured.
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name).
		EmailVerified(true)

	record, err := s.authClient.CreateUser(ctx, params)
	if err != nil {
		s.logger.Warn("Signup rejected by identity provider", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("User created", zap.String("email", email))
	return &models.UserIdentity{
		ID:    record.UID,
		Email: record.Email,
		Name:  record.DisplayName,
	}, nil
}

func (s *authService) Verify(ctx context.Context, idToken string) (*models.UserIdentity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, fmt.Errorf("%w: authorization token required", ErrUnauthenticated)
	}

	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		// Token errors are logged server-side; the caller only sees that the
		// credential was rejected.
		s.logger.Debug("Token verification failed", zap.Error(err))
		return nil, fmt.Errorf("%w: invalid or expired token", ErrUnauthenticated)
	}

	identity := &models.UserIdentity{ID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}
