package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sis/internal/apperr"
	"sis/internal/model"
)

// Credential failures use one message whether the id or the password was
// wrong, so callers cannot enumerate valid ids.
const invalidCredentials = "Invalid credentials."

// dummyHash keeps the bcrypt compare on the unknown-id path so lookup
// misses cost the same as password mismatches.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Store is the credential lookup the service needs. *Repository implements
// it; tests substitute in-memory fakes.
type Store interface {
	FindStudent(ctx context.Context, studentID string) (*model.Student, error)
	FindAdmin(ctx context.Context, email string) (*model.Admin, error)
}

// Service verifies credentials and issues session tokens.
type Service struct {
	repo       Store
	issuer     string
	signingKey string
	accessTTL  time.Duration
}

// NewService creates a service backed by a credential store.
func NewService(repo Store, issuer, signingKey string, accessTTL time.Duration) *Service {
	return &Service{repo: repo, issuer: issuer, signingKey: signingKey, accessTTL: accessTTL}
}

// Session is a successful login: the user row (hash stripped by JSON tags)
// and a bearer token.
type Session struct {
	User      any       `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login authenticates a student or admin. The returned error is Validation
// for an unknown role and Auth with a uniform message for any credential
// failure.
func (s *Service) Login(ctx context.Context, userID, password, role string) (*Session, error) {
	var user any
	var hash string

	switch role {
	case "student":
		st, err := s.repo.FindStudent(ctx, userID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "An internal server error occurred.", err)
		}
		if st != nil {
			user, hash = st, st.PasswordHash
		}
	case "admin":
		a, err := s.repo.FindAdmin(ctx, userID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "An internal server error occurred.", err)
		}
		if a != nil {
			user, hash = a, a.PasswordHash
		}
	default:
		return nil, apperr.New(apperr.Validation, "Invalid role specified.")
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, apperr.New(apperr.Auth, invalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, apperr.New(apperr.Auth, invalidCredentials)
	}

	token, exp, err := Issue(userID, role, s.issuer, s.signingKey, s.accessTTL)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "An internal server error occurred.", err)
	}
	return &Session{User: user, Token: token, ExpiresAt: exp}, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
