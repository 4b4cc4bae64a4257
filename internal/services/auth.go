// Package services contains the application services of the bbank client:
// authentication/session handling and the ledger (transfer engine, account
// lifecycle and the feeds the presentation layer observes).
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/danunant/bbank/internal/common"
	"github.com/danunant/bbank/internal/cryptox"
	"github.com/danunant/bbank/internal/logging"
	"github.com/danunant/bbank/internal/models"
	"github.com/danunant/bbank/internal/repositories/users"
	"github.com/danunant/bbank/internal/sessions"
	"github.com/google/uuid"
)

// PINLength is the exact number of digits a PIN must have.
const PINLength = 4

// AuthService defines authentication and session operations.
//
// Contract:
//   - Login: verify a username/PIN pair and establish the session.
//   - RegisterUser: create a new user with salted, hashed PIN material.
//   - Logout: clear the session; idempotent.
//   - CurrentUser: the authenticated user, or nil when logged out or the
//     session has expired.
//
// Expected business-rule failures are typed sentinel errors from the common
// package; only storage failures surface as wrapped unexpected errors.
type AuthService interface {
	Login(ctx context.Context, username string, pin string) (bool, error)
	RegisterUser(ctx context.Context, username, displayName, pin string) (*models.User, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	users    users.Repository
	notifier *Notifier
	log      logging.Logger
	validity time.Duration

	// The signing key lives only in memory: restarting the client logs
	// everyone out.
	secret []byte

	mu    sync.Mutex
	token string
}

// NewAuthService constructs an AuthService bound to the given user store.
// sessionValidity bounds how long a login lasts before CurrentUser reads
// as logged out again.
func NewAuthService(repo users.Repository, notifier *Notifier, log logging.Logger, sessionValidity time.Duration) AuthService {
	return &authService{
		users:    repo,
		notifier: notifier,
		log:      log,
		validity: sessionValidity,
		secret:   common.GenerateRandByteArray(32),
	}
}

// validPIN reports whether pin is exactly PINLength decimal digits.
func validPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Login verifies the PIN against the stored salt+hash and, on success,
// mints a fresh session token. Malformed PINs short-circuit to failure
// without touching the store. Any failure clears a previously established
// session. The returned error is non-nil only for storage failures.
func (a *authService) Login(ctx context.Context, username string, pin string) (bool, error) {
	if strings.TrimSpace(username) == "" || !validPIN(pin) {
		a.clearSession()
		return false, nil
	}

	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		a.clearSession()
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("login lookup failed: %w", err)
	}

	if !cryptox.VerifyPIN([]byte(pin), user.PINHash, user.Salt) {
		a.clearSession()
		a.log.Warn(ctx, "login failed", "username", username)
		return false, nil
	}

	token, err := sessions.GenerateToken(user.ID, a.secret, a.validity)
	if err != nil {
		a.clearSession()
		return false, fmt.Errorf("session token generation failed: %w", err)
	}

	a.mu.Lock()
	a.token = token
	a.mu.Unlock()

	a.log.Info(ctx, "login succeeded", "username", username)
	a.notifier.Broadcast()
	return true, nil
}

// RegisterUser validates the inputs, generates fresh salt+hash material and
// persists the new user. The username-taken pre-check reads before writing;
// two racing registrations could both pass it, but the unique index still
// rejects the loser and surfaces the same ErrorUsernameTaken.
func (a *authService) RegisterUser(ctx context.Context, username, displayName, pin string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(displayName) == "" {
		return nil, common.ErrorBlankField
	}
	if !validPIN(pin) {
		return nil, common.ErrorInvalidPIN
	}

	exists, err := a.users.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("username check failed: %w", err)
	}
	if exists {
		return nil, common.ErrorUsernameTaken
	}

	salt := cryptox.GenerateSalt()
	user := &models.User{
		ID:          uuid.NewString(),
		Username:    username,
		DisplayName: displayName,
		PINHash:     cryptox.HashPIN([]byte(pin), salt),
		Salt:        salt,
	}

	if err := a.users.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	a.log.Info(ctx, "user registered", "username", username)
	return user, nil
}

// Logout clears the session unconditionally.
func (a *authService) Logout(ctx context.Context) {
	a.clearSession()
	a.log.Info(ctx, "logged out")
}

// CurrentUser resolves the session token to a user. An expired or invalid
// token, or a token pointing at a deleted user, reads as logged out.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	a.mu.Lock()
	token := a.token
	a.mu.Unlock()

	if token == "" {
		return nil, nil
	}

	userID, err := sessions.GetUserIDFromToken(token, a.secret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrInvalidToken) {
			a.clearSession()
			return nil, nil
		}
		return nil, err
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.clearSession()
			return nil, nil
		}
		return nil, fmt.Errorf("current user lookup failed: %w", err)
	}
	return user, nil
}

// clearSession drops the token and signals subscribers when there was a
// session to drop, so a repeated logout stays quiet.
func (a *authService) clearSession() {
	a.mu.Lock()
	had := a.token != ""
	a.token = ""
	a.mu.Unlock()

	if had {
		a.notifier.Broadcast()
	}
}
