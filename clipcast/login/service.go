package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/clipcast/server/clipcast/tokens"
	"codeberg.org/clipcast/server/clipcast/users"
	"codeberg.org/clipcast/server/internal/auth"
	"codeberg.org/clipcast/server/internal/images"
	"codeberg.org/clipcast/server/internal/logger"
)

// sentinel errors surfaced to the handler boundary
var (
	ErrUnverifiedEmail = errors.New("email not verified with provider")
	ErrAuthentication  = errors.New("invalid credentials")
)

// ProvisioningError wraps a user validation failure during first-login
// provisioning. Validation runs before any persistence, so this error
// guarantees no partial record was written.
type ProvisioningError struct {
	Err error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("user provisioning failed: %v", e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// fetches a remote profile image; satisfied by images.Fetcher
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*images.Image, error)
}

// the access/refresh pair minted after a successful callback
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service orchestrates the callback flow: user reconciliation,
// authentication and token issuance
type Service struct {
	users  users.Repository
	tokens tokens.Repository
	images ImageFetcher
}

// creates a new login service. fetcher may be nil, in which case profile
// images are never attached.
func NewService(userRepo users.Repository, tokenRepo tokens.Repository, fetcher ImageFetcher) *Service {
	return &Service{
		users:  userRepo,
		tokens: tokenRepo,
		images: fetcher,
	}
}

// Reconcile resolves validated claims to a local user record. Existing
// users are re-marked verified; unknown subjects are provisioned with a
// generated handle. The operation is idempotent and race-tolerant: if a
// concurrent callback creates the record first, the duplicate insert is
// absorbed and the existing record is re-fetched.
func (s *Service) Reconcile(ctx context.Context, claims *Claims) (*users.User, error) {
	if !claims.EmailVerified {
		return nil, ErrUnverifiedEmail
	}

	user, err := s.users.FindByGoogleSub(ctx, claims.Sub)
	if err == nil {
		return s.users.SetVerified(ctx, user.ID)
	}

	if !errors.Is(err, users.ErrNotFound) {
		return nil, err
	}

	req := &users.CreateUserRequest{
		GoogleSub: claims.Sub,
		Username:  usernameFromEmail(claims.Email),
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
		Handle:    GenerateHandle(claims.GivenName, claims.FamilyName),
		Email:     claims.Email,
	}

	if err := req.Validate(); err != nil {
		return nil, &ProvisioningError{Err: err}
	}

	user, err = s.users.Create(ctx, req)

	if errors.Is(err, users.ErrDuplicate) {
		// lost the first-login race; the record exists now
		existing, findErr := s.users.FindByGoogleSub(ctx, claims.Sub)
		if findErr != nil {
			return nil, findErr
		}

		return s.users.SetVerified(ctx, existing.ID)
	}

	if err != nil {
		return nil, err
	}

	// best-effort enrichment after the required record is persisted;
	// a failed fetch never fails the login
	s.attachProfileImage(ctx, user, claims)

	return user, nil
}

// Authenticate establishes the principal for the resolved subject.
// Deactivated or unknown users cannot authenticate.
func (s *Service) Authenticate(ctx context.Context, googleSub string) (*users.User, error) {
	user, err := s.users.FindByGoogleSub(ctx, googleSub)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrAuthentication
		}

		return nil, err
	}

	if !user.Active {
		return nil, ErrAuthentication
	}

	return user, nil
}

// IssueTokens mints the access/refresh token pair for an authenticated
// user and records the refresh token in the revocation store. Nothing is
// returned unless both tokens were produced and the refresh token was
// recorded.
func (s *Service) IssueTokens(ctx context.Context, user *users.User) (*TokenPair, error) {
	access, err := auth.GenerateAccessToken(user.ID, user.GoogleSub, user.Email, user.Handle)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, tokenID, expiresAt, err := auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = s.tokens.Create(ctx, &tokens.RefreshToken{
		ID:        tokenID,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// RevokeRefreshToken parses the presented refresh token and revokes it.
// Revoking an already-revoked or unknown token succeeds; parse errors
// (expired, tampered) pass through for the handler to map.
func (s *Service) RevokeRefreshToken(ctx context.Context, tokenString string) error {
	claims, err := auth.ParseRefreshToken(tokenString)
	if err != nil {
		return err
	}

	revoked, err := s.tokens.Revoke(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	if !revoked {
		logger.Info("refresh token already revoked or unknown", "token_id", claims.ID)
	}

	return nil
}

func (s *Service) attachProfileImage(ctx context.Context, user *users.User, claims *Claims) {
	if s.images == nil || claims.Picture == "" {
		return
	}

	img, err := s.images.Fetch(ctx, claims.Picture)
	if err != nil {
		logger.ErrorErr(err, "failed to fetch profile image",
			"user_id", user.ID,
		)
		return
	}

	fileName := fmt.Sprintf("%s_%s_profile_picture.jpg", user.FirstName, user.LastName)

	if err := s.users.AttachProfileImage(ctx, user.ID, fileName, img.ContentType, img.Data); err != nil {
		logger.ErrorErr(err, "failed to attach profile image",
			"user_id", user.ID,
		)
	}
}

func usernameFromEmail(email string) string {
	return strings.Split(email, "@")[0]
}
