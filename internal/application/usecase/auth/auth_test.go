package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) EnsureExists(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.Username]; !ok {
		r.users[user.Username] = user
	}
	return nil
}

// fakePasswordService treats the hash as "hash:" plus the plain password.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hash:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// fakeTokenService issues sequence-numbered tokens and tracks which
// refresh tokens have been invalidated or access tokens revoked.
type fakeTokenService struct {
	seq         int
	refresh     map[string]*adapter.TokenClaims
	invalidated map[string]bool
	revoked     map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		refresh:     make(map[string]*adapter.TokenClaims),
		invalidated: make(map[string]bool),
		revoked:     make(map[string]bool),
	}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, username string) (*adapter.TokenPair, error) {
	s.seq++
	pair := &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.seq),
		RefreshToken: fmt.Sprintf("refresh-%d", s.seq),
	}
	s.refresh[pair.RefreshToken] = &adapter.TokenClaims{UserID: userID, Username: username}
	return pair, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if s.revoked[token] {
		return nil, domainerror.ErrTokenRevoked
	}
	return &adapter.TokenClaims{}, nil
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.refresh[token]
	if !ok || s.invalidated[token] {
		return nil, domainerror.ErrInvalidToken
	}
	return claims, nil
}

func (s *fakeTokenService) RevokeAccessToken(_ context.Context, token string) error {
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

// failingTokenService errors on every revocation call.
type failingTokenService struct {
	fakeTokenService
}

func (s *failingTokenService) RevokeAccessToken(context.Context, string) error {
	return errors.New("redis down")
}

func (s *failingTokenService) InvalidateRefreshToken(context.Context, string) error {
	return errors.New("db down")
}

func seedUser(username, password string) *entity.User {
	return entity.NewUser(username, strings.ToUpper(username[:1])+username[1:], "hash:"+password)
}

func TestLoginUser(t *testing.T) {
	t.Run("issues a token pair for valid credentials", func(t *testing.T) {
		user := seedUser("firdaus", "secret")
		uc := NewLoginUserUseCase(newFakeUserRepo(user), fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(context.Background(), LoginUserInput{Username: "  Firdaus ", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Errorf("expected a token pair, got %+v", output)
		}
		if output.User.Username != "firdaus" {
			t.Errorf("expected the roster member back, got %q", output.User.Username)
		}
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		user := seedUser("firdaus", "secret")
		uc := NewLoginUserUseCase(newFakeUserRepo(user), fakePasswordService{}, newFakeTokenService())

		_, unknownErr := uc.Execute(context.Background(), LoginUserInput{Username: "ghost", Password: "secret"})
		_, wrongErr := uc.Execute(context.Background(), LoginUserInput{Username: "firdaus", Password: "nope"})

		for _, err := range []error{unknownErr, wrongErr} {
			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError, got %v", err)
			}
			if authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, authErr.Code)
			}
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Errorf("error messages must match: %q vs %q", unknownErr, wrongErr)
		}
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, err := tokens.GenerateTokenPair(context.Background(), uuid.New(), "firdaus")
		if err != nil {
			t.Fatalf("seed pair: %v", err)
		}

		uc := NewRefreshTokenUseCase(tokens)
		output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.RefreshToken == pair.RefreshToken {
			t.Error("refresh token should rotate")
		}
		if !tokens.invalidated[pair.RefreshToken] {
			t.Error("presented refresh token should be invalidated")
		}
	})

	t.Run("rejects a rotated token on reuse", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, err := tokens.GenerateTokenPair(context.Background(), uuid.New(), "firdaus")
		if err != nil {
			t.Fatalf("seed pair: %v", err)
		}

		uc := NewRefreshTokenUseCase(tokens)
		if _, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken}); err != nil {
			t.Fatalf("first refresh failed: %v", err)
		}

		_, err = uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Fatalf("expected AUTH invalid-token error, got %v", err)
		}
	})

	t.Run("rejects a token it never issued", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "forged"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Fatalf("expected AUTH invalid-token error, got %v", err)
		}
	})
}

func TestLogoutUser(t *testing.T) {
	t.Run("revokes both tokens", func(t *testing.T) {
		tokens := newFakeTokenService()
		uc := NewLogoutUserUseCase(tokens)

		output, err := uc.Execute(context.Background(), LogoutUserInput{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message == "" {
			t.Error("expected a confirmation message")
		}

		if !tokens.revoked["access-1"] {
			t.Error("access token should be denylisted")
		}
		if !tokens.invalidated["refresh-1"] {
			t.Error("refresh token should be invalidated")
		}
	})

	t.Run("succeeds even when revocation fails", func(t *testing.T) {
		uc := NewLogoutUserUseCase(&failingTokenService{})

		if _, err := uc.Execute(context.Background(), LogoutUserInput{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
		}); err != nil {
			t.Fatalf("logout must not fail on revocation errors, got %v", err)
		}
	})
}
