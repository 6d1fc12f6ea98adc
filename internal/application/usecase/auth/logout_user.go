package auth

import (
	"context"

	"github.com/team-dashboard/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for roster member logout.
type LogoutUserInput struct {
	AccessToken  string
	RefreshToken string
}

// LogoutUserOutput represents the output of roster member logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles logout: the access token is denylisted until
// its natural expiry and the refresh token is invalidated.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the logout. Errors are ignored; the tokens may
// already be expired or revoked.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	_ = uc.tokenService.RevokeAccessToken(ctx, input.AccessToken)
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
