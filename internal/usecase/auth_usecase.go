package usecase

import (
	"context"
	"errors"

	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"
	"go-profile-backend/pkg/token"
	"go-profile-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	tokens      *token.Service
	revocations token.RevocationStore
	validate    *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens *token.Service,
	revocations token.RevocationStore,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		tokens:      tokens,
		revocations: revocations,
		validate:    validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, *domain.TokenPair, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, nil, apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}

	user := &domain.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	user.PasswordHash = string(hash)

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, nil, apperror.Conflict("Username or email already taken")
		}
		return nil, nil, err
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.User, *domain.TokenPair, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a bad password so usernames cannot be probed.
			return nil, nil, apperror.Unauthorized("Invalid username or password")
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, apperror.Unauthorized("Invalid username or password")
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates the pair: the presented refresh token is revoked for its
// remaining lifetime and a fresh pair is issued.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	revoked, err := u.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperror.Unauthorized("Refresh token has been revoked")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User no longer exists")
		}
		return nil, err
	}

	if err := u.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return nil, err
	}

	return u.issuePair(user)
}

func (u *authUsecase) Verify(_ context.Context, tokenString string) error {
	if _, err := u.tokens.Validate(tokenString); err != nil {
		return apperror.Unauthorized("Token is invalid or expired")
	}
	return nil
}

func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return apperror.Unauthorized("Invalid refresh token")
	}
	return u.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (u *authUsecase) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) issuePair(user *domain.User) (*domain.TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	refresh, err := u.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
