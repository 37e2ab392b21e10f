package usecase

import (
	"context"
	"errors"
	"fmt"

	"blogapi/domain"
	"blogapi/internal/service/logger"
	"blogapi/internal/service/middleware"
	"blogapi/internal/service/validation"

	"go.uber.org/zap"
)

type AuthUsecase interface {
	LoginUser(ctx context.Context, username string, password string) (*domain.LoginResponse, error)
	AuthenticateToken(ctx context.Context, key string) (*domain.PostUser, error)
}

type authUsecase struct {
	authRepository domain.AuthRepository
}

func NewAuthUsecase(authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
	}
}

func (uc *authUsecase) LoginUser(ctx context.Context, username string, password string) (*domain.LoginResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	if !validation.ValidateUsername(username) {
		logger.AccessLogger.Warn("not correct username", zap.String("request_id", requestID))
		return nil, fmt.Errorf("not correct username: %w", domain.ErrValidation)
	}
	if !validation.ValidatePassword(password) {
		logger.AccessLogger.Warn("not correct password", zap.String("request_id", requestID))
		return nil, fmt.Errorf("not correct password: %w", domain.ErrValidation)
	}

	user, err := uc.authRepository.GetUserByUsername(ctx, username)
	if err != nil {
		// Unknown usernames and bad passwords must be indistinguishable to
		// the caller.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}

	if !middleware.CheckPassword(user.Password, password) {
		logger.AccessLogger.Warn("invalid credentials", zap.String("request_id", requestID))
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	token, err := uc.authRepository.GetTokenByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Valid:   true,
		Token:   token.Key,
		IsStaff: user.IsStaff,
	}, nil
}

func (uc *authUsecase) AuthenticateToken(ctx context.Context, key string) (*domain.PostUser, error) {
	requestID := middleware.GetRequestID(ctx)
	if key == "" {
		logger.AccessLogger.Warn("empty bearer token", zap.String("request_id", requestID))
		return nil, fmt.Errorf("empty bearer token: %w", domain.ErrUnauthorized)
	}

	profile, err := uc.authRepository.GetPostUserByTokenKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
