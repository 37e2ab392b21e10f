package repository

import (
	"context"
	"errors"
	"fmt"

	"blogapi/domain"
	"blogapi/internal/service/logger"
	"blogapi/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func (r *authRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetUserByUsername called", zap.String("request_id", requestID), zap.String("username", username))

	var user domain.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("User not found", zap.String("request_id", requestID), zap.String("username", username))
			return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		logger.DBLogger.Error("Failed to get user", zap.String("request_id", requestID), zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", domain.ErrInternal)
	}
	return &user, nil
}

func (r *authRepository) GetTokenByUserID(ctx context.Context, userID uint) (*domain.AuthToken, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetTokenByUserID called", zap.String("request_id", requestID), zap.Uint("user_id", userID))

	var token domain.AuthToken
	if err := r.db.First(&token, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The user authenticated but has no provisioned token. That is a
			// provisioning gap, not a caller mistake.
			logger.DBLogger.Error("Token not provisioned", zap.String("request_id", requestID), zap.Uint("user_id", userID))
			return nil, fmt.Errorf("token not provisioned for user: %w", domain.ErrInternal)
		}
		logger.DBLogger.Error("Failed to get token", zap.String("request_id", requestID), zap.Uint("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch token: %w", domain.ErrInternal)
	}
	return &token, nil
}

func (r *authRepository) GetPostUserByTokenKey(ctx context.Context, key string) (*domain.PostUser, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetPostUserByTokenKey called", zap.String("request_id", requestID))

	var token domain.AuthToken
	if err := r.db.First(&token, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Unknown token", zap.String("request_id", requestID))
			return nil, fmt.Errorf("unknown token: %w", domain.ErrUnauthorized)
		}
		logger.DBLogger.Error("Failed to resolve token", zap.String("request_id", requestID), zap.Error(err))
		return nil, fmt.Errorf("failed to resolve token: %w", domain.ErrInternal)
	}

	var profile domain.PostUser
	if err := r.db.Preload("User").First(&profile, "user_id = ?", token.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A valid token whose user has no author profile cannot act on
			// posts at all.
			logger.DBLogger.Warn("No author profile for token", zap.String("request_id", requestID), zap.Uint("user_id", token.UserID))
			return nil, fmt.Errorf("no author profile for user: %w", domain.ErrUnauthorized)
		}
		logger.DBLogger.Error("Failed to fetch author profile", zap.String("request_id", requestID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch author profile: %w", domain.ErrInternal)
	}
	return &profile, nil
}
