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

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) domain.PostRepository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreatePost called", zap.String("request_id", requestID), zap.Uint("author_id", post.UserID))

	if err := r.db.Create(post).Error; err != nil {
		logger.DBLogger.Error("Failed to create post", zap.String("request_id", requestID), zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", domain.ErrInternal)
	}

	// Reload with the author chain resolved so the response can be serialized
	// without a second round trip in the usecase.
	var created domain.Post
	if err := r.db.Preload("User.User").First(&created, "id = ?", post.ID).Error; err != nil {
		logger.DBLogger.Error("Failed to reload created post", zap.String("request_id", requestID), zap.Uint("post_id", post.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to reload created post: %w", domain.ErrInternal)
	}

	logger.DBLogger.Info("Successfully created post", zap.String("request_id", requestID), zap.Uint("post_id", created.ID))
	return &created, nil
}

func (r *postRepository) GetPostByID(ctx context.Context, id uint) (*domain.Post, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetPostByID called", zap.String("request_id", requestID), zap.Uint("post_id", id))

	var post domain.Post
	if err := r.db.Preload("User.User").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Post not found", zap.String("request_id", requestID), zap.Uint("post_id", id))
			return nil, fmt.Errorf("post not found: %w", domain.ErrNotFound)
		}
		logger.DBLogger.Error("Failed to get post", zap.String("request_id", requestID), zap.Uint("post_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch post: %w", domain.ErrInternal)
	}
	return &post, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, post *domain.Post) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdatePost called", zap.String("request_id", requestID), zap.Uint("post_id", post.ID))

	var existing domain.Post
	if err := r.db.First(&existing, "id = ?", post.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Post not found", zap.String("request_id", requestID), zap.Uint("post_id", post.ID))
			return fmt.Errorf("post not found: %w", domain.ErrNotFound)
		}
		logger.DBLogger.Error("Failed to get post", zap.String("request_id", requestID), zap.Uint("post_id", post.ID), zap.Error(err))
		return fmt.Errorf("failed to fetch post: %w", domain.ErrInternal)
	}

	updates := map[string]interface{}{
		"user_id": post.UserID,
		"title":   post.Title,
		"text":    post.Text,
		"date":    post.Date,
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		logger.DBLogger.Error("Failed to update post", zap.String("request_id", requestID), zap.Uint("post_id", post.ID), zap.Error(err))
		return fmt.Errorf("failed to update post: %w", domain.ErrInternal)
	}

	logger.DBLogger.Info("Successfully updated post", zap.String("request_id", requestID), zap.Uint("post_id", post.ID))
	return nil
}

func (r *postRepository) DeletePost(ctx context.Context, id uint) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeletePost called", zap.String("request_id", requestID), zap.Uint("post_id", id))

	result := r.db.Delete(&domain.Post{}, "id = ?", id)
	if result.Error != nil {
		logger.DBLogger.Error("Failed to delete post", zap.String("request_id", requestID), zap.Uint("post_id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete post: %w", domain.ErrInternal)
	}
	if result.RowsAffected == 0 {
		logger.DBLogger.Warn("Post not found", zap.String("request_id", requestID), zap.Uint("post_id", id))
		return fmt.Errorf("post not found: %w", domain.ErrNotFound)
	}

	logger.DBLogger.Info("Successfully deleted post", zap.String("request_id", requestID), zap.Uint("post_id", id))
	return nil
}

func (r *postRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListPosts called", zap.String("request_id", requestID))

	var posts []domain.Post
	if err := r.db.Preload("User.User").Find(&posts).Error; err != nil {
		logger.DBLogger.Error("Failed to list posts", zap.String("request_id", requestID), zap.Error(err))
		return nil, fmt.Errorf("failed to list posts: %w", domain.ErrInternal)
	}
	return posts, nil
}
