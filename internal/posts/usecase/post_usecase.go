package usecase

import (
	"context"
	"fmt"
	"time"

	"blogapi/domain"
	"blogapi/internal/service/logger"
	"blogapi/internal/service/middleware"
	"blogapi/internal/service/validation"

	"go.uber.org/zap"
)

type PostUsecase interface {
	CreatePost(ctx context.Context, authorID uint, title string, text string) (*domain.Post, error)
	GetPost(ctx context.Context, id uint) (*domain.Post, error)
	UpdatePost(ctx context.Context, id uint, authorID uint, title string, text string, date string) error
	DeletePost(ctx context.Context, id uint) error
	ListPosts(ctx context.Context) ([]domain.Post, error)
}

type postUsecase struct {
	postRepository domain.PostRepository
}

func NewPostUsecase(postRepository domain.PostRepository) PostUsecase {
	return &postUsecase{
		postRepository: postRepository,
	}
}

func validatePostFields(ctx context.Context, title string, text string) error {
	requestID := middleware.GetRequestID(ctx)
	if !validation.ValidatePostTitle(title) {
		logger.AccessLogger.Warn("invalid post title", zap.String("request_id", requestID), zap.Int("length", len(title)))
		return fmt.Errorf("title must be between 1 and %d characters: %w", domain.MaxPostTitleLen, domain.ErrValidation)
	}
	if !validation.ValidatePostText(text) {
		logger.AccessLogger.Warn("invalid post text", zap.String("request_id", requestID), zap.Int("length", len(text)))
		return fmt.Errorf("text must be between 1 and %d characters: %w", domain.MaxPostTextLen, domain.ErrValidation)
	}
	return nil
}

func (uc *postUsecase) CreatePost(ctx context.Context, authorID uint, title string, text string) (*domain.Post, error) {
	if err := validatePostFields(ctx, title, text); err != nil {
		return nil, err
	}

	// The owner and the date come from the server, never from the payload.
	post := &domain.Post{
		UserID: authorID,
		Date:   time.Now(),
		Title:  title,
		Text:   text,
	}
	return uc.postRepository.CreatePost(ctx, post)
}

func (uc *postUsecase) GetPost(ctx context.Context, id uint) (*domain.Post, error) {
	return uc.postRepository.GetPostByID(ctx, id)
}

func (uc *postUsecase) UpdatePost(ctx context.Context, id uint, authorID uint, title string, text string, date string) error {
	requestID := middleware.GetRequestID(ctx)
	if err := validatePostFields(ctx, title, text); err != nil {
		return err
	}

	// Unlike create, the stored date is overwritten with the client-supplied
	// one. The owner is still re-derived from the caller.
	parsedDate, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		logger.AccessLogger.Warn("invalid post date", zap.String("request_id", requestID), zap.String("date", date))
		return fmt.Errorf("date must be formatted as %s: %w", domain.DateLayout, domain.ErrValidation)
	}

	post := &domain.Post{
		ID:     id,
		UserID: authorID,
		Date:   parsedDate,
		Title:  title,
		Text:   text,
	}
	return uc.postRepository.UpdatePost(ctx, post)
}

func (uc *postUsecase) DeletePost(ctx context.Context, id uint) error {
	return uc.postRepository.DeletePost(ctx, id)
}

func (uc *postUsecase) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return uc.postRepository.ListPosts(ctx)
}
