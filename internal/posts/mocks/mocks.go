package mocks

import (
	"context"

	"blogapi/domain"

	"github.com/stretchr/testify/mock"
)

// MockPostUsecase mocks the post usecase.
type MockPostUsecase struct {
	mock.Mock
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, authorID uint, title string, text string) (*domain.Post, error) {
	args := m.Called(ctx, authorID, title, text)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostUsecase) GetPost(ctx context.Context, id uint) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostUsecase) UpdatePost(ctx context.Context, id uint, authorID uint, title string, text string, date string) error {
	args := m.Called(ctx, id, authorID, title, text, date)
	return args.Error(0)
}

func (m *MockPostUsecase) DeletePost(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostUsecase) ListPosts(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPostRepository mocks the post repository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) GetPostByID(ctx context.Context, id uint) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}
