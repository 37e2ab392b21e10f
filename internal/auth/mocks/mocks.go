package mocks

import (
	"context"

	"blogapi/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthRepository mocks the auth repository.
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) GetTokenByUserID(ctx context.Context, userID uint) (*domain.AuthToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.AuthToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) GetPostUserByTokenKey(ctx context.Context, key string) (*domain.PostUser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.PostUser), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAuthUsecase mocks the auth usecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, username string, password string) (*domain.LoginResponse, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.LoginResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) AuthenticateToken(ctx context.Context, key string) (*domain.PostUser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.PostUser), args.Error(1)
	}
	return nil, args.Error(1)
}
