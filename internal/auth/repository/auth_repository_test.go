package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"blogapi/domain"
	"blogapi/internal/service/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (domain.AuthRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewAuthRepository(gormDB), mock, func() { db.Close() }
}

func TestGetUserByUsername(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	authRepo, mock, closeDB := setupMockDB(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password", "is_staff"}).
			AddRow(1, "alice", "hashedPassword", true)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)).
			WithArgs("alice", 1).
			WillReturnRows(rows)

		user, err := authRepo.GetUserByUsername(ctx, "alice")

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.IsStaff)
	})

	t.Run("Fail - Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)).
			WithArgs("ghost", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := authRepo.GetUserByUsername(ctx, "ghost")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Nil(t, user)
	})

	t.Run("Fail - DB Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)).
			WithArgs("alice", 1).
			WillReturnError(errors.New("database error"))

		user, err := authRepo.GetUserByUsername(ctx, "alice")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInternal))
		assert.Nil(t, user)
	})
}

func TestGetTokenByUserID(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	authRepo, mock, closeDB := setupMockDB(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"key", "user_id"}).
			AddRow("stored-token", 1)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_tokens" WHERE user_id = $1 ORDER BY "auth_tokens"."key" LIMIT $2`)).
			WithArgs(1, 1).
			WillReturnRows(rows)

		token, err := authRepo.GetTokenByUserID(ctx, 1)

		assert.NoError(t, err)
		assert.NotNil(t, token)
		assert.Equal(t, "stored-token", token.Key)
	})

	t.Run("Fail - Token Missing Is Internal", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_tokens" WHERE user_id = $1 ORDER BY "auth_tokens"."key" LIMIT $2`)).
			WithArgs(2, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		token, err := authRepo.GetTokenByUserID(ctx, 2)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInternal))
		assert.Nil(t, token)
	})
}

func TestGetPostUserByTokenKey(t *testing.T) {
	logger.DBLogger = zap.NewNop()
	authRepo, mock, closeDB := setupMockDB(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tokenRows := sqlmock.NewRows([]string{"key", "user_id"}).
			AddRow("stored-token", 1)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_tokens" WHERE key = $1 ORDER BY "auth_tokens"."key" LIMIT $2`)).
			WithArgs("stored-token", 1).
			WillReturnRows(tokenRows)

		profileRows := sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(7, 1)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "post_users" WHERE user_id = $1 ORDER BY "post_users"."id" LIMIT $2`)).
			WithArgs(1, 1).
			WillReturnRows(profileRows)

		userRows := sqlmock.NewRows([]string{"id", "username", "password", "is_staff"}).
			AddRow(1, "alice", "hashedPassword", false)
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(userRows)

		profile, err := authRepo.GetPostUserByTokenKey(ctx, "stored-token")

		assert.NoError(t, err)
		assert.NotNil(t, profile)
		assert.Equal(t, uint(7), profile.ID)
		assert.Equal(t, "alice", profile.User.Username)
	})

	t.Run("Fail - Unknown Token", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_tokens" WHERE key = $1 ORDER BY "auth_tokens"."key" LIMIT $2`)).
			WithArgs("bogus", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		profile, err := authRepo.GetPostUserByTokenKey(ctx, "bogus")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
		assert.Nil(t, profile)
	})

	t.Run("Fail - No Author Profile", func(t *testing.T) {
		tokenRows := sqlmock.NewRows([]string{"key", "user_id"}).
			AddRow("stored-token", 2)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "auth_tokens" WHERE key = $1 ORDER BY "auth_tokens"."key" LIMIT $2`)).
			WithArgs("stored-token", 1).
			WillReturnRows(tokenRows)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "post_users" WHERE user_id = $1 ORDER BY "post_users"."id" LIMIT $2`)).
			WithArgs(2, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		profile, err := authRepo.GetPostUserByTokenKey(ctx, "stored-token")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
		assert.Nil(t, profile)
	})
}
