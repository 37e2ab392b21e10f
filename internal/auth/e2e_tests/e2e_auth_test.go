package e2e_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/domain"
	auth "blogapi/internal/auth/controller"
	authRepository "blogapi/internal/auth/repository"
	authUsecase "blogapi/internal/auth/usecase"
	"blogapi/internal/service/dsn"
	"blogapi/internal/service/logger"
	"blogapi/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	connString := dsn.FromEnvE2E()
	if connString == "" {
		t.Skip("DB_HOST_TEST not set, skipping e2e test")
	}
	db, err := gorm.Open(postgres.Open(connString), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.User{}, &domain.AuthToken{}, &domain.PostUser{})
	require.NoError(t, err)

	return db
}

func cleanupTestDB(t *testing.T, db *gorm.DB) {
	err := db.Migrator().DropTable(&domain.PostUser{}, &domain.AuthToken{}, &domain.User{})
	assert.NoError(t, err)
}

func createTestUser(t *testing.T, db *gorm.DB, username, password, tokenKey string) {
	hashed, err := middleware.HashPassword(password)
	require.NoError(t, err)

	user := domain.User{
		Username: username,
		Password: hashed,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&domain.AuthToken{Key: tokenKey, UserID: user.ID}).Error)
}

func TestLoginUserE2E(t *testing.T) {
	_ = godotenv.Load("../../../.env")
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	err := logger.InitLoggers()
	require.NoError(t, err)
	defer func() {
		err := logger.SyncLoggers()
		assert.NoError(t, err)
	}()

	username := "test_user"
	password := "test_password"
	tokenKey := "e2e-token-key"
	createTestUser(t, db, username, password, tokenKey)

	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := auth.NewAuthHandler(authUC)

	router := mux.NewRouter()
	api := "/api"

	router.HandleFunc(api+"/login", authHandler.LoginUser).Methods("POST")

	server := httptest.NewServer(router)
	defer server.Close()

	t.Run("Success - Returns Stored Token", func(t *testing.T) {
		body, _ := json.Marshal(domain.LoginRequest{Username: username, Password: password})
		resp, err := http.Post(server.URL+api+"/login", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var loginResp domain.LoginResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
		assert.True(t, loginResp.Valid)
		assert.Equal(t, tokenKey, loginResp.Token)
		assert.False(t, loginResp.IsStaff)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		body, _ := json.Marshal(domain.LoginRequest{Username: username, Password: "not_the_password"})
		resp, err := http.Post(server.URL+api+"/login", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
