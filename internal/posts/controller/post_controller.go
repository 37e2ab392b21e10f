package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"blogapi/domain"
	authUsecase "blogapi/internal/auth/usecase"
	"blogapi/internal/posts/serializer"
	"blogapi/internal/posts/usecase"
	"blogapi/internal/service/logger"
	"blogapi/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type PostHandler struct {
	usecase usecase.PostUsecase
	auth    authUsecase.AuthUsecase
}

func NewPostHandler(usecase usecase.PostUsecase, auth authUsecase.AuthUsecase) *PostHandler {
	return &PostHandler{
		usecase: usecase,
		auth:    auth,
	}
}

// authorize resolves the bearer token on the request to the caller's author
// profile. All post operations require it.
func (h *PostHandler) authorize(ctx context.Context, r *http.Request) (*domain.PostUser, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing Authorization header: %w", domain.ErrUnauthorized)
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("malformed Authorization header: %w", domain.ErrUnauthorized)
	}
	return h.auth.AuthenticateToken(ctx, strings.TrimPrefix(authHeader, "Bearer "))
}

func postID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid post id: %w", domain.ErrValidation)
	}
	return uint(id), nil
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received CreatePost request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	caller, err := h.authorize(ctx, r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, fmt.Errorf("malformed request body: %w", domain.ErrValidation), requestID)
		return
	}
	data.Title = sanitizer.Sanitize(data.Title)
	data.Text = sanitizer.Sanitize(data.Text)

	post, err := h.usecase.CreatePost(ctx, caller.ID, data.Title, data.Text)
	if err != nil {
		// Validation failures on create answer with a reason field.
		if errors.Is(err, domain.ErrValidation) {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"reason": err.Error()}, requestID)
			return
		}
		h.handleError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, serializer.SerializePost(post), requestID)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed CreatePost request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetPost request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	id, err := postID(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	post, err := h.usecase.GetPost(ctx, id)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, serializer.SerializePost(post), requestID)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetPost request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received UpdatePost request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	caller, err := h.authorize(ctx, r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	id, err := postID(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, fmt.Errorf("malformed request body: %w", domain.ErrValidation), requestID)
		return
	}
	data.Title = sanitizer.Sanitize(data.Title)
	data.Text = sanitizer.Sanitize(data.Text)
	data.Date = sanitizer.Sanitize(data.Date)

	if err := h.usecase.UpdatePost(ctx, id, caller.ID, data.Title, data.Text, data.Date); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed UpdatePost request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusNoContent),
	)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received DeletePost request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	id, err := postID(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	if err := h.usecase.DeletePost(ctx, id); err != nil {
		// Deleting an absent post answers with a message field.
		if errors.Is(err, domain.ErrNotFound) {
			h.writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()}, requestID)
			return
		}
		h.handleError(w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed DeletePost request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusNoContent),
	)
}

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received ListPosts request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if _, err := h.authorize(ctx, r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	posts, err := h.usecase.ListPosts(ctx)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, serializer.SerializePosts(posts), requestID)

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed ListPosts request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *PostHandler) writeJSON(w http.ResponseWriter, status int, body interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *PostHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch {
	case errors.Is(err, domain.ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnauthorized):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, domain.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		// Internal error text stays in the logs.
		errorResponse = map[string]string{"error": "internal server error"}
		w.WriteHeader(http.StatusInternalServerError)
	}

	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
