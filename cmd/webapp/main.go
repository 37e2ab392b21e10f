package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	authController "blogapi/internal/auth/controller"
	authRepository "blogapi/internal/auth/repository"
	authUsecase "blogapi/internal/auth/usecase"

	postController "blogapi/internal/posts/controller"
	postRepository "blogapi/internal/posts/repository"
	postUsecase "blogapi/internal/posts/usecase"

	"blogapi/internal/service/logger"
	"blogapi/internal/service/middleware"
	"blogapi/internal/service/router"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	db := middleware.DbConnect()

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		err := logger.SyncLoggers()
		if err != nil {
			log.Fatalf("Failed to sync loggers: %v", err)
		}
	}()

	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := authController.NewAuthHandler(authUC)

	postRepo := postRepository.NewPostRepository(db)
	postUC := postUsecase.NewPostUsecase(postRepo)
	postHandler := postController.NewPostHandler(postUC, authUC)

	mainRouter := router.SetUpRoutes(authHandler, postHandler)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))
	fmt.Printf("Starting HTTP server on address %s\n", os.Getenv("BACKEND_URL"))
	if err := http.ListenAndServe(os.Getenv("BACKEND_URL"), nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
