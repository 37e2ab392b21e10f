package router

import (
	auth "blogapi/internal/auth/controller"
	posts "blogapi/internal/posts/controller"

	"github.com/gorilla/mux"
)

func SetUpRoutes(authHandler *auth.AuthHandler, postHandler *posts.PostHandler) *mux.Router {
	router := mux.NewRouter()
	api := "/api"

	// Login exchanges credentials for the user's stored token; every post
	// route expects that token as an Authorization bearer header.
	router.HandleFunc(api+"/login", authHandler.LoginUser).Methods("POST")
	router.HandleFunc(api+"/posts", postHandler.CreatePost).Methods("POST")
	router.HandleFunc(api+"/posts", postHandler.ListPosts).Methods("GET")
	router.HandleFunc(api+"/posts/{id:[0-9]+}", postHandler.GetPost).Methods("GET")
	router.HandleFunc(api+"/posts/{id:[0-9]+}", postHandler.UpdatePost).Methods("PUT")
	router.HandleFunc(api+"/posts/{id:[0-9]+}", postHandler.DeletePost).Methods("DELETE")
	return router
}
