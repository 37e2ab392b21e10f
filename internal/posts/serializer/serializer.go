// Package serializer holds the static response projections for posts. Each
// entity gets an explicit struct and function instead of marshalling the
// storage models directly, so credential fields can never leak into a
// response by accident.
package serializer

import "blogapi/domain"

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type PostUserResponse struct {
	ID   uint         `json:"id"`
	User UserResponse `json:"user"`
}

type PostResponse struct {
	ID    uint             `json:"id"`
	User  PostUserResponse `json:"user"`
	Title string           `json:"title"`
	Date  string           `json:"date"`
	Text  string           `json:"text"`
}

func SerializeUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

func SerializePostUser(profile *domain.PostUser) PostUserResponse {
	return PostUserResponse{
		ID:   profile.ID,
		User: SerializeUser(&profile.User),
	}
}

func SerializePost(post *domain.Post) PostResponse {
	return PostResponse{
		ID:    post.ID,
		User:  SerializePostUser(&post.User),
		Title: post.Title,
		Date:  post.Date.Format(domain.DateLayout),
		Text:  post.Text,
	}
}

func SerializePosts(posts []domain.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i := range posts {
		responses[i] = SerializePost(&posts[i])
	}
	return responses
}
