package domain

import (
	"context"
	"time"
)

const (
	MaxPostTitleLen = 50
	MaxPostTextLen  = 2500
)

// DateLayout is the wire format for post dates. Posts carry a bare calendar
// date, no time component.
const DateLayout = "2006-01-02"

type Post struct {
	ID     uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID uint      `gorm:"column:user_id;not null" json:"-"`
	User   PostUser  `gorm:"foreignkey:UserID;references:ID" json:"user"`
	Date   time.Time `gorm:"type:date;not null;column:date" json:"date"`
	Title  string    `gorm:"type:varchar(50);not null;column:title" json:"title"`
	Text   string    `gorm:"type:varchar(2500);not null;column:text" json:"text"`
}

type CreatePostRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type UpdatePostRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Date  string `json:"date"`
}

type PostRepository interface {
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	GetPostByID(ctx context.Context, id uint) (*Post, error)
	UpdatePost(ctx context.Context, post *Post) error
	DeletePost(ctx context.Context, id uint) error
	ListPosts(ctx context.Context) ([]Post, error)
}
