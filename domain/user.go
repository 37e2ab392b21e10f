package domain

import "context"

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username string `gorm:"type:varchar(150);unique;not null;column:username" json:"username"`
	Password string `gorm:"type:varchar(255);not null;column:password" json:"-"`
	IsStaff  bool   `gorm:"default:false;column:is_staff" json:"-"`
}

// AuthToken is the persistent opaque bearer credential for a user. Tokens are
// provisioned out of band (see cmd/migrator); login only ever looks one up.
type AuthToken struct {
	Key    string `gorm:"type:varchar(64);primaryKey;column:key" json:"-"`
	UserID uint   `gorm:"column:user_id;unique;not null" json:"-"`
	User   User   `gorm:"foreignkey:UserID;references:ID" json:"-"`
}

// PostUser is the author profile wrapping a User. Posts reference it, never
// the User directly.
type PostUser struct {
	ID     uint `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID uint `gorm:"column:user_id;unique;not null" json:"-"`
	User   User `gorm:"foreignkey:UserID;references:ID" json:"user"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Valid   bool   `json:"valid"`
	Token   string `json:"token"`
	IsStaff bool   `json:"is_staff"`
}

type AuthRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetTokenByUserID(ctx context.Context, userID uint) (*AuthToken, error)
	GetPostUserByTokenKey(ctx context.Context, key string) (*PostUser, error)
}
