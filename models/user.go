// models/user.go
package models

import (
	"time"
)

type User struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"` // Şifre hash'i
	FullName      string    `json:"fullname"`
	Avatar        string    `json:"avatar"`
	Bio           string    `json:"bio"`
	District      string    `json:"district"` // Mahalle / semt
	Website       string    `json:"website"`
	Role          string    `json:"role"` // uye, rehber, dernek, admin
	IsActive      bool      `json:"is_active"`
	EmailVerified bool      `json:"email_verified"`
	CommentCount  int       `json:"comment_count"` // Template'de kullanılıyor
	FriendCount   int       `json:"friend_count"`  // Template'de kullanılıyor
	CreatedAt     time.Time `json:"created_at"`
	LastLogin     time.Time `json:"last_login"`
}
