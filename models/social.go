// models/social.go

package models

import "time"

type Comment struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Username    string    `json:"username"`
	Avatar      string    `json:"avatar"`
	ContentKind string    `json:"content_kind"` // walk, event, garden, association, market
	ContentID   int       `json:"content_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type Rating struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	ContentKind string    `json:"content_kind"`
	ContentID   int       `json:"content_id"`
	Stars       int       `json:"stars"` // 1-5
	CreatedAt   time.Time `json:"created_at"`
}

type Friendship struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	FriendID  int       `json:"friend_id"`
	Username  string    `json:"username"` // Karşı tarafın adı
	Avatar    string    `json:"avatar"`
	Status    string    `json:"status"` // bekliyor, kabul, red
	CreatedAt time.Time `json:"created_at"`
}

type Group struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	OwnerID     int       `json:"owner_id"`
	MemberCount int       `json:"member_count"`
	IsMember    bool      `json:"is_member"`
	CreatedAt   time.Time `json:"created_at"`
}

type Message struct {
	ID        int       `json:"id"`
	GroupID   int       `json:"group_id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Activity struct {
	Type        string    `json:"type"`
	ContentKind *string   `json:"content_kind"`
	ContentID   *int      `json:"content_id"`
	CreatedAt   time.Time `json:"created_at"`
}
