// handlers/social.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"doga-platform/models"

	"github.com/gorilla/mux"
)

type FriendRequest struct {
	Username string `json:"username"`
}

type FriendResponse struct {
	Accept bool `json:"accept"`
}

type CommentRequest struct {
	ContentKind string `json:"content_kind"`
	ContentID   int    `json:"content_id"`
	Body        string `json:"body"`
}

type RatingRequest struct {
	ContentKind string `json:"content_kind"`
	ContentID   int    `json:"content_id"`
	Stars       int    `json:"stars"`
}

type GroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Theme       string `json:"theme"`
}

func validContentKind(kind string) bool {
	switch kind {
	case "walk", "event", "garden", "association", "market":
		return true
	}
	return false
}

// ============ ARKADAŞLIKLAR ============

func SendFriendRequest(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var req FriendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		var friendID int
		err := db.QueryRow(`
            SELECT id FROM users WHERE username = $1 AND is_active = true
        `, req.Username).Scan(&friendID)

		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Kullanıcı bulunamadı",
			})
			return
		}

		if strconv.Itoa(friendID) == userID {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Kendinize istek gönderemezsiniz",
			})
			return
		}

		_, err = db.Exec(`
            INSERT INTO friendships (user_id, friend_id, status)
            VALUES ($1, $2, 'bekliyor')
            ON CONFLICT (user_id, friend_id) DO NOTHING
        `, userID, friendID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Arkadaşlık isteği gönderildi",
		})
	}
}

func RespondFriendRequest(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		var req FriendResponse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		status := "red"
		if req.Accept {
			status = "kabul"
		}

		res, err := db.Exec(`
            UPDATE friendships SET status = $1
            WHERE id = $2 AND friend_id = $3 AND status = 'bekliyor'
        `, status, vars["id"], userID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if count, _ := res.RowsAffected(); count == 0 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Bekleyen istek bulunamadı",
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "İstek yanıtlandı",
			"status":  status,
		})
	}
}

func GetFriends(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		// Kabul edilmiş arkadaşlıklar, iki yönlü
		rows, err := db.Query(`
            SELECT f.id, u.id, u.username, COALESCE(u.avatar, ''), f.status, f.created_at
            FROM friendships f
            JOIN users u ON u.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
            WHERE (f.user_id = $1 OR f.friend_id = $1) AND f.status = 'kabul'
            ORDER BY u.username
        `, userID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var friends []models.Friendship
		for rows.Next() {
			var f models.Friendship
			rows.Scan(&f.ID, &f.FriendID, &f.Username, &f.Avatar, &f.Status, &f.CreatedAt)
			friends = append(friends, f)
		}

		// Bekleyen gelen istekler
		rows, err = db.Query(`
            SELECT f.id, u.id, u.username, COALESCE(u.avatar, ''), f.status, f.created_at
            FROM friendships f
            JOIN users u ON u.id = f.user_id
            WHERE f.friend_id = $1 AND f.status = 'bekliyor'
            ORDER BY f.created_at DESC
        `, userID)

		var pending []models.Friendship
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var f models.Friendship
				rows.Scan(&f.ID, &f.FriendID, &f.Username, &f.Avatar, &f.Status, &f.CreatedAt)
				pending = append(pending, f)
			}
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"friends": friends,
			"pending": pending,
		})
	}
}

func RemoveFriend(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		db.Exec(`
            DELETE FROM friendships
            WHERE id = $1 AND (user_id = $2 OR friend_id = $2)
        `, vars["id"], userID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Arkadaşlıktan çıkarıldı",
		})
	}
}

// ============ GRUPLAR ============

func CreateGroup(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var req GroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if len(req.Name) < 3 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Grup adı en az 3 karakter olmalı",
			})
			return
		}

		var groupID int
		err := db.QueryRow(`
            INSERT INTO groups (name, description, theme, owner_id)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `, req.Name, req.Description, req.Theme, userID).Scan(&groupID)

		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Bu isimde bir grup zaten var",
			})
			return
		}

		// Kurucu otomatik üye olur
		db.Exec("INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)", groupID, userID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":  true,
			"message":  "Grup oluşturuldu",
			"group_id": groupID,
		})
	}
}

func GetGroups(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		rows, err := db.Query(`
            SELECT g.id, g.name, g.description, g.theme, g.owner_id, g.created_at,
                   COUNT(gm.id) as member_count,
                   BOOL_OR(gm.user_id::text = $1) as is_member
            FROM groups g
            LEFT JOIN group_members gm ON gm.group_id = g.id
            GROUP BY g.id
            ORDER BY member_count DESC
        `, userID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var groups []models.Group
		for rows.Next() {
			var g models.Group
			rows.Scan(&g.ID, &g.Name, &g.Description, &g.Theme, &g.OwnerID,
				&g.CreatedAt, &g.MemberCount, &g.IsMember)
			groups = append(groups, g)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"groups": groups,
			"total":  len(groups),
		})
	}
}

func JoinGroup(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		_, err := db.Exec(`
            INSERT INTO group_members (group_id, user_id)
            VALUES ($1, $2)
            ON CONFLICT (group_id, user_id) DO NOTHING
        `, vars["id"], userID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Gruba katıldınız",
		})
	}
}

func LeaveGroup(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		db.Exec(`
            DELETE FROM group_members WHERE group_id = $1 AND user_id = $2
        `, vars["id"], userID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Gruptan ayrıldınız",
		})
	}
}

func GetGroupMessages(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		// Üyelik kontrolü
		var isMember bool
		db.QueryRow(`
            SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)
        `, vars["id"], userID).Scan(&isMember)

		if !isMember {
			http.Error(w, "Grup üyesi değilsiniz", http.StatusForbidden)
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit < 1 {
			limit = 50
		}

		rows, err := db.Query(`
            SELECT m.id, m.group_id, m.user_id, u.username, COALESCE(u.avatar, ''), m.body, m.created_at
            FROM messages m
            JOIN users u ON u.id = m.user_id
            WHERE m.group_id = $1
            ORDER BY m.created_at DESC
            LIMIT $2
        `, vars["id"], limit)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var messages []models.Message
		for rows.Next() {
			var m models.Message
			rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Username, &m.Avatar, &m.Body, &m.CreatedAt)
			messages = append(messages, m)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"messages": messages,
		})
	}
}

// ============ YORUMLAR VE PUANLAR ============

func GetComments(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		kind := vars["kind"]

		if !validContentKind(kind) {
			http.Error(w, "Geçersiz içerik türü", http.StatusBadRequest)
			return
		}

		rows, err := db.Query(`
            SELECT c.id, c.user_id, u.username, COALESCE(u.avatar, ''), c.content_kind, c.content_id, c.body, c.created_at
            FROM comments c
            JOIN users u ON u.id = c.user_id
            WHERE c.content_kind = $1 AND c.content_id = $2
            ORDER BY c.created_at DESC
        `, kind, vars["id"])

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var comments []models.Comment
		for rows.Next() {
			var c models.Comment
			rows.Scan(&c.ID, &c.UserID, &c.Username, &c.Avatar, &c.ContentKind, &c.ContentID, &c.Body, &c.CreatedAt)
			comments = append(comments, c)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"comments": comments,
			"total":    len(comments),
		})
	}
}

func AddComment(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if !validContentKind(req.ContentKind) || req.Body == "" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Eksik veya geçersiz alanlar",
			})
			return
		}

		var commentID int
		err := db.QueryRow(`
            INSERT INTO comments (user_id, content_kind, content_id, body)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `, userID, req.ContentKind, req.ContentID, req.Body).Scan(&commentID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		db.Exec(`
            INSERT INTO activity_logs (user_id, action_type, content_kind, content_id, ip_address)
            VALUES ($1, 'yorum', $2, $3, $4)
        `, userID, req.ContentKind, req.ContentID, r.RemoteAddr)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    true,
			"message":    "Yorum eklendi",
			"comment_id": commentID,
		})
	}
}

func DeleteComment(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		// Sadece kendi yorumunu silebilir
		res, err := db.Exec(`
            DELETE FROM comments WHERE id = $1 AND user_id = $2
        `, vars["id"], userID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if count, _ := res.RowsAffected(); count == 0 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Yorum bulunamadı",
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Yorum silindi",
		})
	}
}

func RateContent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var req RatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if !validContentKind(req.ContentKind) || req.Stars < 1 || req.Stars > 5 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Puan 1-5 arasında olmalı",
			})
			return
		}

		// Aynı içeriğe ikinci puan öncekini günceller
		_, err := db.Exec(`
            INSERT INTO ratings (user_id, content_kind, content_id, stars)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (user_id, content_kind, content_id)
            DO UPDATE SET stars = EXCLUDED.stars, created_at = NOW()
        `, userID, req.ContentKind, req.ContentID, req.Stars)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Puanınız kaydedildi",
		})
	}
}
