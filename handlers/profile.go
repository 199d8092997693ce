// handlers/profile.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"doga-platform/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

type UpdateSecurityRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type UpdateSettingsRequest struct {
	Settings models.UserSettings `json:"settings"`
}

func GetMyProfile(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var user models.User
		err := db.QueryRow(`
            SELECT id, username, email, COALESCE(fullname, ''), COALESCE(avatar, ''),
                   COALESCE(bio, ''), COALESCE(district, ''), COALESCE(website, ''),
                   role, created_at, COALESCE(last_login, created_at)
            FROM users
            WHERE id = $1 AND is_active = true
        `, userID).Scan(
			&user.ID, &user.Username, &user.Email, &user.FullName, &user.Avatar,
			&user.Bio, &user.District, &user.Website,
			&user.Role, &user.CreatedAt, &user.LastLogin,
		)

		if err != nil {
			http.Error(w, "Kullanıcı bulunamadı", http.StatusNotFound)
			return
		}

		db.QueryRow("SELECT COUNT(*) FROM comments WHERE user_id = $1", userID).Scan(&user.CommentCount)
		db.QueryRow(`
            SELECT COUNT(*) FROM friendships
            WHERE (user_id = $1 OR friend_id = $1) AND status = 'kabul'
        `, userID).Scan(&user.FriendCount)

		json.NewEncoder(w).Encode(user)
	}
}

func GetPublicProfile(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		username := vars["username"]

		var user models.User
		var profilePublic bool
		err := db.QueryRow(`
            SELECT u.id, u.username, COALESCE(u.fullname, ''), COALESCE(u.avatar, ''),
                   COALESCE(u.bio, ''), COALESCE(u.district, ''), COALESCE(u.website, ''),
                   u.created_at, COALESCE(s.profile_public, true)
            FROM users u
            LEFT JOIN user_settings s ON s.user_id = u.id
            WHERE u.username = $1 AND u.is_active = true
        `, username).Scan(
			&user.ID, &user.Username, &user.FullName, &user.Avatar,
			&user.Bio, &user.District, &user.Website,
			&user.CreatedAt, &profilePublic,
		)

		if err != nil {
			http.Error(w, "Kullanıcı bulunamadı", http.StatusNotFound)
			return
		}

		if !profilePublic {
			http.Error(w, "Bu profil gizli", http.StatusForbidden)
			return
		}

		db.QueryRow("SELECT COUNT(*) FROM comments WHERE user_id = $1", user.ID).Scan(&user.CommentCount)

		json.NewEncoder(w).Encode(user)
	}
}

func UpdateProfile(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var updates map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		// Güncellenebilir alanlar
		allowedFields := []string{"bio", "district", "website", "fullname"}

		query := "UPDATE users SET "
		var args []interface{}
		argCount := 1

		for _, field := range allowedFields {
			if val, ok := updates[field]; ok {
				if argCount > 1 {
					query += ", "
				}
				query += field + " = $" + strconv.Itoa(argCount)
				args = append(args, val)
				argCount++
			}
		}

		if argCount == 1 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Güncellenecek alan yok",
			})
			return
		}

		query += " WHERE id = $" + strconv.Itoa(argCount)
		args = append(args, userID)

		_, err := db.Exec(query, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Profil güncellendi",
		})
	}
}

func UploadAvatar(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		// 5 MB sınır
		r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

		file, header, err := r.FormFile("avatar")
		if err != nil {
			http.Error(w, "Dosya alınamadı", http.StatusBadRequest)
			return
		}
		defer file.Close()

		ext := filepath.Ext(header.Filename)
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" && ext != ".webp" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Sadece png, jpg ve webp yüklenebilir",
			})
			return
		}

		filename := uuid.NewString() + ext
		path := filepath.Join("static", "avatars", filename)

		os.MkdirAll(filepath.Dir(path), 0755)
		dst, err := os.Create(path)
		if err != nil {
			http.Error(w, "Dosya kaydedilemedi", http.StatusInternalServerError)
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			http.Error(w, "Dosya kaydedilemedi", http.StatusInternalServerError)
			return
		}

		avatarURL := "/static/avatars/" + filename
		db.Exec("UPDATE users SET avatar = $1 WHERE id = $2", avatarURL, userID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"avatar":  avatarURL,
		})
	}
}

func GetSettings(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var s models.UserSettings
		err := db.QueryRow(`
            SELECT email_notifications, browser_notifications, profile_public,
                   show_activity, show_online_status, theme, language
            FROM user_settings WHERE user_id = $1
        `, userID).Scan(
			&s.EmailNotifications, &s.BrowserNotifications, &s.ProfilePublic,
			&s.ShowActivity, &s.ShowOnlineStatus, &s.Theme, &s.Language,
		)

		if err != nil {
			// Kayıt yoksa varsayılanlar
			s = models.UserSettings{
				EmailNotifications:   true,
				BrowserNotifications: true,
				ProfilePublic:        true,
				ShowActivity:         true,
				ShowOnlineStatus:     true,
				Theme:                "acik",
				Language:             "tr",
			}
		}

		json.NewEncoder(w).Encode(s)
	}
}

func UpdateSettings(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var req UpdateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		s := req.Settings
		_, err := db.Exec(`
            INSERT INTO user_settings (user_id, email_notifications, browser_notifications,
                profile_public, show_activity, show_online_status, theme, language, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
            ON CONFLICT (user_id) DO UPDATE SET
                email_notifications = EXCLUDED.email_notifications,
                browser_notifications = EXCLUDED.browser_notifications,
                profile_public = EXCLUDED.profile_public,
                show_activity = EXCLUDED.show_activity,
                show_online_status = EXCLUDED.show_online_status,
                theme = EXCLUDED.theme,
                language = EXCLUDED.language,
                updated_at = NOW()
        `, userID, s.EmailNotifications, s.BrowserNotifications,
			s.ProfilePublic, s.ShowActivity, s.ShowOnlineStatus, s.Theme, s.Language)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Ayarlar kaydedildi",
		})
	}
}

func UpdateSecurity(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		var req UpdateSecurityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if len(req.NewPassword) < 8 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Yeni şifre en az 8 karakter olmalı",
			})
			return
		}

		// Mevcut şifreyi doğrula
		var currentHash string
		err := db.QueryRow("SELECT password_hash FROM users WHERE id = $1", userID).Scan(&currentHash)
		if err != nil {
			http.Error(w, "Kullanıcı bulunamadı", http.StatusNotFound)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(req.CurrentPassword)) != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Mevcut şifre hatalı",
			})
			return
		}

		newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "Şifre hashlenemedi", http.StatusInternalServerError)
			return
		}

		db.Exec("UPDATE users SET password_hash = $1 WHERE id = $2", string(newHash), userID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Şifre güncellendi",
		})
	}
}

func GetUserSessions(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")

		rows, err := db.Query(`
            SELECT id, COALESCE(device, ''), COALESCE(ip_address, ''), last_activity
            FROM user_sessions
            WHERE user_id = $1 AND is_active = true AND expires_at > NOW()
            ORDER BY last_activity DESC
        `, userID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		type sessionInfo struct {
			ID         int    `json:"id"`
			Device     string `json:"device"`
			IP         string `json:"ip"`
			LastActive string `json:"last_active"`
		}

		var list []sessionInfo
		for rows.Next() {
			var s sessionInfo
			rows.Scan(&s.ID, &s.Device, &s.IP, &s.LastActive)
			list = append(list, s)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"sessions": list,
		})
	}
}

func TerminateSession(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		db.Exec(`
            UPDATE user_sessions SET is_active = false
            WHERE id = $1 AND user_id = $2
        `, vars["id"], userID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Oturum sonlandırıldı",
		})
	}
}
