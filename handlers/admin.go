// handlers/admin.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"doga-platform/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func calculatePercentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Admin eylemlerini denetim için logla
func logAdminAction(db *sql.DB, r *http.Request, actionType, targetKind string, targetID int, details string) {
	adminID := r.Header.Get("X-Admin-ID")
	db.Exec(`
        INSERT INTO admin_logs (admin_id, action_type, target_kind, target_id, details, ip_address)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, adminID, actionType, targetKind, targetID, details, r.RemoteAddr)
}

// ==================== ADMIN GİRİŞ ====================

// AdminLoginPage - Admin giriş sayfası
func AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title": "Admin Giriş - Doğa Rotası",
	}

	tmpl := template.Must(template.ParseFiles("templates/admin/admin_login.html"))
	tmpl.Execute(w, data)
}

func AdminLogin(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		var admin models.Admin
		var passwordHash string
		err := db.QueryRow(`
            SELECT id, username, password_hash, role, COALESCE(avatar, '')
            FROM admins WHERE username = $1 AND is_active = true
        `, req.Username).Scan(&admin.ID, &admin.Username, &passwordHash, &admin.Role, &admin.Avatar)

		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Admin bulunamadı",
			})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Hatalı şifre",
			})
			return
		}

		// JWT token oluştur
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"admin_id": admin.ID,
			"role":     admin.Role,
			"exp":      time.Now().Add(8 * time.Hour).Unix(),
		})

		tokenString, err := token.SignedString([]byte("admin-secret-key"))
		if err != nil {
			http.Error(w, "Token oluşturulamadı", http.StatusInternalServerError)
			return
		}

		session, _ := store.Get(r, "admin_session")
		session.Values["authenticated"] = true
		session.Values["admin_id"] = admin.ID
		session.Values["username"] = admin.Username
		session.Values["role"] = admin.Role
		session.Options.MaxAge = 86400 // 1 gün
		session.Save(r, w)

		db.Exec("UPDATE admins SET last_login = NOW() WHERE id = $1", admin.ID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"token":   tokenString,
			"admin":   admin,
		})
	}
}

func AdminLogout(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "admin_session")
		session.Values["authenticated"] = false
		session.Options.MaxAge = -1
		session.Save(r, w)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Çıkış yapıldı",
		})
	}
}

// ==================== ADMIN DASHBOARD ====================

func AdminDashboard(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats models.AdminStats

		// Toplam kullanıcı
		db.QueryRow("SELECT COUNT(*) FROM users WHERE is_active = true").Scan(&stats.TotalUsers)

		// Bugün kaydolanlar
		db.QueryRow(`
            SELECT COUNT(*) FROM users
            WHERE DATE(created_at) = CURRENT_DATE
        `).Scan(&stats.NewUsersToday)

		// Aktif kullanıcılar (son 24 saat)
		db.QueryRow(`
            SELECT COUNT(*) FROM users
            WHERE last_login > NOW() - INTERVAL '24 hours'
        `).Scan(&stats.ActiveUsers)

		// İçerik sayıları
		db.QueryRow("SELECT COUNT(*) FROM walks WHERE is_active = true").Scan(&stats.TotalWalks)
		db.QueryRow("SELECT COUNT(*) FROM gardens WHERE is_active = true").Scan(&stats.TotalGardens)
		db.QueryRow("SELECT COUNT(*) FROM events WHERE is_active = true").Scan(&stats.TotalEvents)
		db.QueryRow(`
            SELECT COUNT(*) FROM events
            WHERE is_active = true AND starts_at >= NOW()
        `).Scan(&stats.UpcomingEvents)
		db.QueryRow("SELECT COUNT(*) FROM associations WHERE is_active = true").Scan(&stats.TotalAssociations)
		db.QueryRow("SELECT COUNT(*) FROM markets WHERE is_active = true").Scan(&stats.TotalMarkets)

		// Yorumlar
		db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&stats.TotalComments)
		db.QueryRow(`
            SELECT COUNT(*) FROM comments
            WHERE DATE(created_at) = CURRENT_DATE
        `).Scan(&stats.CommentsToday)

		// Ortalama puan
		db.QueryRow("SELECT COALESCE(AVG(stars), 0) FROM ratings").Scan(&stats.AverageRating)

		// Son kullanıcılar
		rows, err := db.Query(`
            SELECT id, username, email, role, created_at
            FROM users
            WHERE is_active = true
            ORDER BY created_at DESC
            LIMIT 10
        `)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var recentUsers []models.User
		for rows.Next() {
			var u models.User
			rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt)
			recentUsers = append(recentUsers, u)
		}

		// Son yorumlar
		rows, err = db.Query(`
            SELECT c.id, u.username, c.content_kind, c.content_id, c.body, c.created_at
            FROM comments c
            JOIN users u ON c.user_id = u.id
            ORDER BY c.created_at DESC
            LIMIT 10
        `)

		var recentComments []models.Comment
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var c models.Comment
				rows.Scan(&c.ID, &c.Username, &c.ContentKind, &c.ContentID, &c.Body, &c.CreatedAt)
				recentComments = append(recentComments, c)
			}
		}

		// Yaklaşan etkinlikler
		rows, err = db.Query(`
            SELECT id, title, category, location, starts_at
            FROM events
            WHERE is_active = true AND starts_at >= NOW()
            ORDER BY starts_at ASC
            LIMIT 5
        `)

		var upcomingEvents []models.Event
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var e models.Event
				rows.Scan(&e.ID, &e.Title, &e.Category, &e.Location, &e.StartsAt)
				upcomingEvents = append(upcomingEvents, e)
			}
		}

		session, _ := store.Get(r, "admin_session")
		var admin models.Admin
		admin.Username, _ = session.Values["username"].(string)
		admin.Role, _ = session.Values["role"].(string)

		data := models.AdminDashboardData{
			Title:            "Admin Panel - Doğa Rotası",
			Stats:            stats,
			RecentUsers:      recentUsers,
			RecentComments:   recentComments,
			UpcomingEvents:   upcomingEvents,
			CurrentDate:      time.Now().Format("02.01.2006"),
			ActivePercentage: calculatePercentage(stats.ActiveUsers, stats.TotalUsers),
			Admin:            admin,
			Active:           "dashboard",
		}

		tmpl, err := template.ParseFiles(
			"templates/admin/layout.html",
			"templates/admin/dashboard.html",
		)
		if err != nil {
			http.Error(w, "Template yüklenemedi: "+err.Error(), http.StatusInternalServerError)
			return
		}
		tmpl.Execute(w, data)
	}
}

// ==================== KULLANICI YÖNETİMİ ====================

func AdminUsers(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		search := r.URL.Query().Get("search")

		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}

		query := `
            SELECT id, username, email, COALESCE(fullname, ''), role,
                   is_active, created_at, COALESCE(last_login, created_at)
            FROM users
            WHERE 1=1
        `

		var args []interface{}
		argCount := 1

		if search != "" {
			query += ` AND (username ILIKE $` + strconv.Itoa(argCount) + ` OR email ILIKE $` + strconv.Itoa(argCount) + `)`
			args = append(args, "%"+search+"%")
			argCount++
		}

		query += ` ORDER BY created_at DESC`
		query += ` LIMIT $` + strconv.Itoa(argCount) + ` OFFSET $` + strconv.Itoa(argCount+1)
		args = append(args, limit, (page-1)*limit)

		rows, err := db.Query(query, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var users []models.User
		for rows.Next() {
			var u models.User
			rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Role,
				&u.IsActive, &u.CreatedAt, &u.LastLogin)
			users = append(users, u)
		}

		var totalCount int
		db.QueryRow("SELECT COUNT(*) FROM users").Scan(&totalCount)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"users":       users,
			"total":       totalCount,
			"page":        page,
			"total_pages": (totalCount + limit - 1) / limit,
		})
	}
}

func AdminUserDetail(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var u models.User
		err := db.QueryRow(`
            SELECT id, username, email, COALESCE(fullname, ''), COALESCE(bio, ''),
                   COALESCE(district, ''), role, is_active, created_at,
                   COALESCE(last_login, created_at)
            FROM users WHERE id = $1
        `, vars["id"]).Scan(
			&u.ID, &u.Username, &u.Email, &u.FullName, &u.Bio,
			&u.District, &u.Role, &u.IsActive, &u.CreatedAt, &u.LastLogin,
		)

		if err != nil {
			http.Error(w, "Kullanıcı bulunamadı", http.StatusNotFound)
			return
		}

		db.QueryRow("SELECT COUNT(*) FROM comments WHERE user_id = $1", u.ID).Scan(&u.CommentCount)

		json.NewEncoder(w).Encode(u)
	}
}

func AdminUpdateUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var updates map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		allowedFields := []string{"email", "fullname", "district", "role", "bio"}

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
		args = append(args, vars["id"])

		if _, err := db.Exec(query, args...); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "kullanici_guncelle", "user", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Kullanıcı güncellendi",
		})
	}
}

func AdminToggleUserStatus(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var isActive bool
		err := db.QueryRow(`
            UPDATE users SET is_active = NOT is_active
            WHERE id = $1
            RETURNING is_active
        `, vars["id"]).Scan(&isActive)

		if err != nil {
			http.Error(w, "Kullanıcı bulunamadı", http.StatusNotFound)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "kullanici_durum", "user", id, strconv.FormatBool(isActive))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"is_active": isActive,
		})
	}
}

func AdminResetPassword(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req struct {
			NewPassword string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if len(req.NewPassword) < 8 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Şifre en az 8 karakter olmalı",
			})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "Şifre hashlenemedi", http.StatusInternalServerError)
			return
		}

		db.Exec("UPDATE users SET password_hash = $1 WHERE id = $2", string(hash), vars["id"])

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "sifre_sifirla", "user", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Şifre sıfırlandı",
		})
	}
}

func AdminDeleteUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		if _, err := db.Exec("DELETE FROM users WHERE id = $1", vars["id"]); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "kullanici_sil", "user", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Kullanıcı silindi",
		})
	}
}

// ==================== ROTA YÖNETİMİ ====================

type WalkForm struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Difficulty  string      `json:"difficulty"`
	DistanceKm  float64     `json:"distance_km"`
	DurationMin int         `json:"duration_min"`
	StartPoint  string      `json:"start_point"`
	CenterLat   float64     `json:"center_lat"`
	CenterLng   float64     `json:"center_lng"`
	Zoom        int         `json:"zoom"`
	Season      string      `json:"season"`
	ImageURL    string      `json:"image_url"`
	Polyline    [][]float64 `json:"polyline"`
}

func AdminWalks(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`
            SELECT id, name, difficulty, distance_km, duration_min, season, is_active, created_at
            FROM walks
            ORDER BY created_at DESC
        `)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var walks []models.Walk
		for rows.Next() {
			var wk models.Walk
			rows.Scan(&wk.ID, &wk.Name, &wk.Difficulty, &wk.DistanceKm,
				&wk.DurationMin, &wk.Season, &wk.IsActive, &wk.CreatedAt)
			walks = append(walks, wk)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"walks": walks,
			"total": len(walks),
		})
	}
}

func AdminCreateWalk(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WalkForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if req.Name == "" || req.DistanceKm <= 0 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Rota adı ve mesafe zorunlu",
			})
			return
		}

		polyline, _ := json.Marshal(req.Polyline)

		var walkID int
		err := db.QueryRow(`
            INSERT INTO walks (name, description, difficulty, distance_km, duration_min,
                start_point, center_lat, center_lng, zoom, season, image_url, polyline)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
            RETURNING id
        `, req.Name, req.Description, req.Difficulty, req.DistanceKm, req.DurationMin,
			req.StartPoint, req.CenterLat, req.CenterLng, req.Zoom, req.Season,
			req.ImageURL, polyline).Scan(&walkID)

		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Rota oluşturulamadı: " + err.Error(),
			})
			return
		}

		logAdminAction(db, r, "rota_olustur", "walk", walkID, req.Name)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"walk_id": walkID,
		})
	}
}

func AdminUpdateWalk(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req WalkForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		polyline, _ := json.Marshal(req.Polyline)

		_, err := db.Exec(`
            UPDATE walks SET name = $1, description = $2, difficulty = $3,
                distance_km = $4, duration_min = $5, start_point = $6,
                center_lat = $7, center_lng = $8, zoom = $9, season = $10,
                image_url = $11, polyline = $12, updated_at = NOW()
            WHERE id = $13
        `, req.Name, req.Description, req.Difficulty, req.DistanceKm, req.DurationMin,
			req.StartPoint, req.CenterLat, req.CenterLng, req.Zoom, req.Season,
			req.ImageURL, polyline, vars["id"])

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "rota_guncelle", "walk", id, req.Name)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Rota güncellendi",
		})
	}
}

func AdminToggleWalk(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var isActive bool
		err := db.QueryRow(`
            UPDATE walks SET is_active = NOT is_active
            WHERE id = $1
            RETURNING is_active
        `, vars["id"]).Scan(&isActive)

		if err != nil {
			http.Error(w, "Rota bulunamadı", http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"is_active": isActive,
		})
	}
}

func AdminDeleteWalk(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		if _, err := db.Exec("DELETE FROM walks WHERE id = $1", vars["id"]); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "rota_sil", "walk", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Rota silindi",
		})
	}
}

// Rota noktaları: önce hepsi silinir, sonra sırayla eklenir
func AdminSetWalkPoints(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var points []models.WalkPoint
		if err := json.NewDecoder(r.Body).Decode(&points); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		tx, err := db.Begin()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		if _, err := tx.Exec("DELETE FROM walk_points WHERE walk_id = $1", vars["id"]); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for i, p := range points {
			_, err := tx.Exec(`
                INSERT INTO walk_points (walk_id, point_order, label, description, lat, lng, kind)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
            `, vars["id"], i+1, p.Label, p.Description, p.Lat, p.Lng, p.Kind)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"total":   len(points),
		})
	}
}

// ==================== BOSTAN / ETKİNLİK / DERNEK / PAZAR ====================

type GardenForm struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	AreaM2       int     `json:"area_m2"`
	PlotCount    int     `json:"plot_count"`
	PlotsFree    int     `json:"plots_free"`
	ImageURL     string  `json:"image_url"`
	ContactEmail string  `json:"contact_email"`
}

func AdminCreateGarden(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GardenForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		var gardenID int
		err := db.QueryRow(`
            INSERT INTO gardens (name, description, address, lat, lng, area_m2,
                plot_count, plots_free, image_url, contact_email)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            RETURNING id
        `, req.Name, req.Description, req.Address, req.Lat, req.Lng, req.AreaM2,
			req.PlotCount, req.PlotsFree, req.ImageURL, req.ContactEmail).Scan(&gardenID)

		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Bostan oluşturulamadı: " + err.Error(),
			})
			return
		}

		logAdminAction(db, r, "bostan_olustur", "garden", gardenID, req.Name)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"garden_id": gardenID,
		})
	}
}

func AdminUpdateGarden(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req GardenForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		_, err := db.Exec(`
            UPDATE gardens SET name = $1, description = $2, address = $3,
                lat = $4, lng = $5, area_m2 = $6, plot_count = $7,
                plots_free = $8, image_url = $9, contact_email = $10
            WHERE id = $11
        `, req.Name, req.Description, req.Address, req.Lat, req.Lng, req.AreaM2,
			req.PlotCount, req.PlotsFree, req.ImageURL, req.ContactEmail, vars["id"])

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "bostan_guncelle", "garden", id, req.Name)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Bostan güncellendi",
		})
	}
}

func AdminDeleteGarden(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		db.Exec("DELETE FROM gardens WHERE id = $1", vars["id"])

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "bostan_sil", "garden", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Bostan silindi",
		})
	}
}

type EventForm struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	Capacity    int     `json:"capacity"`
	ImageURL    string  `json:"image_url"`
}

func AdminCreateEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EventForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Geçersiz başlangıç zamanı",
			})
			return
		}

		var endsAt *time.Time
		if req.EndsAt != "" {
			if t, err := time.Parse(time.RFC3339, req.EndsAt); err == nil {
				endsAt = &t
			}
		}

		var eventID int
		err = db.QueryRow(`
            INSERT INTO events (title, description, category, location, lat, lng,
                starts_at, ends_at, capacity, image_url)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            RETURNING id
        `, req.Title, req.Description, req.Category, req.Location, req.Lat, req.Lng,
			startsAt, endsAt, req.Capacity, req.ImageURL).Scan(&eventID)

		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Etkinlik oluşturulamadı: " + err.Error(),
			})
			return
		}

		logAdminAction(db, r, "etkinlik_olustur", "event", eventID, req.Title)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":  true,
			"event_id": eventID,
		})
	}
}

func AdminUpdateEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req EventForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Geçersiz başlangıç zamanı",
			})
			return
		}

		_, err = db.Exec(`
            UPDATE events SET title = $1, description = $2, category = $3,
                location = $4, lat = $5, lng = $6, starts_at = $7,
                capacity = $8, image_url = $9
            WHERE id = $10
        `, req.Title, req.Description, req.Category, req.Location, req.Lat, req.Lng,
			startsAt, req.Capacity, req.ImageURL, vars["id"])

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "etkinlik_guncelle", "event", id, req.Title)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Etkinlik güncellendi",
		})
	}
}

func AdminDeleteEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		db.Exec("DELETE FROM events WHERE id = $1", vars["id"])

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "etkinlik_sil", "event", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Etkinlik silindi",
		})
	}
}

type AssociationForm struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Theme        string `json:"theme"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email"`
	Website      string `json:"website"`
	MemberCount  int    `json:"member_count"`
	ImageURL     string `json:"image_url"`
}

func AdminCreateAssociation(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssociationForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		var id int
		err := db.QueryRow(`
            INSERT INTO associations (name, description, theme, address,
                contact_email, website, member_count, image_url)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            RETURNING id
        `, req.Name, req.Description, req.Theme, req.Address,
			req.ContactEmail, req.Website, req.MemberCount, req.ImageURL).Scan(&id)

		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Dernek oluşturulamadı: " + err.Error(),
			})
			return
		}

		logAdminAction(db, r, "dernek_olustur", "association", id, req.Name)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":        true,
			"association_id": id,
		})
	}
}

func AdminUpdateAssociation(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req AssociationForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		_, err := db.Exec(`
            UPDATE associations SET name = $1, description = $2, theme = $3,
                address = $4, contact_email = $5, website = $6,
                member_count = $7, image_url = $8
            WHERE id = $9
        `, req.Name, req.Description, req.Theme, req.Address,
			req.ContactEmail, req.Website, req.MemberCount, req.ImageURL, vars["id"])

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "dernek_guncelle", "association", id, req.Name)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Dernek güncellendi",
		})
	}
}

func AdminDeleteAssociation(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		db.Exec("DELETE FROM associations WHERE id = $1", vars["id"])

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "dernek_sil", "association", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Dernek silindi",
		})
	}
}

type MarketForm struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DayOfWeek   string  `json:"day_of_week"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
	StallCount  int     `json:"stall_count"`
	IsOrganic   bool    `json:"is_organic"`
}

func AdminCreateMarket(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MarketForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		var id int
		err := db.QueryRow(`
            INSERT INTO markets (name, description, address, lat, lng,
                day_of_week, open_time, close_time, stall_count, is_organic)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            RETURNING id
        `, req.Name, req.Description, req.Address, req.Lat, req.Lng,
			req.DayOfWeek, req.OpenTime, req.CloseTime, req.StallCount, req.IsOrganic).Scan(&id)

		if err != nil {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Pazar oluşturulamadı: " + err.Error(),
			})
			return
		}

		logAdminAction(db, r, "pazar_olustur", "market", id, req.Name)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"market_id": id,
		})
	}
}

func AdminUpdateMarket(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req MarketForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		_, err := db.Exec(`
            UPDATE markets SET name = $1, description = $2, address = $3,
                lat = $4, lng = $5, day_of_week = $6, open_time = $7,
                close_time = $8, stall_count = $9, is_organic = $10
            WHERE id = $11
        `, req.Name, req.Description, req.Address, req.Lat, req.Lng,
			req.DayOfWeek, req.OpenTime, req.CloseTime, req.StallCount,
			req.IsOrganic, vars["id"])

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "pazar_guncelle", "market", id, req.Name)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Pazar güncellendi",
		})
	}
}

func AdminDeleteMarket(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		db.Exec("DELETE FROM markets WHERE id = $1", vars["id"])

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "pazar_sil", "market", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Pazar silindi",
		})
	}
}

// ==================== TEST SORULARI ====================

type QuestionForm struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Explanation   string   `json:"explanation"`
	Category      string   `json:"category"`
}

func AdminQuestions(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`
            SELECT id, question, options, correct_option, COALESCE(explanation, ''), category, is_active
            FROM quiz_questions
            ORDER BY id DESC
        `)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		type adminQuestion struct {
			models.QuizQuestion
			CorrectOption int `json:"correct_option"`
		}

		var questions []adminQuestion
		for rows.Next() {
			var q adminQuestion
			var optionsRaw []byte
			rows.Scan(&q.ID, &q.Question, &optionsRaw, &q.CorrectOption,
				&q.Explanation, &q.Category, &q.IsActive)
			json.Unmarshal(optionsRaw, &q.Options)
			questions = append(questions, q)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"questions": questions,
			"total":     len(questions),
		})
	}
}

func AdminCreateQuestion(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuestionForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if req.Question == "" || len(req.Options) < 2 ||
			req.CorrectOption < 0 || req.CorrectOption >= len(req.Options) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Soru, en az 2 şık ve geçerli doğru cevap gerekli",
			})
			return
		}

		options, _ := json.Marshal(req.Options)

		var id int
		err := db.QueryRow(`
            INSERT INTO quiz_questions (question, options, correct_option, explanation, category)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `, req.Question, options, req.CorrectOption, req.Explanation, req.Category).Scan(&id)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logAdminAction(db, r, "soru_olustur", "quiz_question", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":     true,
			"question_id": id,
		})
	}
}

func AdminUpdateQuestion(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req QuestionForm
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		options, _ := json.Marshal(req.Options)

		_, err := db.Exec(`
            UPDATE quiz_questions SET question = $1, options = $2,
                correct_option = $3, explanation = $4, category = $5
            WHERE id = $6
        `, req.Question, options, req.CorrectOption, req.Explanation, req.Category, vars["id"])

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Soru güncellendi",
		})
	}
}

func AdminToggleQuestion(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var isActive bool
		err := db.QueryRow(`
            UPDATE quiz_questions SET is_active = NOT is_active
            WHERE id = $1
            RETURNING is_active
        `, vars["id"]).Scan(&isActive)

		if err != nil {
			http.Error(w, "Soru bulunamadı", http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"is_active": isActive,
		})
	}
}

func AdminDeleteQuestion(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		db.Exec("DELETE FROM quiz_questions WHERE id = $1", vars["id"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Soru silindi",
		})
	}
}

// ==================== YORUM MODERASYONU ====================

func AdminComments(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 50
		}

		rows, err := db.Query(`
            SELECT c.id, c.user_id, u.username, c.content_kind, c.content_id, c.body, c.created_at
            FROM comments c
            JOIN users u ON c.user_id = u.id
            ORDER BY c.created_at DESC
            LIMIT $1 OFFSET $2
        `, limit, (page-1)*limit)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var comments []models.Comment
		for rows.Next() {
			var c models.Comment
			rows.Scan(&c.ID, &c.UserID, &c.Username, &c.ContentKind, &c.ContentID, &c.Body, &c.CreatedAt)
			comments = append(comments, c)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"comments": comments,
			"page":     page,
		})
	}
}

func AdminDeleteComment(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		db.Exec("DELETE FROM comments WHERE id = $1", vars["id"])

		id, _ := strconv.Atoi(vars["id"])
		logAdminAction(db, r, "yorum_sil", "comment", id, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Yorum silindi",
		})
	}
}

// ==================== LOGLAR VE AYARLAR ====================

func AdminLogs(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 50
		}

		rows, err := db.Query(`
            SELECT id, admin_id, action_type, COALESCE(target_kind, ''),
                   target_id, COALESCE(details, ''), COALESCE(ip_address, ''), created_at
            FROM admin_logs
            ORDER BY created_at DESC
            LIMIT $1 OFFSET $2
        `, limit, (page-1)*limit)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var logs []models.AdminLog
		for rows.Next() {
			var l models.AdminLog
			rows.Scan(&l.ID, &l.AdminID, &l.ActionType, &l.TargetKind,
				&l.TargetID, &l.Details, &l.IPAddress, &l.CreatedAt)
			logs = append(logs, l)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"logs": logs,
			"page": page,
		})
	}
}

func AdminSettings(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query("SELECT key, value FROM system_settings")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		settings := map[string]string{}
		for rows.Next() {
			var key, value string
			rows.Scan(&key, &value)
			settings[key] = value
		}

		json.NewEncoder(w).Encode(settings)
	}
}

func AdminUpdateSettings(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings map[string]string
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		for key, value := range settings {
			db.Exec(`
                INSERT INTO system_settings (key, value, updated_at)
                VALUES ($1, $2, NOW())
                ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
            `, key, value)
		}

		logAdminAction(db, r, "ayar_guncelle", "settings", 0, "")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Ayarlar kaydedildi",
		})
	}
}

// ==================== İSTATİSTİKLER ====================

func AdminChartData(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Son 7 günün kayıt ve yorum sayıları
		labels := []string{}
		var userData, commentData []int

		for i := 6; i >= 0; i-- {
			day := time.Now().AddDate(0, 0, -i)
			labels = append(labels, day.Format("02.01"))

			var users, comments int
			db.QueryRow(`
                SELECT COUNT(*) FROM users WHERE DATE(created_at) = $1
            `, day.Format("2006-01-02")).Scan(&users)
			db.QueryRow(`
                SELECT COUNT(*) FROM comments WHERE DATE(created_at) = $1
            `, day.Format("2006-01-02")).Scan(&comments)

			userData = append(userData, users)
			commentData = append(commentData, comments)
		}

		chart := models.ChartData{
			Labels: labels,
			Datasets: []models.ChartDataset{
				{Label: "Yeni Üyeler", Data: userData},
				{Label: "Yorumlar", Data: commentData},
			},
		}

		json.NewEncoder(w).Encode(chart)
	}
}
