// handlers/content.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"doga-platform/models"

	"github.com/gorilla/mux"
)

func GetGardens(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onlyFree := r.URL.Query().Get("free") == "true"
		search := r.URL.Query().Get("search")

		query := `
            SELECT id, name, COALESCE(description, ''), COALESCE(address, ''), COALESCE(lat, 0), COALESCE(lng, 0),
                   area_m2, plot_count, plots_free, COALESCE(image_url, ''), COALESCE(contact_email, '')
            FROM gardens
            WHERE is_active = true
        `

		var args []interface{}
		argCount := 1

		if onlyFree {
			query += ` AND plots_free > 0`
		}

		if search != "" {
			query += ` AND name ILIKE $` + strconv.Itoa(argCount)
			args = append(args, "%"+search+"%")
			argCount++
		}

		query += ` ORDER BY name`

		rows, err := db.Query(query, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var gardens []models.Garden
		for rows.Next() {
			var g models.Garden
			rows.Scan(&g.ID, &g.Name, &g.Description, &g.Address, &g.Lat, &g.Lng,
				&g.AreaM2, &g.PlotCount, &g.PlotsFree, &g.ImageURL, &g.ContactEmail)
			gardens = append(gardens, g)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"gardens": gardens,
			"total":   len(gardens),
		})
	}
}

func GetGardenDetail(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var g models.Garden
		err := db.QueryRow(`
            SELECT id, name, COALESCE(description, ''), COALESCE(address, ''), COALESCE(lat, 0), COALESCE(lng, 0),
                   area_m2, plot_count, plots_free, COALESCE(image_url, ''), COALESCE(contact_email, ''), created_at
            FROM gardens WHERE id = $1 AND is_active = true
        `, vars["id"]).Scan(
			&g.ID, &g.Name, &g.Description, &g.Address, &g.Lat, &g.Lng,
			&g.AreaM2, &g.PlotCount, &g.PlotsFree, &g.ImageURL, &g.ContactEmail, &g.CreatedAt,
		)

		if err != nil {
			http.Error(w, "Bostan bulunamadı", http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(g)
	}
}

func GetEvents(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		timeframe := r.URL.Query().Get("timeframe")
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}

		query := `
            SELECT e.id, e.title, COALESCE(e.description, ''), e.category, COALESCE(e.location, ''),
                   COALESCE(e.lat, 0), COALESCE(e.lng, 0), e.starts_at, COALESCE(e.ends_at, e.starts_at),
                   e.capacity, COALESCE(e.image_url, ''), COALESCE(u.username, ''),
                   COUNT(er.id) as registered
            FROM events e
            LEFT JOIN users u ON e.organizer_id = u.id
            LEFT JOIN event_registrations er ON er.event_id = e.id
            WHERE e.is_active = true
        `

		var args []interface{}
		argCount := 1

		if category != "" && category != "all" {
			query += ` AND e.category = $` + strconv.Itoa(argCount)
			args = append(args, category)
			argCount++
		}

		switch timeframe {
		case "past":
			query += ` AND e.starts_at < NOW()`
		case "today":
			query += ` AND DATE(e.starts_at) = CURRENT_DATE`
		default:
			// Varsayılan: yaklaşan etkinlikler
			query += ` AND e.starts_at >= NOW()`
		}

		query += ` GROUP BY e.id, u.username ORDER BY e.starts_at ASC`
		query += ` LIMIT $` + strconv.Itoa(argCount) + ` OFFSET $` + strconv.Itoa(argCount+1)
		args = append(args, limit, (page-1)*limit)

		rows, err := db.Query(query, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var events []models.Event
		for rows.Next() {
			var e models.Event
			rows.Scan(&e.ID, &e.Title, &e.Description, &e.Category, &e.Location,
				&e.Lat, &e.Lng, &e.StartsAt, &e.EndsAt,
				&e.Capacity, &e.ImageURL, &e.Organizer, &e.Registered)
			events = append(events, e)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"events": events,
			"page":   page,
			"limit":  limit,
		})
	}
}

func GetEventDetail(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var e models.Event
		err := db.QueryRow(`
            SELECT e.id, e.title, COALESCE(e.description, ''), e.category, COALESCE(e.location, ''),
                   COALESCE(e.lat, 0), COALESCE(e.lng, 0), e.starts_at, COALESCE(e.ends_at, e.starts_at),
                   e.capacity, COALESCE(e.image_url, ''), COALESCE(u.username, ''), e.created_at,
                   (SELECT COUNT(*) FROM event_registrations WHERE event_id = e.id)
            FROM events e
            LEFT JOIN users u ON e.organizer_id = u.id
            WHERE e.id = $1 AND e.is_active = true
        `, vars["id"]).Scan(
			&e.ID, &e.Title, &e.Description, &e.Category, &e.Location,
			&e.Lat, &e.Lng, &e.StartsAt, &e.EndsAt,
			&e.Capacity, &e.ImageURL, &e.Organizer, &e.CreatedAt, &e.Registered,
		)

		if err != nil {
			http.Error(w, "Etkinlik bulunamadı", http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(e)
	}
}

func RegisterForEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		// Kapasite kontrolü
		var capacity, registered int
		err := db.QueryRow(`
            SELECT e.capacity, COUNT(er.id)
            FROM events e
            LEFT JOIN event_registrations er ON er.event_id = e.id
            WHERE e.id = $1 AND e.is_active = true
            GROUP BY e.capacity
        `, vars["id"]).Scan(&capacity, &registered)

		if err != nil {
			http.Error(w, "Etkinlik bulunamadı", http.StatusNotFound)
			return
		}

		if capacity > 0 && registered >= capacity {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Etkinlik kontenjanı dolu",
			})
			return
		}

		_, err = db.Exec(`
            INSERT INTO event_registrations (event_id, user_id)
            VALUES ($1, $2)
            ON CONFLICT (event_id, user_id) DO NOTHING
        `, vars["id"], userID)

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		db.Exec(`
            INSERT INTO activity_logs (user_id, action_type, content_kind, content_id, ip_address)
            VALUES ($1, 'etkinlik_kayit', 'event', $2, $3)
        `, userID, vars["id"], r.RemoteAddr)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Etkinliğe kaydolundu",
		})
	}
}

func UnregisterFromEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		userID := r.Header.Get("X-User-ID")

		db.Exec(`
            DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2
        `, vars["id"], userID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Kayıt iptal edildi",
		})
	}
}

func GetAssociations(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme := r.URL.Query().Get("theme")

		query := `
            SELECT id, name, COALESCE(description, ''), theme, COALESCE(address, ''),
                   COALESCE(contact_email, ''), COALESCE(website, ''), member_count, COALESCE(image_url, '')
            FROM associations
            WHERE is_active = true
        `

		var args []interface{}

		if theme != "" && theme != "all" {
			query += ` AND theme = $1`
			args = append(args, theme)
		}

		query += ` ORDER BY name`

		rows, err := db.Query(query, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var associations []models.Association
		for rows.Next() {
			var a models.Association
			rows.Scan(&a.ID, &a.Name, &a.Description, &a.Theme, &a.Address,
				&a.ContactEmail, &a.Website, &a.MemberCount, &a.ImageURL)
			associations = append(associations, a)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"associations": associations,
			"total":        len(associations),
		})
	}
}

func GetAssociationDetail(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var a models.Association
		err := db.QueryRow(`
            SELECT id, name, COALESCE(description, ''), theme, COALESCE(address, ''),
                   COALESCE(contact_email, ''), COALESCE(website, ''), member_count, COALESCE(image_url, ''), created_at
            FROM associations WHERE id = $1 AND is_active = true
        `, vars["id"]).Scan(
			&a.ID, &a.Name, &a.Description, &a.Theme, &a.Address,
			&a.ContactEmail, &a.Website, &a.MemberCount, &a.ImageURL, &a.CreatedAt,
		)

		if err != nil {
			http.Error(w, "Dernek bulunamadı", http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(a)
	}
}

func GetMarkets(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := r.URL.Query().Get("day")
		onlyOrganic := r.URL.Query().Get("organic") == "true"

		query := `
            SELECT id, name, COALESCE(description, ''), COALESCE(address, ''), COALESCE(lat, 0), COALESCE(lng, 0),
                   day_of_week, open_time, close_time, stall_count, is_organic
            FROM markets
            WHERE is_active = true
        `

		var args []interface{}

		if day != "" && day != "all" {
			query += ` AND day_of_week = $1`
			args = append(args, day)
		}

		if onlyOrganic {
			query += ` AND is_organic = true`
		}

		query += ` ORDER BY name`

		rows, err := db.Query(query, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var markets []models.Market
		for rows.Next() {
			var m models.Market
			rows.Scan(&m.ID, &m.Name, &m.Description, &m.Address, &m.Lat, &m.Lng,
				&m.DayOfWeek, &m.OpenTime, &m.CloseTime, &m.StallCount, &m.IsOrganic)
			markets = append(markets, m)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"markets": markets,
			"total":   len(markets),
		})
	}
}
