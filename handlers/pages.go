// handlers/pages.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"html/template"
	"net/http"

	"doga-platform/models"
	"doga-platform/progress"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

type HomePageData struct {
	Title           string
	IsAuthenticated bool
	Username        string
	Stats           HomeStats
	FeaturedWalks   []models.Walk
	UpcomingEvents  []models.Event
}

type HomeStats struct {
	TotalWalks   int
	TotalGardens int
	TotalEvents  int
	TotalMembers int
}

func HomePage(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")
		isAuth := false
		var username string

		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			isAuth = true
			username, _ = session.Values["username"].(string)
		}

		// İstatistikler
		var stats HomeStats
		db.QueryRow("SELECT COUNT(*) FROM walks WHERE is_active = true").Scan(&stats.TotalWalks)
		db.QueryRow("SELECT COUNT(*) FROM gardens WHERE is_active = true").Scan(&stats.TotalGardens)
		db.QueryRow("SELECT COUNT(*) FROM events WHERE is_active = true AND starts_at >= NOW()").Scan(&stats.TotalEvents)
		db.QueryRow("SELECT COUNT(*) FROM users WHERE is_active = true").Scan(&stats.TotalMembers)

		// Öne çıkan rotalar
		var featured []models.Walk
		rows, err := db.Query(`
            SELECT w.id, w.name, COALESCE(w.description, ''), w.difficulty, w.distance_km,
                   COALESCE(w.image_url, ''),
                   COALESCE(AVG(rt.stars), 0) as rating_avg
            FROM walks w
            LEFT JOIN ratings rt ON rt.content_kind = 'walk' AND rt.content_id = w.id
            WHERE w.is_active = true
            GROUP BY w.id
            ORDER BY rating_avg DESC
            LIMIT 6
        `)
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var wk models.Walk
				rows.Scan(&wk.ID, &wk.Name, &wk.Description, &wk.Difficulty,
					&wk.DistanceKm, &wk.ImageURL, &wk.RatingAvg)
				featured = append(featured, wk)
			}
		}

		// Yaklaşan etkinlikler
		var upcoming []models.Event
		rows, err = db.Query(`
            SELECT id, title, category, location, starts_at
            FROM events
            WHERE is_active = true AND starts_at >= NOW()
            ORDER BY starts_at ASC
            LIMIT 4
        `)
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var e models.Event
				rows.Scan(&e.ID, &e.Title, &e.Category, &e.Location, &e.StartsAt)
				upcoming = append(upcoming, e)
			}
		}

		data := HomePageData{
			Title:           "Ana Sayfa - DOĞA ROTASI",
			IsAuthenticated: isAuth,
			Username:        username,
			Stats:           stats,
			FeaturedWalks:   featured,
			UpcomingEvents:  upcoming,
		}

		tmpl := template.Must(template.ParseFiles("templates/index.html"))
		tmpl.Execute(w, data)
	}
}

func LoginPage(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")
		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			http.Redirect(w, r, "/panel", http.StatusSeeOther)
			return
		}

		data := map[string]interface{}{
			"Title": "Giriş Yap - DOĞA ROTASI",
		}

		tmpl := template.Must(template.ParseFiles("templates/login.html"))
		tmpl.Execute(w, data)
	}
}

func RegisterPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{
			"Title": "Kayıt Ol - DOĞA ROTASI",
		}

		tmpl := template.Must(template.ParseFiles("templates/register.html"))
		tmpl.Execute(w, data)
	}
}

func WalksPage(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")
		isAuth := false
		var username string

		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			isAuth = true
			username, _ = session.Values["username"].(string)
		}

		var totalCount int
		db.QueryRow("SELECT COUNT(*) FROM walks WHERE is_active = true").Scan(&totalCount)

		data := map[string]interface{}{
			"Title":           "Yürüyüş Rotaları - DOĞA ROTASI",
			"IsAuthenticated": isAuth,
			"Username":        username,
			"TotalCount":      totalCount,
		}

		tmpl := template.Must(template.ParseFiles("templates/walks.html"))
		tmpl.Execute(w, data)
	}
}

func WalkDetailPage(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		walkID := vars["id"]

		session, _ := store.Get(r, "session")
		isAuth := false
		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			isAuth = true
		}

		var wk models.Walk
		err := db.QueryRow(`
            SELECT id, name, COALESCE(description, ''), difficulty, distance_km, duration_min,
                   COALESCE(start_point, ''), COALESCE(center_lat, 0), COALESCE(center_lng, 0), zoom, COALESCE(image_url, '')
            FROM walks WHERE id = $1 AND is_active = true
        `, walkID).Scan(&wk.ID, &wk.Name, &wk.Description, &wk.Difficulty,
			&wk.DistanceKm, &wk.DurationMin, &wk.StartPoint,
			&wk.CenterLat, &wk.CenterLng, &wk.Zoom, &wk.ImageURL)

		if err != nil {
			http.NotFound(w, r)
			return
		}

		// Favori durumu cihaz defterinden okunur
		repo := progress.NewSessionRepository(store, r, w)
		favorites := progress.NewFavorites(repo)

		data := map[string]interface{}{
			"Title":           wk.Name + " - DOĞA ROTASI",
			"IsAuthenticated": isAuth,
			"Walk":            wk,
			"IsFavorite":      favorites.IsFavorite(walkID, progress.KindWalk),
		}

		tmpl := template.Must(template.ParseFiles("templates/walk_detail.html"))
		tmpl.Execute(w, data)
	}
}

func GardensPage(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")
		isAuth := false
		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			isAuth = true
		}

		data := map[string]interface{}{
			"Title":           "Mahalle Bostanları - DOĞA ROTASI",
			"IsAuthenticated": isAuth,
		}

		tmpl := template.Must(template.ParseFiles("templates/gardens.html"))
		tmpl.Execute(w, data)
	}
}

func EventsPage(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")
		isAuth := false
		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			isAuth = true
		}

		data := map[string]interface{}{
			"Title":           "Etkinlikler - DOĞA ROTASI",
			"IsAuthenticated": isAuth,
		}

		tmpl := template.Must(template.ParseFiles("templates/events.html"))
		tmpl.Execute(w, data)
	}
}

func QuizPage(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")
		isAuth := false
		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			isAuth = true
		}

		data := map[string]interface{}{
			"Title":           "Doğa Testi - DOĞA ROTASI",
			"IsAuthenticated": isAuth,
		}

		tmpl := template.Must(template.ParseFiles("templates/quiz.html"))
		tmpl.Execute(w, data)
	}
}

// Panel: içerik istatistikleri + cihazdaki ilerleme defteri tek sayfada
func PanelPage(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")
		isAuth := false
		var username string

		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			isAuth = true
			username, _ = session.Values["username"].(string)
		}

		repo := progress.NewSessionRepository(store, r, w)
		eco := progress.NewEcoImpact(repo)
		badges := progress.NewBadges(repo)
		favorites := progress.NewFavorites(repo)

		summary := progress.BuildSummary(eco.Stats(), badges.All(), favorites.ByKind())

		var upcoming []models.Event
		rows, err := db.Query(`
            SELECT id, title, category, location, starts_at
            FROM events
            WHERE is_active = true AND starts_at >= NOW()
            ORDER BY starts_at ASC
            LIMIT 5
        `)
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var e models.Event
				rows.Scan(&e.ID, &e.Title, &e.Category, &e.Location, &e.StartsAt)
				upcoming = append(upcoming, e)
			}
		}

		data := map[string]interface{}{
			"Title":           "Panelim - DOĞA ROTASI",
			"IsAuthenticated": isAuth,
			"Username":        username,
			"Summary":         summary,
			"UpcomingEvents":  upcoming,
		}

		tmpl := template.Must(template.ParseFiles("templates/panel.html"))
		tmpl.Execute(w, data)
	}
}

func MapPage(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, "session")
		isAuth := false
		if auth, ok := session.Values["authenticated"].(bool); ok && auth {
			isAuth = true
		}

		// Tüm içerik işaretçileri tek haritada
		var markers []models.MapMarker
		rows, err := db.Query(`
            SELECT id, name, lat, lng FROM gardens WHERE is_active = true AND lat IS NOT NULL
            UNION ALL
            SELECT id, name, lat, lng FROM markets WHERE is_active = true AND lat IS NOT NULL
        `)
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var m models.MapMarker
				rows.Scan(&m.ID, &m.Label, &m.Lat, &m.Lng)
				markers = append(markers, m)
			}
		}

		markersJSON, _ := json.Marshal(markers)

		data := map[string]interface{}{
			"Title":           "Harita - DOĞA ROTASI",
			"IsAuthenticated": isAuth,
			"MarkersJSON":     template.JS(markersJSON),
		}

		tmpl := template.Must(template.ParseFiles("templates/map.html"))
		tmpl.Execute(w, data)
	}
}
