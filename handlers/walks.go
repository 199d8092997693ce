// handlers/walks.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"doga-platform/models"

	"github.com/gorilla/mux"
)

func GetWalks(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Query parametrelerini al
		difficulty := r.URL.Query().Get("difficulty")
		season := r.URL.Query().Get("season")
		search := r.URL.Query().Get("search")
		sort := r.URL.Query().Get("sort")
		maxKm, _ := strconv.ParseFloat(r.URL.Query().Get("max_km"), 64)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 12
		}

		// SQL sorgusu oluştur
		query := `
            SELECT w.id, w.name, COALESCE(w.description, ''), w.difficulty,
                   w.distance_km, w.duration_min, w.season, COALESCE(w.image_url, ''),
                   COALESCE(AVG(rt.stars), 0) as rating_avg,
                   COUNT(DISTINCT rt.id) as rating_count,
                   COUNT(DISTINCT c.id) as comment_count
            FROM walks w
            LEFT JOIN ratings rt ON rt.content_kind = 'walk' AND rt.content_id = w.id
            LEFT JOIN comments c ON c.content_kind = 'walk' AND c.content_id = w.id
            WHERE w.is_active = true
        `

		var args []interface{}
		argCount := 1

		if difficulty != "" && difficulty != "all" {
			query += ` AND w.difficulty = $` + strconv.Itoa(argCount)
			args = append(args, difficulty)
			argCount++
		}

		if season != "" && season != "all" {
			query += ` AND (w.season = $` + strconv.Itoa(argCount) + ` OR w.season = 'tum_yil')`
			args = append(args, season)
			argCount++
		}

		if maxKm > 0 {
			query += ` AND w.distance_km <= $` + strconv.Itoa(argCount)
			args = append(args, maxKm)
			argCount++
		}

		if search != "" {
			query += ` AND w.name ILIKE $` + strconv.Itoa(argCount)
			args = append(args, "%"+search+"%")
			argCount++
		}

		query += ` GROUP BY w.id`

		// Sıralama
		switch sort {
		case "newest":
			query += ` ORDER BY w.created_at DESC`
		case "shortest":
			query += ` ORDER BY w.distance_km ASC`
		case "longest":
			query += ` ORDER BY w.distance_km DESC`
		case "top-rated":
			query += ` ORDER BY rating_avg DESC`
		default:
			query += ` ORDER BY w.created_at DESC`
		}

		// Sayfalama
		query += ` LIMIT $` + strconv.Itoa(argCount) + ` OFFSET $` + strconv.Itoa(argCount+1)
		args = append(args, limit, (page-1)*limit)

		rows, err := db.Query(query, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var walks []models.Walk
		for rows.Next() {
			var wk models.Walk
			rows.Scan(&wk.ID, &wk.Name, &wk.Description, &wk.Difficulty,
				&wk.DistanceKm, &wk.DurationMin, &wk.Season, &wk.ImageURL,
				&wk.RatingAvg, &wk.RatingCount, &wk.CommentCount)
			walks = append(walks, wk)
		}

		// Toplam sayıyı al
		var totalCount int
		db.QueryRow("SELECT COUNT(*) FROM walks WHERE is_active = true").Scan(&totalCount)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"walks":       walks,
			"total":       totalCount,
			"page":        page,
			"limit":       limit,
			"total_pages": (totalCount + limit - 1) / limit,
		})
	}
}

func GetWalkDetail(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		walkID := vars["id"]

		var wk models.Walk
		err := db.QueryRow(`
            SELECT w.id, w.name, COALESCE(w.description, ''), w.difficulty,
                   w.distance_km, w.duration_min, COALESCE(w.start_point, ''),
                   COALESCE(w.center_lat, 0), COALESCE(w.center_lng, 0), w.zoom,
                   w.season, COALESCE(w.image_url, ''), w.created_at,
                   COALESCE(AVG(rt.stars), 0) as rating_avg,
                   COUNT(DISTINCT rt.id) as rating_count
            FROM walks w
            LEFT JOIN ratings rt ON rt.content_kind = 'walk' AND rt.content_id = w.id
            WHERE w.id = $1 AND w.is_active = true
            GROUP BY w.id
        `, walkID).Scan(
			&wk.ID, &wk.Name, &wk.Description, &wk.Difficulty,
			&wk.DistanceKm, &wk.DurationMin, &wk.StartPoint,
			&wk.CenterLat, &wk.CenterLng, &wk.Zoom,
			&wk.Season, &wk.ImageURL, &wk.CreatedAt,
			&wk.RatingAvg, &wk.RatingCount,
		)

		if err != nil {
			http.Error(w, "Rota bulunamadı", http.StatusNotFound)
			return
		}

		// Rota noktaları
		rows, err := db.Query(`
            SELECT id, label, COALESCE(description, ''), lat, lng, point_order, kind
            FROM walk_points
            WHERE walk_id = $1
            ORDER BY point_order
        `, wk.ID)

		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var p models.WalkPoint
				rows.Scan(&p.ID, &p.Label, &p.Description, &p.Lat, &p.Lng, &p.PointOrder, &p.Kind)
				wk.Points = append(wk.Points, p)
			}
		}

		json.NewEncoder(w).Encode(wk)
	}
}

// Harita bileşeni için veri: merkez, zoom, işaretçiler ve rota çizgisi.
// Çizim istemciye aittir; burası sadece sözleşmeyi doldurur.
func GetWalkMapData(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		walkID := vars["id"]

		var data models.MapData
		var polylineRaw []byte
		err := db.QueryRow(`
            SELECT COALESCE(center_lat, 0), COALESCE(center_lng, 0), zoom, COALESCE(polyline, '[]'::jsonb)
            FROM walks WHERE id = $1 AND is_active = true
        `, walkID).Scan(&data.CenterLat, &data.CenterLng, &data.Zoom, &polylineRaw)

		if err != nil {
			http.Error(w, "Rota bulunamadı", http.StatusNotFound)
			return
		}

		json.Unmarshal(polylineRaw, &data.Polyline)

		rows, err := db.Query(`
            SELECT id, label, COALESCE(description, ''), lat, lng
            FROM walk_points
            WHERE walk_id = $1
            ORDER BY point_order
        `, walkID)

		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var m models.MapMarker
				rows.Scan(&m.ID, &m.Label, &m.Description, &m.Lat, &m.Lng)
				data.Markers = append(data.Markers, m)
			}
		}

		json.NewEncoder(w).Encode(data)
	}
}
