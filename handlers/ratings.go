// handlers/ratings.go
package handlers

import (
    "database/sql"
    "encoding/json"
    "html/template"
    "net/http"
    "strconv"

    "doga-platform/models"
)

type TopWalksData struct {
    Title   string
    Entries []models.TopWalkEntry
    Stats   CommunityStats
}

type CommunityStats struct {
    TotalWalks    int
    TotalRatings  int
    TotalComments int
}

func GetTopWalks(db *sql.DB) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        difficulty := r.URL.Query().Get("difficulty")
        limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

        if limit < 1 {
            limit = 20
        }

        query := `
            SELECT
                w.id,
                w.name,
                w.difficulty,
                w.distance_km,
                COALESCE(w.image_url, ''),
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

        query += ` GROUP BY w.id ORDER BY rating_avg DESC, rating_count DESC`
        query += ` LIMIT $` + strconv.Itoa(argCount)
        args = append(args, limit)

        rows, err := db.Query(query, args...)
        if err != nil {
            http.Error(w, err.Error(), http.StatusInternalServerError)
            return
        }
        defer rows.Close()

        var entries []models.TopWalkEntry
        for rows.Next() {
            var e models.TopWalkEntry
            rows.Scan(
                &e.ID, &e.Name, &e.Difficulty, &e.DistanceKm, &e.ImageURL,
                &e.RatingAvg, &e.RatingCount, &e.CommentCount,
            )
            entries = append(entries, e)
        }

        // Topluluk istatistikleri
        var stats CommunityStats
        db.QueryRow("SELECT COUNT(*) FROM walks WHERE is_active = true").Scan(&stats.TotalWalks)
        db.QueryRow("SELECT COUNT(*) FROM ratings").Scan(&stats.TotalRatings)
        db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&stats.TotalComments)

        json.NewEncoder(w).Encode(map[string]interface{}{
            "entries": entries,
            "stats": map[string]interface{}{
                "total_walks":    stats.TotalWalks,
                "total_ratings":  stats.TotalRatings,
                "total_comments": stats.TotalComments,
            },
        })
    }
}

func TopWalksPage(db *sql.DB) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        // En iyi 50 rota
        rows, err := db.Query(`
            SELECT
                w.id,
                w.name,
                w.difficulty,
                w.distance_km,
                COALESCE(w.image_url, ''),
                COALESCE(AVG(rt.stars), 0) as rating_avg,
                COUNT(DISTINCT rt.id) as rating_count,
                COUNT(DISTINCT c.id) as comment_count
            FROM walks w
            LEFT JOIN ratings rt ON rt.content_kind = 'walk' AND rt.content_id = w.id
            LEFT JOIN comments c ON c.content_kind = 'walk' AND c.content_id = w.id
            WHERE w.is_active = true
            GROUP BY w.id
            ORDER BY rating_avg DESC, rating_count DESC
            LIMIT 50
        `)

        if err != nil {
            http.Error(w, err.Error(), http.StatusInternalServerError)
            return
        }
        defer rows.Close()

        var entries []models.TopWalkEntry
        for rows.Next() {
            var e models.TopWalkEntry
            rows.Scan(
                &e.ID, &e.Name, &e.Difficulty, &e.DistanceKm, &e.ImageURL,
                &e.RatingAvg, &e.RatingCount, &e.CommentCount,
            )
            entries = append(entries, e)
        }

        var stats CommunityStats
        db.QueryRow("SELECT COUNT(*) FROM walks WHERE is_active = true").Scan(&stats.TotalWalks)
        db.QueryRow("SELECT COUNT(*) FROM ratings").Scan(&stats.TotalRatings)
        db.QueryRow("SELECT COUNT(*) FROM comments").Scan(&stats.TotalComments)

        data := TopWalksData{
            Title:   "En Sevilen Rotalar - DOĞA ROTASI",
            Entries: entries,
            Stats:   stats,
        }

        tmpl := template.Must(template.ParseFiles("templates/top_walks.html"))
        tmpl.Execute(w, data)
    }
}
