// handlers/quiz.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"doga-platform/models"
	"doga-platform/progress"

	"github.com/gorilla/sessions"
)

type QuizSubmission struct {
	// Soru id → seçilen şık indeksi
	Answers map[string]int `json:"answers"`
}

func GetQuizQuestions(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit < 1 {
			limit = 10
		}

		query := `
            SELECT id, question, options, COALESCE(explanation, ''), category
            FROM quiz_questions
            WHERE is_active = true
        `

		var args []interface{}
		argCount := 1

		if category != "" && category != "all" {
			query += ` AND category = $` + strconv.Itoa(argCount)
			args = append(args, category)
			argCount++
		}

		query += ` ORDER BY RANDOM() LIMIT $` + strconv.Itoa(argCount)
		args = append(args, limit)

		rows, err := db.Query(query, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		var questions []models.QuizQuestion
		for rows.Next() {
			var q models.QuizQuestion
			var optionsRaw []byte
			rows.Scan(&q.ID, &q.Question, &optionsRaw, &q.Explanation, &q.Category)
			json.Unmarshal(optionsRaw, &q.Options)
			questions = append(questions, q)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"questions": questions,
			"total":     len(questions),
		})
	}
}

// SubmitQuiz cevapları puanlar. Test durumu deftere yazılmaz; skor yalnızca
// bu çağrı içinde rozet değerlendirmesine girer (quiz-master).
func SubmitQuiz(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub QuizSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if len(sub.Answers) == 0 {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Cevap gönderilmedi",
			})
			return
		}

		result := models.QuizResult{Total: len(sub.Answers)}

		for questionID, chosen := range sub.Answers {
			var correct int
			err := db.QueryRow(`
                SELECT correct_option FROM quiz_questions WHERE id = $1 AND is_active = true
            `, questionID).Scan(&correct)

			if err != nil {
				continue
			}

			if chosen == correct {
				result.Correct++
			}
		}

		result.Score = result.Correct * 100 / result.Total

		// Skor rozet motoruna anlık görüntüyle verilir
		repo := progress.NewSessionRepository(store, r, w)
		eco := progress.NewEcoImpact(repo)
		favorites := progress.NewFavorites(repo)
		badges := progress.NewBadges(repo)

		stats := eco.Stats()
		score := result.Score
		newBadges := badges.CheckAndUnlock(progress.Snapshot{
			WalksCompleted: stats.WalksCompleted,
			CO2SavedKg:     stats.CO2SavedKg,
			FavoritesCount: favorites.Count(),
			QuizScore:      &score,
		})

		result.QuizMaster = false
		for _, b := range newBadges {
			if b.ID == "quiz-master" {
				result.QuizMaster = true
			}
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    true,
			"result":     result,
			"new_badges": newBadges,
		})
	}
}
