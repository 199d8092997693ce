// handlers/progress.go
//
// İlerleme defteri uçları. Defter cihaz çerezinde yaşar: giriş gerektirmez,
// hesaba bağlı değildir ve veritabanına yazılmaz. Cihaz değiştiren kullanıcı
// ilerlemesini taşıyamaz; bu bilinçli bir hafif-oyunlaştırma tercihidir.
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"doga-platform/progress"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

type FavoriteRequest struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

func GetProgress(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := progress.NewSessionRepository(store, r, w)

		eco := progress.NewEcoImpact(repo)
		badges := progress.NewBadges(repo)
		favorites := progress.NewFavorites(repo)

		summary := progress.BuildSummary(eco.Stats(), badges.All(), favorites.ByKind())
		json.NewEncoder(w).Encode(summary)
	}
}

func GetFavorites(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := progress.NewSessionRepository(store, r, w)
		favorites := progress.NewFavorites(repo)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"favorites": favorites.Entries(),
			"total":     favorites.Count(),
		})
	}
}

func AddFavorite(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz istek", http.StatusBadRequest)
			return
		}

		if req.ID == "" || !progress.ValidKind(req.Kind) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Geçersiz içerik türü",
			})
			return
		}

		repo := progress.NewSessionRepository(store, r, w)
		favorites := progress.NewFavorites(repo)
		favorites.Add(req.ID, progress.Kind(req.Kind), req.Label)

		// Favori eşiği rozet açabilir (nature-lover)
		eco := progress.NewEcoImpact(repo)
		badges := progress.NewBadges(repo)
		stats := eco.Stats()
		newBadges := badges.CheckAndUnlock(progress.Snapshot{
			WalksCompleted: stats.WalksCompleted,
			CO2SavedKg:     stats.CO2SavedKg,
			FavoritesCount: favorites.Count(),
		})

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    true,
			"message":    "Favorilere eklendi",
			"total":      favorites.Count(),
			"new_badges": newBadges,
		})
	}
}

func RemoveFavorite(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		kind := vars["kind"]
		id := vars["id"]

		if !progress.ValidKind(kind) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Geçersiz içerik türü",
			})
			return
		}

		repo := progress.NewSessionRepository(store, r, w)
		favorites := progress.NewFavorites(repo)
		favorites.Remove(id, progress.Kind(kind))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Favorilerden çıkarıldı",
			"total":   favorites.Count(),
		})
	}
}

// CompleteWalk "bu yürüyüşü tamamladım" akışıdır: rotanın mesafesi içerik
// deposundan okunur, defter biriktirir, yeni açılan rozetler bildirim için döner.
func CompleteWalk(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		walkID := vars["id"]

		var distanceKm float64
		var name string
		err := db.QueryRow(`
            SELECT distance_km, name FROM walks WHERE id = $1 AND is_active = true
        `, walkID).Scan(&distanceKm, &name)

		if err != nil {
			http.Error(w, "Rota bulunamadı", http.StatusNotFound)
			return
		}

		repo := progress.NewSessionRepository(store, r, w)
		eco := progress.NewEcoImpact(repo)

		stats, err := eco.AddWalk(distanceKm)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		favorites := progress.NewFavorites(repo)
		badges := progress.NewBadges(repo)
		newBadges := badges.CheckAndUnlock(progress.Snapshot{
			WalksCompleted: stats.WalksCompleted,
			CO2SavedKg:     stats.CO2SavedKg,
			FavoritesCount: favorites.Count(),
		})

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":          true,
			"message":          name + " tamamlandı",
			"stats":            stats,
			"trees_equivalent": stats.TreesEquivalent(),
			"new_badges":       newBadges,
		})
	}
}

func ResetProgress(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := progress.NewSessionRepository(store, r, w)
		eco := progress.NewEcoImpact(repo)

		// Sadece sayaçlar sıfırlanır; açılmış rozetler geri alınmaz
		eco.Reset()

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "İstatistikler sıfırlandı",
			"stats":   eco.Stats(),
		})
	}
}

func GetBadges(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := progress.NewSessionRepository(store, r, w)
		badges := progress.NewBadges(repo)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"badges":   badges.All(),
			"unlocked": badges.UnlockedCount(),
		})
	}
}
