// progress/repository.go
//
// İlerleme defteri (favoriler, eko-etki, rozetler) cihaz kapsamlıdır: hesaba değil,
// tarayıcıya bağlı bir çerez oturumunda saklanır ve sunucu veritabanına hiç yazılmaz.
// Saklama katmanı bu dar arayüzün arkasına alınmıştır; iş kuralları testlerde
// bellek içi bir sahte depo ile çalıştırılır.
package progress

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	SessionName = "doga_progress"

	keyFavorites = "favorites"
	keyEco       = "eco"
	keyBadges    = "badges"

	// Çerez ömrü: 1 yıl. Defter cihazda kaldığı sürece ilerleme korunur.
	sessionMaxAge = 86400 * 365
)

type Repository interface {
	// Load, anahtar altında kayıt varsa v'ye çözer ve true döner.
	// Kayıt yoksa veya çözümlenemiyorsa (bozuk eski sürüm) false döner;
	// çağıran varsayılan durumla devam eder.
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
}

// SessionRepository defteri gorilla/sessions çerezinde JSON olarak tutar.
// İstek başına oluşturulur; Save çağrısı çerezi yanıt üzerine yazar.
type SessionRepository struct {
	session *sessions.Session
	r       *http.Request
	w       http.ResponseWriter
}

func NewSessionRepository(store *sessions.CookieStore, r *http.Request, w http.ResponseWriter) *SessionRepository {
	session, _ := store.Get(r, SessionName)
	session.Options.MaxAge = sessionMaxAge
	session.Options.HttpOnly = true
	session.Options.Path = "/"

	return &SessionRepository{session: session, r: r, w: w}
}

func (s *SessionRepository) Load(key string, v any) (bool, error) {
	raw, ok := s.session.Values[key].(string)
	if !ok || raw == "" {
		return false, nil
	}

	// Bozuk kayıt hata değil: varsayılan durumla devam edilir
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, nil
	}

	return true, nil
}

func (s *SessionRepository) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.session.Values[key] = string(data)
	return s.session.Save(s.r, s.w)
}
