// progress/badges.go
package progress

import (
	"log"
	"time"
)

type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// Snapshot rozet değerlendirmesine çağrı anında kopya olarak verilir;
// motor diğer depoları okumaz. QuizScore isteğe bağlıdır: verilmediyse
// quiz'e bağlı eşikler atlanır.
type Snapshot struct {
	WalksCompleted int
	CO2SavedKg     float64
	FavoritesCount int
	QuizScore      *int // Yüzde
}

type badgeDef struct {
	id          string
	name        string
	description string
	icon        string
	satisfied   func(Snapshot) bool
}

// Katalog derleme zamanında sabittir. Yeni rozet eklemek buraya satır
// eklemekten ibarettir; akış değişmez. Sıra, bildirim sırasını belirler.
var catalog = []badgeDef{
	{"first-walk", "İlk Adım", "İlk yürüyüşünü tamamla", "🥾",
		func(s Snapshot) bool { return s.WalksCompleted >= 1 }},
	{"explorer", "Kaşif", "5 yürüyüş tamamla", "🧭",
		func(s Snapshot) bool { return s.WalksCompleted >= 5 }},
	{"eco-warrior", "Eko Savaşçı", "10 kg CO₂ tasarruf et", "🌱",
		func(s Snapshot) bool { return s.CO2SavedKg >= 10 }},
	{"green-hero", "Yeşil Kahraman", "50 kg CO₂ tasarruf et", "🌳",
		func(s Snapshot) bool { return s.CO2SavedKg >= 50 }},
	{"nature-lover", "Doğa Aşığı", "5 favori ekle", "💚",
		func(s Snapshot) bool { return s.FavoritesCount >= 5 }},
	{"quiz-master", "Bilgi Ustası", "Doğa testinde %80 ve üzeri al", "🦉",
		func(s Snapshot) bool { return s.QuizScore != nil && *s.QuizScore >= 80 }},
}

// Badges katalogdaki sabit meta veriler üzerine kalıcı kilit açma
// kaydını bindirir. Açılan rozet normal işleyişte bir daha kilitlenmez.
type Badges struct {
	repo     Repository
	unlocked map[string]time.Time // rozet id → açılma zamanı
}

func NewBadges(repo Repository) *Badges {
	b := &Badges{repo: repo, unlocked: map[string]time.Time{}}
	if _, err := repo.Load(keyBadges, &b.unlocked); err != nil {
		log.Printf("Rozet kaydı yüklenemedi: %v", err)
		b.unlocked = map[string]time.Time{}
	}
	if b.unlocked == nil {
		b.unlocked = map[string]time.Time{}
	}
	return b
}

// CheckAndUnlock anlık görüntüyü tüm eşiklere karşı değerlendirir ve
// YALNIZCA bu çağrıda yeni açılan rozetleri katalog sırasıyla döner.
// Aynı görüntüyle ikinci çağrı boş liste döner (idempotent).
func (b *Badges) CheckAndUnlock(s Snapshot) []Badge {
	now := time.Now()
	newly := []Badge{}

	for _, def := range catalog {
		if _, done := b.unlocked[def.id]; done {
			continue
		}
		if !def.satisfied(s) {
			continue
		}

		b.unlocked[def.id] = now
		newly = append(newly, b.render(def))
	}

	if len(newly) > 0 {
		b.persist()
	}

	return newly
}

// All tüm kataloğu katalog sırasıyla, açılma durumu işlenmiş halde döner.
func (b *Badges) All() []Badge {
	out := make([]Badge, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, b.render(def))
	}
	return out
}

func (b *Badges) UnlockedCount() int {
	return len(b.unlocked)
}

func (b *Badges) render(def badgeDef) Badge {
	badge := Badge{
		ID:          def.id,
		Name:        def.name,
		Description: def.description,
		Icon:        def.icon,
	}

	if at, ok := b.unlocked[def.id]; ok {
		badge.Unlocked = true
		t := at
		badge.UnlockedAt = &t
	}

	return badge
}

func (b *Badges) persist() {
	if err := b.repo.Save(keyBadges, b.unlocked); err != nil {
		log.Printf("Rozet kaydı kaydedilemedi: %v", err)
	}
}
