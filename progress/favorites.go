// progress/favorites.go
package progress

import (
	"log"
	"time"
)

type Kind string

const (
	KindWalk        Kind = "walk"
	KindEvent       Kind = "event"
	KindGarden      Kind = "garden"
	KindAssociation Kind = "association"
)

func ValidKind(k string) bool {
	switch Kind(k) {
	case KindWalk, KindEvent, KindGarden, KindAssociation:
		return true
	}
	return false
}

type FavoriteEntry struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Label   string    `json:"label"` // Favoriye eklendiği andaki görünen ad
	AddedAt time.Time `json:"added_at"`
}

type Favorites struct {
	repo    Repository
	entries []FavoriteEntry
}

func NewFavorites(repo Repository) *Favorites {
	f := &Favorites{repo: repo}
	if _, err := repo.Load(keyFavorites, &f.entries); err != nil {
		log.Printf("Favoriler yüklenemedi: %v", err)
		f.entries = nil
	}
	return f
}

// Add favoriyi ekler ve kaydeder. Aynı (id, kind) çifti zaten varsa hiçbir şey yapmaz.
func (f *Favorites) Add(id string, kind Kind, label string) {
	if f.IsFavorite(id, kind) {
		return
	}

	f.entries = append(f.entries, FavoriteEntry{
		ID:      id,
		Kind:    kind,
		Label:   label,
		AddedAt: time.Now(),
	})
	f.persist()
}

// Remove eşleşen tüm kayıtları çıkarır. Eşleşme yoksa hata değil, sessiz geçiş.
func (f *Favorites) Remove(id string, kind Kind) {
	kept := f.entries[:0]
	removed := false
	for _, e := range f.entries {
		if e.ID == id && e.Kind == kind {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	f.entries = kept

	if removed {
		f.persist()
	}
}

func (f *Favorites) IsFavorite(id string, kind Kind) bool {
	for _, e := range f.entries {
		if e.ID == id && e.Kind == kind {
			return true
		}
	}
	return false
}

func (f *Favorites) Entries() []FavoriteEntry {
	out := make([]FavoriteEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *Favorites) Count() int {
	return len(f.entries)
}

func (f *Favorites) ByKind() map[Kind][]FavoriteEntry {
	out := map[Kind][]FavoriteEntry{}
	for _, e := range f.entries {
		out[e.Kind] = append(out[e.Kind], e)
	}
	return out
}

// Kayıt hatasında defter oturum boyunca bellekte yaşamaya devam eder;
// etkileşim çökmez, sadece loglanır.
func (f *Favorites) persist() {
	if err := f.repo.Save(keyFavorites, f.entries); err != nil {
		log.Printf("Favoriler kaydedilemedi: %v", err)
	}
}
