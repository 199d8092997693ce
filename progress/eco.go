// progress/eco.go
package progress

import (
	"errors"
	"log"
)

const (
	// Ortalama araba yolculuğunun yerine yürüyüş: km başına 0.12 kg CO₂ tasarrufu
	co2PerKm = 0.12
	// Bir ağaç yılda yaklaşık 20 kg CO₂ emer
	co2PerTreeYear = 20.0
)

var ErrNegativeDistance = errors.New("mesafe negatif olamaz")

// EcoStats yalnızca kaynak alanları tutar; ağaç eşdeğeri her okumada
// formülden hesaplanır, ayrıca saklanmaz.
type EcoStats struct {
	WalksCompleted int     `json:"walks_completed"`
	KmTraveled     float64 `json:"km_traveled"`
	CO2SavedKg     float64 `json:"co2_saved_kg"`
}

func (s EcoStats) TreesEquivalent() float64 {
	return s.CO2SavedKg / co2PerTreeYear
}

type EcoImpact struct {
	repo  Repository
	stats EcoStats
}

func NewEcoImpact(repo Repository) *EcoImpact {
	e := &EcoImpact{repo: repo}
	if _, err := repo.Load(keyEco, &e.stats); err != nil {
		log.Printf("Eko-etki defteri yüklenemedi: %v", err)
		e.stats = EcoStats{}
	}
	return e
}

// AddWalk tamamlanan bir yürüyüşü işler: sayaç bir artar, mesafe ve
// CO₂ tasarrufu birikir. Negatif mesafe reddedilir.
func (e *EcoImpact) AddWalk(km float64) (EcoStats, error) {
	if km < 0 {
		return e.stats, ErrNegativeDistance
	}

	e.stats.WalksCompleted++
	e.stats.KmTraveled += km
	e.stats.CO2SavedKg += km * co2PerKm
	e.persist()

	return e.stats, nil
}

// Reset tüm sayaçları sıfırlar. Rozetlere dokunmaz.
func (e *EcoImpact) Reset() {
	e.stats = EcoStats{}
	e.persist()
}

func (e *EcoImpact) Stats() EcoStats {
	return e.stats
}

func (e *EcoImpact) persist() {
	if err := e.repo.Save(keyEco, e.stats); err != nil {
		log.Printf("Eko-etki defteri kaydedilemedi: %v", err)
	}
}
