// progress/summary.go
package progress

const walksPerLevel = 5

// Summary panel için türetilmiş salt-okunur görünümdür; kendi kalıcı
// durumu yoktur, her istekte depoların anlık görüntüsünden kurulur.
type Summary struct {
	Level               int                    `json:"level"`
	ProgressToNextLevel float64                `json:"progress_to_next_level"` // 0..1
	Stats               EcoStats               `json:"stats"`
	TreesEquivalent     float64                `json:"trees_equivalent"`
	UnlockedBadges      []Badge                `json:"unlocked_badges"`
	LockedBadges        []Badge                `json:"locked_badges"`
	Favorites           map[Kind][]FavoriteEntry `json:"favorites"`
}

func BuildSummary(stats EcoStats, badges []Badge, favorites map[Kind][]FavoriteEntry) Summary {
	s := Summary{
		Level:               stats.WalksCompleted/walksPerLevel + 1,
		ProgressToNextLevel: float64(stats.WalksCompleted%walksPerLevel) / walksPerLevel,
		Stats:               stats,
		TreesEquivalent:     stats.TreesEquivalent(),
		UnlockedBadges:      []Badge{},
		LockedBadges:        []Badge{},
		Favorites:           favorites,
	}

	for _, b := range badges {
		if b.Unlocked {
			s.UnlockedBadges = append(s.UnlockedBadges, b)
		} else {
			s.LockedBadges = append(s.LockedBadges, b)
		}
	}

	return s
}
