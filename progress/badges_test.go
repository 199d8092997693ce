package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeIDs(badges []Badge) []string {
	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, b.ID)
	}
	return ids
}

func intPtr(n int) *int { return &n }

func TestCheckAndUnlockIsIdempotent(t *testing.T) {
	b := NewBadges(newMemRepo())
	snap := Snapshot{WalksCompleted: 1, CO2SavedKg: 0.48}

	first := b.CheckAndUnlock(snap)
	require.Equal(t, []string{"first-walk"}, badgeIDs(first))

	second := b.CheckAndUnlock(snap)
	assert.Empty(t, second)
}

func TestFirstWalkScenario(t *testing.T) {
	// Sıfırdan başlayan defter: ilk yürüyüş tam olarak first-walk açar
	e := NewEcoImpact(newMemRepo())
	b := NewBadges(newMemRepo())

	stats, err := e.AddWalk(4.0)
	require.NoError(t, err)

	newly := b.CheckAndUnlock(Snapshot{
		WalksCompleted: stats.WalksCompleted,
		CO2SavedKg:     stats.CO2SavedKg,
		FavoritesCount: 0,
	})

	require.Len(t, newly, 1)
	assert.Equal(t, "first-walk", newly[0].ID)
	assert.True(t, newly[0].Unlocked)
	require.NotNil(t, newly[0].UnlockedAt)
	assert.False(t, newly[0].UnlockedAt.IsZero())
}

func TestWalkThresholdBoundaries(t *testing.T) {
	b := NewBadges(newMemRepo())

	assert.Empty(t, b.CheckAndUnlock(Snapshot{WalksCompleted: 0}))

	newly := b.CheckAndUnlock(Snapshot{WalksCompleted: 1})
	assert.Equal(t, []string{"first-walk"}, badgeIDs(newly))

	// 4 yürüyüş explorer için yetmez
	assert.Empty(t, b.CheckAndUnlock(Snapshot{WalksCompleted: 4}))

	newly = b.CheckAndUnlock(Snapshot{WalksCompleted: 5})
	assert.Equal(t, []string{"explorer"}, badgeIDs(newly))
}

func TestCO2ThresholdBoundary(t *testing.T) {
	b := NewBadges(newMemRepo())

	assert.Empty(t, b.CheckAndUnlock(Snapshot{CO2SavedKg: 9.999999}))

	// Tam 10.0 eşiği geçer
	newly := b.CheckAndUnlock(Snapshot{CO2SavedKg: 10.0})
	assert.Equal(t, []string{"eco-warrior"}, badgeIDs(newly))
}

func TestEcoWarriorScenario(t *testing.T) {
	// 17 km'lik yürüyüşler: her biri 2.04 kg CO₂. Eşik 10 kg,
	// 5. yürüyüşte 10.2 ile aşılır; rozet tam o çağrıda, bir kez gelir.
	e := NewEcoImpact(newMemRepo())
	b := NewBadges(newMemRepo())

	unlockedOn := 0
	for i := 1; i <= 6; i++ {
		stats, err := e.AddWalk(17.0)
		require.NoError(t, err)

		newly := b.CheckAndUnlock(Snapshot{
			WalksCompleted: stats.WalksCompleted,
			CO2SavedKg:     stats.CO2SavedKg,
		})

		for _, badge := range newly {
			if badge.ID == "eco-warrior" {
				require.Zero(t, unlockedOn, "eco-warrior birden fazla kez açıldı")
				unlockedOn = i
			}
		}
	}

	assert.Equal(t, 5, unlockedOn)
}

func TestMultipleBadgesInOneCallKeepCatalogOrder(t *testing.T) {
	b := NewBadges(newMemRepo())

	newly := b.CheckAndUnlock(Snapshot{
		WalksCompleted: 7,
		CO2SavedKg:     55,
		FavoritesCount: 6,
	})

	// Bildirim sırası deterministik: katalog sırası
	assert.Equal(t,
		[]string{"first-walk", "explorer", "eco-warrior", "green-hero", "nature-lover"},
		badgeIDs(newly))
}

func TestQuizMasterOnlyWhenScoreProvided(t *testing.T) {
	b := NewBadges(newMemRepo())

	// Skor verilmedi: quiz eşiği hiç değerlendirilmez
	assert.Empty(t, b.CheckAndUnlock(Snapshot{WalksCompleted: 0}))

	assert.Empty(t, b.CheckAndUnlock(Snapshot{QuizScore: intPtr(79)}))

	newly := b.CheckAndUnlock(Snapshot{QuizScore: intPtr(80)})
	assert.Equal(t, []string{"quiz-master"}, badgeIDs(newly))
}

func TestUnlockSurvivesReload(t *testing.T) {
	repo := newMemRepo()

	b := NewBadges(repo)
	b.CheckAndUnlock(Snapshot{WalksCompleted: 1})

	b2 := NewBadges(repo)
	assert.Empty(t, b2.CheckAndUnlock(Snapshot{WalksCompleted: 1}))
	assert.Equal(t, 1, b2.UnlockedCount())

	all := b2.All()
	require.Len(t, all, len(catalog))
	assert.Equal(t, "first-walk", all[0].ID)
	assert.True(t, all[0].Unlocked)
	require.NotNil(t, all[0].UnlockedAt)
}

func TestResetDoesNotRevokeBadges(t *testing.T) {
	ecoRepo := newMemRepo()
	badgeRepo := newMemRepo()

	e := NewEcoImpact(ecoRepo)
	b := NewBadges(badgeRepo)

	stats, _ := e.AddWalk(17.0)
	b.CheckAndUnlock(Snapshot{WalksCompleted: stats.WalksCompleted, CO2SavedKg: stats.CO2SavedKg})

	e.Reset()

	assert.Equal(t, EcoStats{}, e.Stats())
	assert.Equal(t, 1, NewBadges(badgeRepo).UnlockedCount())
}

func TestUnlockedAtSetExactlyForUnlocked(t *testing.T) {
	b := NewBadges(newMemRepo())
	b.CheckAndUnlock(Snapshot{WalksCompleted: 1})

	for _, badge := range b.All() {
		if badge.Unlocked {
			assert.NotNil(t, badge.UnlockedAt, badge.ID)
		} else {
			assert.Nil(t, badge.UnlockedAt, badge.ID)
		}
	}
}

func TestCorruptBadgeStateFallsBackToAllLocked(t *testing.T) {
	repo := newMemRepo()
	repo.data[keyBadges] = "[1,2,3"

	b := NewBadges(repo)
	assert.Equal(t, 0, b.UnlockedCount())
	for _, badge := range b.All() {
		assert.False(t, badge.Unlocked)
	}
}
