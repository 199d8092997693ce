package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryLevelAndProgress(t *testing.T) {
	cases := []struct {
		walks    int
		level    int
		progress float64
	}{
		{0, 1, 0},
		{1, 1, 0.2},
		{4, 1, 0.8},
		{5, 2, 0},
		{7, 2, 0.4},
		{23, 5, 0.6},
	}

	for _, c := range cases {
		s := BuildSummary(EcoStats{WalksCompleted: c.walks}, nil, nil)
		assert.Equal(t, c.level, s.Level, "walks=%d", c.walks)
		assert.InDelta(t, c.progress, s.ProgressToNextLevel, 1e-9, "walks=%d", c.walks)
	}
}

func TestSummaryPartitionsBadges(t *testing.T) {
	b := NewBadges(newMemRepo())
	b.CheckAndUnlock(Snapshot{WalksCompleted: 1, CO2SavedKg: 12})

	s := BuildSummary(EcoStats{}, b.All(), nil)

	assert.Equal(t, []string{"first-walk", "eco-warrior"}, badgeIDs(s.UnlockedBadges))
	assert.Equal(t, []string{"explorer", "green-hero", "nature-lover", "quiz-master"}, badgeIDs(s.LockedBadges))
}

func TestSummaryCarriesDerivedTrees(t *testing.T) {
	stats := EcoStats{WalksCompleted: 2, KmTraveled: 25, CO2SavedKg: 3.0}

	s := BuildSummary(stats, nil, nil)

	require.Equal(t, stats, s.Stats)
	assert.InDelta(t, 0.15, s.TreesEquivalent, 1e-9)
}

func TestSummaryFavoritesByKind(t *testing.T) {
	f := NewFavorites(newMemRepo())
	f.Add("w1", KindWalk, "Orman Rotası")
	f.Add("g1", KindGarden, "Mahalle Bostanı")

	s := BuildSummary(EcoStats{}, nil, f.ByKind())

	assert.Len(t, s.Favorites[KindWalk], 1)
	assert.Len(t, s.Favorites[KindGarden], 1)
}
