package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcoFirstWalk(t *testing.T) {
	e := NewEcoImpact(newMemRepo())

	stats, err := e.AddWalk(4.0)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.WalksCompleted)
	assert.InDelta(t, 4.0, stats.KmTraveled, 1e-9)
	assert.InDelta(t, 0.48, stats.CO2SavedKg, 1e-9)
	assert.InDelta(t, 0.024, stats.TreesEquivalent(), 1e-9)
}

func TestEcoAccumulationIsMonotonic(t *testing.T) {
	e := NewEcoImpact(newMemRepo())

	distances := []float64{4.0, 0, 2.5, 10.0, 0.3}
	var sum float64
	for _, d := range distances {
		_, err := e.AddWalk(d)
		require.NoError(t, err)
		sum += d
	}

	stats := e.Stats()
	assert.Equal(t, len(distances), stats.WalksCompleted)
	assert.InDelta(t, sum, stats.KmTraveled, 1e-9)
	assert.InDelta(t, 0.12*sum, stats.CO2SavedKg, 1e-9)
}

func TestEcoTreesAlwaysDerivedFromCO2(t *testing.T) {
	e := NewEcoImpact(newMemRepo())

	for _, d := range []float64{1.2, 7.7, 33.3} {
		stats, err := e.AddWalk(d)
		require.NoError(t, err)
		assert.InDelta(t, stats.CO2SavedKg/20, stats.TreesEquivalent(), 1e-12)
	}
}

func TestEcoNegativeDistanceRejected(t *testing.T) {
	e := NewEcoImpact(newMemRepo())
	e.AddWalk(3.0)

	_, err := e.AddWalk(-1.0)
	assert.ErrorIs(t, err, ErrNegativeDistance)

	// Reddedilen çağrı hiçbir sayacı değiştirmez
	stats := e.Stats()
	assert.Equal(t, 1, stats.WalksCompleted)
	assert.InDelta(t, 3.0, stats.KmTraveled, 1e-9)
}

func TestEcoReset(t *testing.T) {
	repo := newMemRepo()
	e := NewEcoImpact(repo)
	e.AddWalk(12.0)
	e.AddWalk(8.0)

	e.Reset()

	stats := e.Stats()
	assert.Equal(t, EcoStats{}, stats)
	assert.InDelta(t, 0, stats.TreesEquivalent(), 1e-12)

	// Sıfırlama kalıcıdır
	e2 := NewEcoImpact(repo)
	assert.Equal(t, EcoStats{}, e2.Stats())
}

func TestEcoPersistAcrossLoads(t *testing.T) {
	repo := newMemRepo()

	e := NewEcoImpact(repo)
	e.AddWalk(5.5)

	e2 := NewEcoImpact(repo)
	stats := e2.Stats()
	assert.Equal(t, 1, stats.WalksCompleted)
	assert.InDelta(t, 5.5, stats.KmTraveled, 1e-9)
	assert.InDelta(t, 0.66, stats.CO2SavedKg, 1e-9)
}

func TestEcoCorruptStateFallsBackToZero(t *testing.T) {
	repo := newMemRepo()
	repo.data[keyEco] = `"sayı değil"`

	e := NewEcoImpact(repo)
	assert.Equal(t, EcoStats{}, e.Stats())
}
