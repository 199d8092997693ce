package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesRoundTrip(t *testing.T) {
	f := NewFavorites(newMemRepo())

	f.Add("w1", KindWalk, "Göl Kenarı Yürüyüşü")
	assert.True(t, f.IsFavorite("w1", KindWalk))

	f.Remove("w1", KindWalk)
	assert.False(t, f.IsFavorite("w1", KindWalk))
	assert.Equal(t, 0, f.Count())
}

func TestFavoritesDedup(t *testing.T) {
	repo := newMemRepo()
	f := NewFavorites(repo)

	f.Add("w1", KindWalk, "Göl Kenarı Yürüyüşü")
	f.Add("w1", KindWalk, "Göl Kenarı Yürüyüşü")

	assert.Equal(t, 1, f.Count())
	// İkinci ekleme no-op: tekrar kayıt da yazılmaz
	assert.Equal(t, 1, repo.saves)
}

func TestFavoritesSameIDDifferentKind(t *testing.T) {
	f := NewFavorites(newMemRepo())

	// İçerik türleri arasında id'ler benzersiz değildir; (id, kind) çifti ayırt eder
	f.Add("7", KindWalk, "Orman Rotası")
	f.Add("7", KindGarden, "Mahalle Bostanı")

	assert.Equal(t, 2, f.Count())
	assert.True(t, f.IsFavorite("7", KindWalk))
	assert.True(t, f.IsFavorite("7", KindGarden))

	f.Remove("7", KindWalk)
	assert.False(t, f.IsFavorite("7", KindWalk))
	assert.True(t, f.IsFavorite("7", KindGarden))
}

func TestFavoritesRemoveMissingIsNoop(t *testing.T) {
	repo := newMemRepo()
	f := NewFavorites(repo)

	f.Remove("yok", KindEvent)

	assert.Equal(t, 0, f.Count())
	assert.Equal(t, 0, repo.saves)
}

func TestFavoritesPersistAcrossLoads(t *testing.T) {
	repo := newMemRepo()

	f := NewFavorites(repo)
	f.Add("e3", KindEvent, "Bahar Festivali")
	f.Add("a1", KindAssociation, "Kuş Gözlem Derneği")

	// Yeni istek: aynı depodan tekrar yükle
	f2 := NewFavorites(repo)
	require.Equal(t, 2, f2.Count())
	assert.True(t, f2.IsFavorite("e3", KindEvent))

	entries := f2.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Bahar Festivali", entries[0].Label)
	assert.False(t, entries[0].AddedAt.IsZero())
}

func TestFavoritesCorruptStateFallsBackToEmpty(t *testing.T) {
	repo := newMemRepo()
	repo.data[keyFavorites] = "{bozuk json"

	f := NewFavorites(repo)
	assert.Equal(t, 0, f.Count())
}

func TestFavoritesSaveFailureDegradesToMemory(t *testing.T) {
	repo := newMemRepo()
	repo.saveErr = errQuota

	f := NewFavorites(repo)
	f.Add("w2", KindWalk, "Dere Boyu")

	// Kayıt başarısız ama oturum içi durum ayakta
	assert.True(t, f.IsFavorite("w2", KindWalk))
}

func TestFavoritesByKind(t *testing.T) {
	f := NewFavorites(newMemRepo())
	f.Add("w1", KindWalk, "Orman Rotası")
	f.Add("w2", KindWalk, "Dere Boyu")
	f.Add("g1", KindGarden, "Mahalle Bostanı")

	byKind := f.ByKind()
	assert.Len(t, byKind[KindWalk], 2)
	assert.Len(t, byKind[KindGarden], 1)
	assert.Empty(t, byKind[KindEvent])
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind("walk"))
	assert.True(t, ValidKind("event"))
	assert.True(t, ValidKind("garden"))
	assert.True(t, ValidKind("association"))
	assert.False(t, ValidKind("market"))
	assert.False(t, ValidKind(""))
}
