package progress

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carryCookies(t *testing.T, from *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range from.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))

	r1 := httptest.NewRequest("POST", "/", nil)
	w1 := httptest.NewRecorder()
	repo := NewSessionRepository(store, r1, w1)

	require.NoError(t, repo.Save(keyEco, EcoStats{WalksCompleted: 2, KmTraveled: 9, CO2SavedKg: 1.08}))

	// Çerez sonraki isteğe taşınır: defter cihazda yaşar
	r2 := carryCookies(t, w1)
	w2 := httptest.NewRecorder()
	repo2 := NewSessionRepository(store, r2, w2)

	var stats EcoStats
	found, err := repo2.Load(keyEco, &stats)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, stats.WalksCompleted)
	assert.InDelta(t, 1.08, stats.CO2SavedKg, 1e-9)
}

func TestSessionRepositoryLoadMissingKey(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))

	r := httptest.NewRequest("GET", "/", nil)
	repo := NewSessionRepository(store, r, httptest.NewRecorder())

	var stats EcoStats
	found, err := repo.Load(keyEco, &stats)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, EcoStats{}, stats)
}

func TestSessionRepositoryCorruptValueReadsAsMissing(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))

	r := httptest.NewRequest("GET", "/", nil)
	repo := NewSessionRepository(store, r, httptest.NewRecorder())
	repo.session.Values[keyEco] = "{eski sürümden bozuk kayıt"

	var stats EcoStats
	found, err := repo.Load(keyEco, &stats)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionRepositoryIsIndependentOfAuthSession(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	repo := NewSessionRepository(store, r, w)
	require.NoError(t, repo.Save(keyFavorites, []FavoriteEntry{}))

	// Defter kendi çerezinde durur; oturum çerezi "session" ile karışmaz
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	for _, c := range cookies {
		assert.Equal(t, SessionName, c.Name)
	}
}
