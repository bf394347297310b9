package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip stores a pending upload and returns the cookie the browser would
// send back
func roundTrip(t *testing.T, store *SessionStore, path string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, store.SetPendingUpload(w, httptest.NewRequest(http.MethodPost, "/upload", nil), path))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func withCookie(c *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/build-resume", nil)
	if c != nil {
		req.AddCookie(c)
	}
	return req
}

func TestSessionStore_TakePendingUpload(t *testing.T) {
	store, err := NewSessionStore("secret")
	require.NoError(t, err)
	cookie := roundTrip(t, store, "uploads/cv.pdf")

	w := httptest.NewRecorder()
	path, ok, err := store.TakePendingUpload(w, withCookie(cookie))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "uploads/cv.pdf", path)

	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)

	path, ok, err = store.TakePendingUpload(httptest.NewRecorder(), withCookie(cleared[0]))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestSessionStore_KeepsSessionID(t *testing.T) {
	store, err := NewSessionStore("secret")
	require.NoError(t, err)
	cookie := roundTrip(t, store, "uploads/a.pdf")
	id := store.load(withCookie(cookie)).ID
	require.NotEmpty(t, id)

	w := httptest.NewRecorder()
	require.NoError(t, store.SetPendingUpload(w, withCookie(cookie), "uploads/b.pdf"))

	claims := store.load(withCookie(w.Result().Cookies()[0]))
	assert.Equal(t, id, claims.ID)
	assert.Equal(t, "uploads/b.pdf", claims.PendingUpload)
}

func TestSessionStore_RejectsUntrustedCookies(t *testing.T) {
	store, err := NewSessionStore("secret")
	require.NoError(t, err)
	other, err := NewSessionStore("another-secret")
	require.NoError(t, err)

	valid := roundTrip(t, store, "uploads/cv.pdf")
	expiredStore := &SessionStore{secret: []byte("secret"), now: func() time.Time { return time.Now().Add(-48 * time.Hour) }}

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"garbage", &http.Cookie{Name: sessionCookieName, Value: "not-a-token"}},
		{"tampered", &http.Cookie{Name: sessionCookieName, Value: valid.Value + "x"}},
		{"other secret", roundTrip(t, other, "uploads/cv.pdf")},
		{"expired", roundTrip(t, expiredStore, "uploads/cv.pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok, err := store.TakePendingUpload(httptest.NewRecorder(), withCookie(tt.cookie))
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, path)
		})
	}
}

func TestSessionStore_RandomSecret(t *testing.T) {
	a, err := NewSessionStore("")
	require.NoError(t, err)
	b, err := NewSessionStore("")
	require.NoError(t, err)

	assert.Len(t, a.secret, secretSize)
	assert.NotEqual(t, a.secret, b.secret)

	// A cookie from one process is not honored by another
	cookie := roundTrip(t, a, "uploads/cv.pdf")
	_, ok, err := b.TakePendingUpload(httptest.NewRecorder(), withCookie(cookie))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_SetPendingUploadRequiresPath(t *testing.T) {
	store, err := NewSessionStore("secret")
	require.NoError(t, err)

	err = store.SetPendingUpload(httptest.NewRecorder(), withCookie(nil), "")
	assert.Error(t, err)
}
