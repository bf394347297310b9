package server

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "resume_session"
	sessionLifetime   = 24 * time.Hour
	secretSize        = 32
)

// sessionClaims is the state carried by the session cookie.
type sessionClaims struct {
	// PendingUpload is the saved path of the last upload not yet turned into
	// a resume form
	PendingUpload string `json:"pending_upload,omitempty"`
	jwt.RegisteredClaims
}

// SessionStore keeps per-browser state in an HMAC-signed cookie.
type SessionStore struct {
	secret []byte
	now    func() time.Time
}

// NewSessionStore creates a store signing with secret. An empty secret is
// replaced by a random one, which invalidates cookies on restart.
func NewSessionStore(secret string) (*SessionStore, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, secretSize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}
	return &SessionStore{secret: key, now: time.Now}, nil
}

// load returns the session attached to r. A missing, expired or tampered
// cookie yields a fresh session.
func (s *SessionStore) load(r *http.Request) *sessionClaims {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return s.fresh()
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.ID == "" {
		return s.fresh()
	}
	return claims
}

func (s *SessionStore) fresh() *sessionClaims {
	return &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: uuid.NewString()},
	}
}

// save signs claims and sets them as the session cookie on w.
func (s *SessionStore) save(w http.ResponseWriter, claims *sessionClaims) error {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(sessionLifetime))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(sessionLifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SetPendingUpload records path as the session's pending upload.
func (s *SessionStore) SetPendingUpload(w http.ResponseWriter, r *http.Request, path string) error {
	if path == "" {
		return errors.New("pending upload path is empty")
	}
	claims := s.load(r)
	claims.PendingUpload = path
	return s.save(w, claims)
}

// TakePendingUpload returns the session's pending upload and clears it. The
// second return value is false when there is nothing pending.
func (s *SessionStore) TakePendingUpload(w http.ResponseWriter, r *http.Request) (string, bool, error) {
	claims := s.load(r)
	path := claims.PendingUpload
	if path == "" {
		return "", false, nil
	}

	claims.PendingUpload = ""
	if err := s.save(w, claims); err != nil {
		return "", false, err
	}
	return path, true, nil
}
