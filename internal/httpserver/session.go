// internal/httpserver/session.go
//
// Anonymous browser sessions.
// A session is a random ID carried in an HttpOnly cookie as an HS256 JWT, so
// the server can reject forged or tampered IDs without a lookup. The signing
// key is derived from the configured secret with HKDF, keeping the raw secret
// out of the token MAC.

package httpserver

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	sessionTTL  = 180 * 24 * time.Hour
	sessionInfo = "tiles session cookie v1"
)

type sessions struct {
	key    []byte
	cookie string
	secure bool
}

func newSessions(secret, cookie string, secure bool) (*sessions, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionInfo)), key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return &sessions{key: key, cookie: cookie, secure: secure}, nil
}

// ensure returns the caller's session ID, issuing a fresh cookie when the
// request carries none or an invalid one.
func (s *sessions) ensure(w http.ResponseWriter, r *http.Request) (string, error) {
	if id, ok := s.identify(r); ok {
		return id, nil
	}
	return s.issue(w)
}

// identify extracts and verifies the session ID from the request cookie.
func (s *sessions) identify(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.cookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return "", false
	}
	id, _ := claims["sid"].(string)
	return id, id != ""
}

// issue mints a new session ID and writes its cookie.
func (s *sessions) issue(w http.ResponseWriter) (string, error) {
	id := genID()
	exp := time.Now().Add(sessionTTL)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	}).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}

	sameSite := http.SameSiteLaxMode
	if s.secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
	return id, nil
}

// clear expires the session cookie.
func (s *sessions) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		MaxAge:   -1,
	})
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
