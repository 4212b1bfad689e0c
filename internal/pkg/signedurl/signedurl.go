// Package signedurl issues the short-lived grants that make direct
// file upload and download URLs work without sessions: each grant is a
// compact token scoped to one storage key and one method.
package signedurl

import (
	"errors"
	"net/url"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	MethodPut = "PUT"
	MethodGet = "GET"
)

var ErrInvalidGrant = errors.New("invalid or expired url grant")

type grantClaims struct {
	Key    string `json:"key"`
	Method string `json:"method"`

	jwtlib.RegisteredClaims
}

type Signer struct {
	secret []byte
	now    func() time.Time
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret), now: time.Now}
}

// Sign issues a grant for method on key, valid for ttl.
func (s *Signer) Sign(key, method string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 || key == "" || ttl <= 0 {
		return "", ErrInvalidGrant
	}
	if method != MethodPut && method != MethodGet {
		return "", ErrInvalidGrant
	}

	now := s.now().UTC()
	c := grantClaims{
		Key:    key,
		Method: method,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify checks a grant against the storage key and method of the
// incoming request.
func (s *Signer) Verify(token, key, method string) error {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c grantClaims
	tok, err := p.ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return ErrInvalidGrant
	}
	if c.Key != key || c.Method != method {
		return ErrInvalidGrant
	}
	return nil
}

// BuildURL renders the externally visible presigned URL for key. Keys
// are generated from sanitized filenames, so the path needs no escaping
// beyond the grant itself.
func BuildURL(baseURL, key, token string) string {
	return baseURL + "/files/" + key + "?grant=" + url.QueryEscape(token)
}
