package authenticator

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type TokenEngine interface {
	Generate(sub string, expiration time.Duration) (string, error)
	Verify(token string) (string, error)
}

type jwtTokenEngine struct {
	secret  string
	counter int64
	lock    sync.Mutex
}

func NewTokenEngine(secret string) TokenEngine {
	return &jwtTokenEngine{
		secret:  secret,
		counter: 0,
		lock:    sync.Mutex{},
	}
}

func (e *jwtTokenEngine) Generate(sub string, expiration time.Duration) (string, error) {
	e.lock.Lock()
	e.counter++
	counter := e.counter
	e.lock.Unlock()

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		ID:        strconv.Itoa(int(counter)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Subject:   sub,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(e.secret))
}

// Verify checks the token signature and expiration, then returns the
// subject (the user id).
func (e *jwtTokenEngine) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(
		token, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(e.secret), nil
		},
	)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}
