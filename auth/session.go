// Package auth holds the process-wide player session: loaded once at startup,
// injected into whatever needs an identity, cleared on logout.
package auth

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var ErrNoSession = errors.New("auth: no session configured")

// Session is the identity used when joining tables.
type Session struct {
	PlayerID string
	Nickname string
	Token    string
}

var (
	mu      sync.RWMutex
	current *Session
)

// Load reads the session from the environment, honoring a .env file when one
// is present, and caches it as the current session.
func Load() (*Session, error) {
	_ = godotenv.Load()

	playerID := os.Getenv("HOLDUP_PLAYER_ID")
	nickname := os.Getenv("HOLDUP_NICKNAME")
	if nickname == "" {
		nickname = playerID
	}
	if playerID == "" {
		playerID = nickname
	}
	if playerID == "" {
		return nil, ErrNoSession
	}

	session := &Session{
		PlayerID: playerID,
		Nickname: nickname,
		Token:    os.Getenv("HOLDUP_TOKEN"),
	}
	Set(session)
	return session, nil
}

// Set replaces the current session.
func Set(session *Session) {
	mu.Lock()
	defer mu.Unlock()
	current = session
}

// Current returns the cached session, or nil when none is loaded.
func Current() *Session {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Clear drops the cached session on logout.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}
