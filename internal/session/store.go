package session

import (
	"context"
	"time"
)

// DefaultTTL bounds how long an OAuth session stays valid. The session
// only needs to survive the provider redirect and the frontend's
// login/success exchange.
const DefaultTTL = 100 * time.Minute

// Session associates a cookie-presented id with an authenticated user.
// It intentionally stores only an identity pointer, not auth state.
type Session struct {
	SessionID string    // unique session identifier
	UserID    string    // references users.id
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) when the session does not exist.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
