package sessions

import (
	"context"
	"errors"
	"time"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

// TTL is how long a session lives in the backing store.
const TTL = 24 * time.Hour

// ErrNoSession is returned when a token resolves to no live session.
var ErrNoSession = errors.New("sessions: no such session")

// Manager holds server-side session state keyed by an opaque token. The
// identity field carries the signed-in user's email; a session with an empty
// identity is anonymous. Logging out clears the identity only, so the
// session itself (and any pending flash message) survives.
type Manager interface {
	// Start creates a fresh anonymous session and returns its token.
	Start(ctx context.Context) (string, error)

	// SetIdentity binds an email to the session.
	SetIdentity(ctx context.Context, token, email string) error

	// Identity returns the email bound to the session, or "" when the
	// session is anonymous.
	Identity(ctx context.Context, token string) (string, error)

	// ClearIdentity makes the session anonymous again. Clearing a session
	// that has no identity is not an error.
	ClearIdentity(ctx context.Context, token string) error

	// SetFlash stores a one-shot message on the session.
	SetFlash(ctx context.Context, token, msg string) error

	// PopFlash returns the pending flash message, if any, and clears it.
	PopFlash(ctx context.Context, token string) (string, error)
}
