package httpapi

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// SessionHeader carries the conversation session id in both directions.
const SessionHeader = "X-Session-ID"

// reSessionID matches ids accepted from clients.
var reSessionID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

type sessionKey struct{}

// withSession resolves the caller's session id, generating one when the
// header is missing or unusable, and echoes it in the response.
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SanitizeSessionID(r.Header.Get(SessionHeader))
		if session == "" {
			session = uuid.NewString()
		}
		w.Header().Set(SessionHeader, session)
		ctx := context.WithValue(r.Context(), sessionKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session id set by the session middleware.
func SessionFromContext(ctx context.Context) string {
	session, _ := ctx.Value(sessionKey{}).(string)
	return session
}

// SanitizeSessionID returns the trimmed id when it is 1 to 128 letters,
// digits, '-', '_' or '.', and "" otherwise.
func SanitizeSessionID(id string) string {
	id = strings.TrimSpace(id)
	if !reSessionID.MatchString(id) {
		return ""
	}
	return id
}
