package utils

import (
	rndm "math/rand"
	"net/http"

	"github.com/google/uuid"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digitRunes = []rune("0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// GenerateID returns a server-assigned record id. Clients may send their own
// ids but the persistence layer is the id authority.
func GenerateID() string {
	return uuid.NewString()
}

// --- Session Identification ---

const SessionHeader = "X-Session-ID"
const sessionCookie = "sunsmart_session"

// GetSessionID extracts the caller's session id from the request. There is
// no authentication in this portal; the session id only scopes cart and
// checkout state.
func GetSessionID(r *http.Request) string {
	if sid := r.Header.Get(SessionHeader); sid != "" {
		return sid
	}
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return ""
}

// EnsureSessionID returns the request's session id, minting one and setting
// the cookie when the caller has none yet.
func EnsureSessionID(w http.ResponseWriter, r *http.Request) string {
	if sid := GetSessionID(r); sid != "" {
		return sid
	}
	sid := GenerateRandomString(16)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
	})
	return sid
}
