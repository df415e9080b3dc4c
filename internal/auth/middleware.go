package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const userCookie = "_user"

type contextKey struct{}

var ErrNoToken = errors.New("no session token")

type AuthenticateMiddleware struct {
	Secret []byte
}

func (m *AuthenticateMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := VerifyUser(r, m.Secret)
		if err != nil {
			logger.Debugf("Rejecting %s %s: %s", r.Method, r.URL.Path, err.Error())
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, user)))
	})
}

// VerifyUser reads the session token from the Authorization header, falling
// back to the session cookie.
func VerifyUser(r *http.Request, secret []byte) (User, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return User{}, ErrNoToken
		}
		return GetUser(token, secret)
	}
	cookie, err := r.Cookie(userCookie)
	if err != nil {
		return User{}, ErrNoToken
	}
	return GetUser(cookie.Value, secret)
}

func GetAuthenticatedUser(r *http.Request) (User, bool) {
	user, ok := r.Context().Value(contextKey{}).(User)
	return user, ok
}
