package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/femnest/application/credential"
	"github.com/muhammadheryan/femnest/constant"
	utilsContext "github.com/muhammadheryan/femnest/utils/context"
	"github.com/muhammadheryan/femnest/utils/errors"
)

// AuthMiddleware returns a middleware that requires the reveal token issued by a
// successful login or signup. The question panel is only served behind it.
func AuthMiddleware(credentialApp credential.CredentialApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			sessionID, err := credentialApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithSessionID(r.Context(), sessionID)))
		})
	}
}

// isPublicPath defines which endpoints are public (no token required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/auth/") {
		return true
	}
	switch path {
	case "/personal-info", "/healthz", "/metrics":
		return true
	}
	return false
}
