package middlewares

import (
	"context"
	"net/http"
	"strings"

	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/exceptions"
	"serenemind-service/internal/pkg/utils"
)

// AdminAuth guards the dashboard endpoints with a bearer token issued by the
// admin login.
func (m *Middlewares) AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get(constvars.HeaderAuthorization)
		if authorization == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authorization, "Bearer ")
		if tokenString == authorization {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		subject, err := m.JWTManager.VerifyToken(tokenString)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_SUB_KEY, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
