package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/jukuhub/studyquest/pkg/utils"
)

type ContextKey string

// StudentIDKey is the request context key under which AuthMiddleware
// stores the authenticated student's id.
const StudentIDKey ContextKey = "studentID"

// AuthMiddleware rejects requests without a valid bearer token and puts
// the student id from the token claims into the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), StudentIDKey, claims.StudentID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
