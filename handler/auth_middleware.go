package handler

import (
	"context"
	"net/http"
	"portfolio-api/common"
	"portfolio-api/service"
)

type contextKey string

const UserIDKey contextKey = "userID"

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// AuthMiddleware verifies the access-token cookie and puts the user ID into
// the request context. Tokens travel in cookies, not Authorization headers,
// because the browser frontend relies on HttpOnly cookie storage.
func AuthMiddleware(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(accessTokenCookie)
			if err != nil {
				appErr := common.NewAuthenticationError("Authentication required", nil)
				appErr.Send(w)
				return
			}

			userID, err := auth.VerifyAccessToken(cookie.Value)
			if err != nil {
				appErr := common.NewAuthenticationError("Invalid or expired token", err)
				appErr.Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
