package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/utils"
)

// Sentinel errors for malformed Authorization headers.
var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
	ErrInvalidToken             = errors.New("token is expired or invalid")
)

// Auth enforces bearer-token authentication. On success the caller's
// identity, taken from the validated claims, is stored in the request
// context under [utils.CallerCtxKey] for downstream handlers. Requests
// without a valid token are rejected with 401.
func Auth(tokens *utils.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Err(ErrEmptyAuthorizationHeader).Send()
				http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
				return
			}

			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Err(err).Send()
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(tokenString)
			if err != nil {
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			callerID, err := claims.CallerID()
			if err != nil {
				log.Err(err).Msg("token carries no usable userId claim")
				http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), utils.CallerCtxKey, utils.CallerIdentity{UserID: callerID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
