package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/hunterprice/internal/api/shared"
	"github.com/phrazzld/hunterprice/internal/platform/logger"
	"github.com/phrazzld/hunterprice/internal/service/auth"
)

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	if tokenService == nil {
		panic("tokenService cannot be nil")
	}
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate verifies the token in the Authorization header, which must
// have the form "<scheme> <token>". A missing or malformed header is a 400;
// a token that fails verification is a 401. The token subject is added to
// the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ParseAuthorizationHeader(r.Header.Get("Authorization"))
		if errors.Is(err, auth.ErrMissingToken) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.CodeBadRequest,
				"Authorization header is required", err)
			return
		}
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.CodeBadRequest,
				"Authorization header must be '<scheme> <token>'", err)
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				w.Header().Set("WWW-Authenticate", "Bearer")
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, shared.CodeUnauthorized,
					"Invalid token", err, shared.WithElevatedLogLevel())
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.CodeInternal,
				"Authentication error", err)
			return
		}

		ctx := shared.WithSubject(r.Context(), claims.Subject)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With(slog.String("subject", claims.Subject)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
