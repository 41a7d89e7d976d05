package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"syncboard/internal/domain/identity"
	"syncboard/internal/domain/token"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// CookieName is where the browser flow keeps the access token. API
// clients send the same token as a Bearer header instead.
const CookieName = "access_token"

type Auth struct {
	tokens token.Servicer
	log    *slog.Logger
}

func New(tokens token.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		log:    log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const claimsKey contextKey = "claims"

// Middleware authenticates the request. The cookie wins over the
// Authorization header when both are present.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		raw := tokenFromRequest(ctx)
		if raw == "" {
			writeError(ctx, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := a.tokens.Verify(raw)
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			writeError(ctx, http.StatusUnauthorized, verifyErrorDetail(err))
			return
		}

		newCtx := context.WithValue(ctx.Context(), claimsKey, claims)
		next(huma.WithContext(ctx, newCtx))
	}
}

// RequireRole gates an already-authenticated request. It must run after
// Middleware in the chain.
func (a *Auth) RequireRole(roles ...identity.Role) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		claims, ok := GetClaims(ctx.Context())
		if !ok {
			writeError(ctx, http.StatusUnauthorized, "Not authenticated")
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				next(ctx)
				return
			}
		}

		a.log.Debug("role rejected",
			"username", claims.Subject, "role", claims.Role)
		writeError(ctx, http.StatusForbidden, "Insufficient permissions")
	}
}

// GetClaims extracts the verified claims placed by Middleware.
func GetClaims(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}

func tokenFromRequest(ctx huma.Context) string {
	if cookie, err := huma.ReadCookie(ctx, CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := ctx.Header("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[len("Bearer "):]
	}
	return ""
}

func verifyErrorDetail(err error) string {
	if errors.Is(err, token.ErrTokenExpired) {
		return "Token expired"
	}
	return "Invalid token"
}

func writeError(ctx huma.Context, status int, detail string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": detail,
	})
}
