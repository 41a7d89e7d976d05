package auth

import (
	"context"
	"net/http"
	"time"

	"syncboard/internal/app/server/api/http/middleware/auth"
	"syncboard/internal/domain/audit"
	"syncboard/internal/domain/identity"
	"syncboard/internal/domain/token"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	identity   identity.Servicer
	tokens     token.Servicer
	audits     audit.Repository
	cookieTTL  time.Duration
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(
	identitySvc identity.Servicer,
	tokens token.Servicer,
	audits audit.Repository,
	cookieTTL time.Duration,
	log *slog.Logger,
	middleware huma.Middlewares,
) *Handler {
	return &Handler{
		identity:   identitySvc,
		tokens:     tokens,
		audits:     audits,
		cookieTTL:  cookieTTL,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	user, err := h.identity.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return &loginOutput{
			Status: http.StatusUnauthorized,
			Body:   LoginResponse{Error: "Invalid credentials"},
		}, nil
	}

	signed, err := h.tokens.Issue(user.Username, user.Role, user.Name)
	if err != nil {
		h.log.Error("failed to issue token", "username", user.Username, "error", err)
		return &loginOutput{
			Status: http.StatusInternalServerError,
			Body:   LoginResponse{Error: "Internal server error"},
		}, nil
	}

	err = h.audits.Insert(ctx, audit.Record{
		Username:  user.Username,
		Action:    audit.ActionLogin,
		Resource:  "auth",
		Details:   "User logged in",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// The session is already established; losing one audit row is
		// logged, not surfaced.
		h.log.Error("failed to write login audit entry",
			"username", user.Username, "error", err)
	}

	return &loginOutput{
		Status: http.StatusOK,
		SetCookie: []http.Cookie{{
			Name:     auth.CookieName,
			Value:    signed,
			Path:     "/",
			MaxAge:   int(h.cookieTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}},
		Body: LoginResponse{
			Token:    signed,
			Username: user.Username,
			Role:     string(user.Role),
			Name:     user.Name,
		},
	}, nil
}

func (h *Handler) logout(_ context.Context, _ *logoutInput) (*logoutOutput, error) {
	return &logoutOutput{
		SetCookie: []http.Cookie{{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		}},
		Body: LogoutResponse{Status: "Ok"},
	}, nil
}
