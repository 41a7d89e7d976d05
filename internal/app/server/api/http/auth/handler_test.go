package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	mwauth "syncboard/internal/app/server/api/http/middleware/auth"
	"syncboard/internal/domain/audit"
	"syncboard/internal/domain/identity"
	"syncboard/internal/domain/token"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) Authenticate(ctx context.Context, username, password string) (identity.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(identity.User), args.Error(1)
}

type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) Issue(username string, role identity.Role, name string) (string, error) {
	args := m.Called(username, role, name)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) Verify(raw string) (*token.Claims, error) {
	args := m.Called(raw)
	if claims := args.Get(0); claims != nil {
		return claims.(*token.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAudits struct {
	mock.Mock
}

func (m *MockAudits) Insert(ctx context.Context, rec audit.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func newHandler(identitySvc identity.Servicer, tokens token.Servicer, audits audit.Repository) *Handler {
	return NewHandler(identitySvc, tokens, audits, time.Hour, slog.Default(), huma.Middlewares{})
}

func TestHandler_login_Success(t *testing.T) {
	// Arrange
	identitySvc := new(MockIdentity)
	tokens := new(MockTokens)
	audits := new(MockAudits)
	handler := newHandler(identitySvc, tokens, audits)
	ctx := context.Background()

	user := identity.User{Username: "admin", Role: identity.RoleAdmin, Name: "Admin User"}
	identitySvc.On("Authenticate", ctx, "admin", "password").Return(user, nil)
	tokens.On("Issue", "admin", identity.RoleAdmin, "Admin User").Return("signed-token", nil)
	audits.On("Insert", ctx, mock.MatchedBy(func(rec audit.Record) bool {
		return rec.Username == "admin" && rec.Action == audit.ActionLogin
	})).Return(nil)

	input := &loginInput{}
	input.Body.Username = "admin"
	input.Body.Password = "password"

	// Act
	output, err := handler.login(ctx, input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, output.Status)
	assert.Equal(t, "signed-token", output.Body.Token)
	assert.Equal(t, "admin", output.Body.Username)
	assert.Equal(t, "admin", output.Body.Role)
	assert.Empty(t, output.Body.Error)

	require.Len(t, output.SetCookie, 1)
	cookie := output.SetCookie[0]
	assert.Equal(t, mwauth.CookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)

	identitySvc.AssertExpectations(t)
	tokens.AssertExpectations(t)
	audits.AssertExpectations(t)
}

func TestHandler_login_InvalidCredentials(t *testing.T) {
	// Arrange
	identitySvc := new(MockIdentity)
	tokens := new(MockTokens)
	audits := new(MockAudits)
	handler := newHandler(identitySvc, tokens, audits)
	ctx := context.Background()

	identitySvc.On("Authenticate", ctx, "admin", "wrong").
		Return(identity.User{}, identity.ErrInvalidCredentials)

	input := &loginInput{}
	input.Body.Username = "admin"
	input.Body.Password = "wrong"

	// Act
	output, err := handler.login(ctx, input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, output.Status)
	assert.Equal(t, "Invalid credentials", output.Body.Error)
	assert.Empty(t, output.Body.Token)
	assert.Empty(t, output.SetCookie)

	tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
	audits.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestHandler_login_AuditFailureDoesNotBlockLogin(t *testing.T) {
	// Arrange
	identitySvc := new(MockIdentity)
	tokens := new(MockTokens)
	audits := new(MockAudits)
	handler := newHandler(identitySvc, tokens, audits)
	ctx := context.Background()

	user := identity.User{Username: "admin", Role: identity.RoleAdmin, Name: "Admin User"}
	identitySvc.On("Authenticate", ctx, "admin", "password").Return(user, nil)
	tokens.On("Issue", "admin", identity.RoleAdmin, "Admin User").Return("signed-token", nil)
	audits.On("Insert", ctx, mock.Anything).Return(assert.AnError)

	input := &loginInput{}
	input.Body.Username = "admin"
	input.Body.Password = "password"

	// Act
	output, err := handler.login(ctx, input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, output.Status)
	assert.Equal(t, "signed-token", output.Body.Token)
}

func TestHandler_logout(t *testing.T) {
	// Arrange
	handler := newHandler(new(MockIdentity), new(MockTokens), new(MockAudits))

	// Act
	output, err := handler.logout(context.Background(), &logoutInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	require.Len(t, output.SetCookie, 1)
	assert.Equal(t, mwauth.CookieName, output.SetCookie[0].Name)
	assert.Equal(t, -1, output.SetCookie[0].MaxAge)
	assert.Empty(t, output.SetCookie[0].Value)
}
