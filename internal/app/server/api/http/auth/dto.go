package auth

import "net/http"

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Username string `json:"username" minLength:"1"`
	Password string `json:"password" minLength:"1"`
}

type loginOutput struct {
	Status    int
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      LoginResponse
}

type LoginResponse struct {
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	Name     string `json:"name,omitempty"`
	Error    string `json:"error,omitempty"`
}

type logoutInput struct{}

type logoutOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      LogoutResponse
}

type LogoutResponse struct {
	Status string `json:"status"`
}
