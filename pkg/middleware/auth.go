package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/commerce-admin-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rotas acessíveis sem token: autenticação, saúde e o fluxo público da loja
func isPublicRoute(r *http.Request) bool {
	switch r.URL.Path {
	case "/v1/login", "/v1/register", "/healthcheck", "/v1/webhook/stripe":
		return true
	}

	// O checkout é chamado pela vitrine, sem sessão do painel
	if strings.HasPrefix(r.URL.Path, "/v1/stores/") && strings.HasSuffix(r.URL.Path, "/checkout") {
		return true
	}

	// Preflight CORS nunca carrega Authorization
	return r.Method == http.MethodOptions
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
