package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clearview-wipers/internal/core"

	"github.com/golang-jwt/jwt/v5"
)

type authClaimsKey struct{}

// AuthClaims holds the authenticated session extracted from the JWT.
type AuthClaims struct {
	UserID string
	Role   core.Role
}

// authFromContext returns the auth claims stored in ctx, or nil.
func authFromContext(ctx context.Context) *AuthClaims {
	v, _ := ctx.Value(authClaimsKey{}).(*AuthClaims)
	return v
}

// jwtClaims is the JWT payload struct used for signing and parsing.
type jwtClaims struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (h *Handler) parseToken(value string) (*AuthClaims, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	role := core.RoleAdmin
	if claims.Role == string(core.RoleEmployee) {
		role = core.RoleEmployee
	}
	return &AuthClaims{UserID: claims.UserID, Role: role}, nil
}

// RequireAuth is chi middleware that validates the auth_token cookie and
// injects AuthClaims into the request context. Returns 401 if the token is
// absent or invalid.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("auth_token")
		if err != nil {
			writeError(w, r, "authentication required", "UNAUTHORIZED", http.StatusUnauthorized)
			return
		}
		claims, err := h.parseToken(cookie.Value)
		if err != nil {
			writeError(w, r, "invalid or expired token", "UNAUTHORIZED", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), authClaimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates the admin-only surfaces. Employees can reach the
// dashboard and job screens only; everything else answers 403.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := authFromContext(r.Context())
		if claims == nil {
			writeError(w, r, "authentication required", "UNAUTHORIZED", http.StatusUnauthorized)
			return
		}
		if claims.Role != core.RoleAdmin {
			writeError(w, r, "admin access required", "FORBIDDEN", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// unlock handles POST /api/auth/unlock. The shop PIN opens a session; with
// a user id attached, the session takes that user's profile role instead of
// admin.
func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN    string `json:"pin"`
		UserID string `json:"userId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.PIN) != strings.TrimSpace(h.adminPIN) {
		writeError(w, r, "incorrect PIN", "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}

	role := core.RoleAdmin
	if req.UserID != "" {
		role = h.svc.RoleForUser(r.Context(), req.UserID)
	}

	claims := &jwtClaims{
		UserID: req.UserID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeError(w, r, "token generation failed", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   12 * 3600,
	})
	writeJSON(w, map[string]string{"role": string(role)})
}

// lock handles POST /api/auth/lock — clears the session cookie.
func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}

// me handles GET /api/auth/me — returns the current session's role.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	if claims == nil {
		writeError(w, r, "not authenticated", "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}
	writeJSON(w, map[string]string{
		"userId": claims.UserID,
		"role":   string(claims.Role),
	})
}
