package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/rayan25nov/Blog-task-backend/internal/auth"
	"github.com/rayan25nov/Blog-task-backend/internal/httpx"
)

// TokenVerifier checks a raw token and returns its claims.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// RequireAuth is middleware that validates the request token and injects
// the decoded claims into the request context. The token is looked up in
// the jwt cookie, then a "token" body field, then the Authorization header.
func RequireAuth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw == "" {
				httpx.Fail(w, http.StatusUnauthorized, "No token provided", nil)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				httpx.Fail(w, http.StatusUnauthorized, "Invalid token", err)
				return
			}

			ctx := auth.WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(auth.TokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if t := tokenFromBody(r); t != "" {
		return t
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// tokenFromBody reads a "token" field from a JSON, urlencoded or multipart
// body. A JSON body is put back so the handler can decode it again.
func tokenFromBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		data, err := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(data))
		if err != nil || len(data) == 0 {
			return ""
		}
		var body struct {
			Token string `json:"token"`
		}
		if json.Unmarshal(data, &body) != nil {
			return ""
		}
		return body.Token
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return r.PostFormValue("token")
	}
	return ""
}
