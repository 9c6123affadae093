package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-book-api/internal/core/auth"
	"go-book-api/internal/domain"
)

func authTestRouter(j *auth.JWTer) (*gin.Engine, *domain.Identity) {
	gin.SetMode(gin.TestMode)
	var seen domain.Identity
	r := gin.New()
	r.GET("/protected", AuthJWT(j), func(c *gin.Context) {
		id, _ := Identity(c)
		seen = id
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthJWT_ValidToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s3cret"), Issuer: "test", TTL: time.Hour}
	r, seen := authTestRouter(j)

	tok, err := j.Issue(7, "alice@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	w := get(r, "Bearer "+tok)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), seen.ID)
	assert.Equal(t, "alice@example.com", seen.Email)
	assert.Equal(t, domain.RoleAdmin, seen.Role)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s3cret"), Issuer: "test", TTL: time.Hour}
	r, _ := authTestRouter(j)

	w := get(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing or invalid token")
}

func TestAuthJWT_MalformedScheme(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s3cret"), Issuer: "test", TTL: time.Hour}
	r, _ := authTestRouter(j)

	tok, _ := j.Issue(7, "a@b.com", domain.RoleUser)
	// 方案名大小写敏感
	for _, h := range []string{"bearer " + tok, "Token " + tok, tok} {
		w := get(r, h)
		assert.Equal(t, http.StatusUnauthorized, w.Code, h)
	}
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s3cret"), Issuer: "test", TTL: time.Hour}
	other := &auth.JWTer{Secret: []byte("wrong-secret"), Issuer: "test", TTL: time.Hour}
	r, _ := authTestRouter(j)

	tok, _ := other.Issue(7, "a@b.com", domain.RoleUser)
	w := get(r, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	// Parse 带 60s 容忍，TTL 要大幅取负才算过期
	j := &auth.JWTer{Secret: []byte("s3cret"), Issuer: "test", TTL: -2 * time.Minute}
	r, _ := authTestRouter(j)

	tok, _ := j.Issue(7, "a@b.com", domain.RoleUser)
	w := get(r, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
