package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-book-api/internal/core/auth"
	"go-book-api/internal/domain"
	resp "go-book-api/internal/transport/http/response"
)

const KeyIdentity = "identity"

// AuthJWT 提取并校验 Bearer token，把解码出的身份放进请求上下文
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Message("missing or invalid token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Message("invalid or expired token"))
			return
		}
		c.Set(KeyIdentity, domain.Identity{ID: claims.UID, Email: claims.Email, Role: claims.Role})
		c.Next()
	}
}

// Identity 取出 AuthJWT 放入的身份
func Identity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(KeyIdentity)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
