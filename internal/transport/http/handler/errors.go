package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-book-api/internal/repo"
	resp "go-book-api/internal/transport/http/response"
)

// writeStorageError 把存储层错误映射到 HTTP 状态：
// 唯一约束 → 409，外键 → 400，其余一律 500 且不透出细节。
func writeStorageError(c *gin.Context, err error) {
	switch {
	case repo.IsDupKey(err):
		c.JSON(http.StatusConflict, resp.Message("unique constraint violation"))
	case repo.IsFKViolation(err):
		c.JSON(http.StatusBadRequest, resp.Message("invalid reference"))
	default:
		_ = c.Error(err) // 细节进访问日志
		c.JSON(http.StatusInternalServerError, resp.Message("internal server error"))
	}
}
