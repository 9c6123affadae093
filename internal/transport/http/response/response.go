package response

import "github.com/gin-gonic/gin"

// Message 统一错误/提示响应体 {message}
func Message(msg string) gin.H {
	return gin.H{"message": msg}
}

// Invalid 校验失败响应体 {message, details[]}
func Invalid(details []string) gin.H {
	return gin.H{"message": "invalid payload", "details": details}
}
