package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	resp "go-book-api/internal/transport/http/response"
)

const msgTooMany = "too many requests, please try again later"

// RateLimitPerIP 每 IP 令牌桶（无 redis 时的本地兜底）
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		lim, ok := buckets[ip]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			buckets[ip] = lim
		}
		mu.Unlock()
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, resp.Message(msgTooMany))
	}
}

// RedisWindow 固定窗口每 IP 计数，多实例间共享；
// skipSuccessful 时成功请求（<400）回退计数，只统计失败的尝试。
func RedisWindow(rdb *redis.Client, name string, max int, window time.Duration, skipSuccessful bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		slot := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%s:%d", name, c.ClientIP(), slot)

		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// redis 不可用时放行，限流不应拖垮正常请求
			c.Next()
			return
		}
		if n == 1 {
			rdb.Expire(ctx, key, window)
		}
		if n > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp.Message(msgTooMany))
			return
		}
		c.Next()
		if skipSuccessful && c.Writer.Status() < http.StatusBadRequest {
			rdb.Decr(ctx, key)
		}
	}
}
