package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	redisClient *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{redisClient: client}
}

// Limit ограничивает частоту запросов в окне. Авторизованных считаем
// по userId, анонимных — по IP.
func (rl *RateLimiter) Limit(scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.ClientIP()
		if v, ok := c.Get("userId"); ok {
			if id, ok := v.(uuid.UUID); ok {
				subject = id.String()
			}
		}

		key := fmt.Sprintf("rate_limit:%s:%s", scope, subject)

		count, err := rl.redisClient.Incr(c, key).Result()
		if err != nil {
			// Redis недоступен — пропускаем без лимита
			c.Next()
			return
		}

		// Первый запрос в окне заводит TTL
		if count == 1 {
			rl.redisClient.Expire(c, key, window)
		}

		if count > int64(limit) {
			ttl, _ := rl.redisClient.TTL(c, key).Result()

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": fmt.Sprintf("%.0f seconds", ttl.Seconds()),
			})
			return
		}
		c.Next()
	}
}
