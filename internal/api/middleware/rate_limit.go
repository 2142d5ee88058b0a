package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jungjoo0/security-checker/pkg/redis"
	"github.com/jungjoo0/security-checker/pkg/response"
)

// RateLimit Redis 카운터 기반 레이트리밋 미들웨어
// 관리자 로그인 등 무차별 대입이 우려되는 경로에 적용한다
// rdb 가 nil 이면 통과 (JWTAuth 의 블랙리스트 정책과 동일한 완화 규칙)
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// redis 오류 시 완화 통과
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "요청이 너무 잦습니다. 잠시 후 다시 시도해주세요.")
			c.Abort()
			return
		}

		c.Next()
	}
}
