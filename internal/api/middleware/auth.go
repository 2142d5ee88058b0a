package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jungjoo0/security-checker/pkg/jwt"
	"github.com/jungjoo0/security-checker/pkg/redis"
	"github.com/jungjoo0/security-checker/pkg/response"
)

// JWTAuth JWT 인증 미들웨어
// Authorization: Bearer <token> 에서 토큰을 추출해 검증하고
// 인증 주체를 컨텍스트에 주입한다. redis 가동 시 블랙리스트도 확인한다
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "로그인이 필요합니다.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 올바르지 않습니다.")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다.")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "로그아웃된 토큰입니다.")
				c.Abort()
				return
			}
			// redis 오류 시에는 토큰 검증 결과만으로 통과시킨다
		}

		c.Set("employee_id", claims.EmployeeID)
		c.Set("user_name", claims.Name)
		c.Set("user_type", claims.UserType)
		c.Set("token_jti", claims.ID)
		c.Set("token_expires_at", claims.ExpiresAt.Time)

		c.Next()
	}
}

// RequireUserType 주체 유형 검사 미들웨어
// 허용 유형이 아니면 403 으로 차단한다
func RequireUserType(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user_type")
		if !exists {
			response.Unauthorized(c, 10002, "로그인이 필요합니다.")
			c.Abort()
			return
		}

		userType := v.(string)
		for _, t := range allowed {
			if userType == t {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "권한이 없습니다.")
		c.Abort()
	}
}
