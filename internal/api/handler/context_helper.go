package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jungjoo0/security-checker/pkg/response"
)

// MustGetEmployeeID 컨텍스트에서 employee_id 를 안전하게 꺼낸다.
// 인증 미들웨어가 값을 주입하지 않았으면 401 을 쓰고 false 를 반환한다.
// 호출부는 ok=false 면 바로 return 해야 한다.
func MustGetEmployeeID(c *gin.Context) (string, bool) {
	v, exists := c.Get("employee_id")
	if !exists {
		response.Unauthorized(c, 10002, "로그인이 필요합니다.")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "로그인이 필요합니다.")
		return "", false
	}
	return s, true
}

// MustGetUserType 컨텍스트에서 user_type 을 안전하게 꺼낸다.
func MustGetUserType(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_type")
	if !exists {
		response.Unauthorized(c, 10002, "로그인이 필요합니다.")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "로그인이 필요합니다.")
		return "", false
	}
	return s, true
}
