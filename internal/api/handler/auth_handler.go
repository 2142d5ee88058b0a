package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jungjoo0/security-checker/internal/dto"
	"github.com/jungjoo0/security-checker/internal/service"
	"github.com/jungjoo0/security-checker/pkg/response"
)

// AuthHandler 인증 모듈 HTTP 처리기
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler AuthHandler 생성
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// EmployeeLogin 구성원 로그인
// POST /api/v1/auth/employee/login
func (h *AuthHandler) EmployeeLogin(c *gin.Context) {
	var req dto.EmployeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "사번을 입력해주세요.")
		return
	}

	token, err := h.authSvc.EmployeeLogin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.Unauthorized(c, 11001, service.ErrEmployeeNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, token)
}

// AdminLogin 관리자 로그인
// POST /api/v1/auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "사번과 비밀번호를 입력해주세요.")
		return
	}

	token, err := h.authSvc.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAdminAuthFailed) {
			response.Unauthorized(c, 11002, service.ErrAdminAuthFailed.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, token)
}

// Logout 로그아웃 — 토큰 jti 블랙리스트 등록
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("token_jti")
	expiresAt, _ := c.Get("token_expires_at")
	exp, _ := expiresAt.(time.Time)

	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me 현재 인증 주체 조회
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}
	userType, ok := MustGetUserType(c)
	if !ok {
		return
	}

	user, err := h.authSvc.Me(c.Request.Context(), employeeID, userType)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11003, service.ErrUserNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
