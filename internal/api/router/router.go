package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jungjoo0/security-checker/config"
	"github.com/jungjoo0/security-checker/internal/api/handler"
	"github.com/jungjoo0/security-checker/internal/api/middleware"
	"github.com/jungjoo0/security-checker/pkg/jwt"
	"github.com/jungjoo0/security-checker/pkg/redis"
)

// Setup Gin 라우터 엔진을 초기화해 반환한다
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 헬스체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 (비로그인)
		auth := v1.Group("/auth")
		{
			auth.POST("/employee/login", h.Auth.EmployeeLogin)
			// 관리자 로그인은 무차별 대입 방지를 위해 레이트리밋 적용
			auth.POST("/admin/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.AdminLogin)
		}

		// 로그인 필요
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 구성원: 일일 보안 체크
			checks := authorized.Group("/checks")
			checks.Use(middleware.RequireUserType(jwt.UserTypeEmployee))
			{
				checks.GET("/today", h.Check.GetToday)
				checks.POST("", h.Check.SubmitCheck)
			}

			// 관리자: 대시보드 / 업로드 / 내보내기
			admin := authorized.Group("/admin")
			admin.Use(middleware.RequireUserType(jwt.UserTypeAdmin))
			{
				admin.GET("/dashboard", h.Admin.Dashboard)
				admin.GET("/export/checks", h.Export.ExportChecks)

				imports := admin.Group("/import")
				imports.Use(middleware.BodyLimit(cfg.Import.MaxBodyBytes))
				{
					imports.POST("/employees", h.Admin.ImportEmployees)
					imports.POST("/admins", h.Admin.ImportAdmins)
				}
			}
		}
	}

	return r
}
