package handler

import "github.com/jungjoo0/security-checker/internal/service"

// Handler 모든 Handler 의 집합 진입점
type Handler struct {
	Auth   *AuthHandler
	Check  *CheckHandler
	Admin  *AdminHandler
	Export *ExportHandler
}

// NewHandler Handler 집합 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		Check:  NewCheckHandler(svc.Check),
		Admin:  NewAdminHandler(svc.Dashboard, svc.Import),
		Export: NewExportHandler(svc.Export),
	}
}
