package handler

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jungjoo0/security-checker/internal/dto"
	"github.com/jungjoo0/security-checker/internal/service"
	"github.com/jungjoo0/security-checker/pkg/response"
)

// AdminHandler 관리자 대시보드 / 일괄 업로드 HTTP 처리기
type AdminHandler struct {
	dashboardSvc service.DashboardService
	importSvc    service.ImportService
}

// NewAdminHandler AdminHandler 생성
func NewAdminHandler(dashboardSvc service.DashboardService, importSvc service.ImportService) *AdminHandler {
	return &AdminHandler{dashboardSvc: dashboardSvc, importSvc: importSvc}
}

// Dashboard 관리자 대시보드 — 조회 범위 내 구성원과 선택 날짜의 체크 상태
// GET /api/v1/admin/dashboard?date=2006-01-02
func (h *AdminHandler) Dashboard(c *gin.Context) {
	adminID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다.")
		return
	}

	result, err := h.dashboardSvc.ListVisible(c.Request.Context(), adminID, req.Date, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 13001, service.ErrInvalidDate.Error())
		case errors.Is(err, service.ErrAdminNotFound):
			response.Forbidden(c, 13002, service.ErrAdminNotFound.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// ImportEmployees 구성원 정보 일괄 업로드 (xlsx)
// POST /api/v1/admin/import/employees — multipart 필드명 "file"
func (h *AdminHandler) ImportEmployees(c *gin.Context) {
	h.runImport(c, h.importSvc.ImportEmployees)
}

// ImportAdmins 관리자 정보 일괄 업로드 (xlsx)
// POST /api/v1/admin/import/admins — multipart 필드명 "file"
func (h *AdminHandler) ImportAdmins(c *gin.Context) {
	h.runImport(c, h.importSvc.ImportAdmins)
}

func (h *AdminHandler) runImport(c *gin.Context, do func(context.Context, io.Reader) (*dto.ImportResponse, error)) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "파일을 선택해주세요.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "파일을 열 수 없습니다.")
		return
	}
	defer file.Close()

	result, err := do(c.Request.Context(), file)
	if err != nil {
		h.handleImportError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AdminHandler) handleImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrImportBadFile):
		response.BadRequest(c, 14001, service.ErrImportBadFile.Error())
	case errors.Is(err, service.ErrImportNoData):
		response.BadRequest(c, 14002, service.ErrImportNoData.Error())
	case errors.Is(err, service.ErrImportBadHeader):
		response.BadRequest(c, 14003, service.ErrImportBadHeader.Error())
	case errors.Is(err, service.ErrImportTooManyRows):
		response.BadRequest(c, 14004, service.ErrImportTooManyRows.Error())
	default:
		response.InternalError(c)
	}
}
