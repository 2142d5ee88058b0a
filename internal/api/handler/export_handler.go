package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jungjoo0/security-checker/internal/service"
	"github.com/jungjoo0/security-checker/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 누적 데이터 내보내기 HTTP 처리기
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportChecks 누적 체크 데이터 엑셀 다운로드
// GET /api/v1/admin/export/checks
func (h *ExportHandler) ExportChecks(c *gin.Context) {
	adminID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportChecks(c.Request.Context(), adminID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			response.Forbidden(c, 13002, service.ErrAdminNotFound.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
