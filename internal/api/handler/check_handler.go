package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jungjoo0/security-checker/internal/dto"
	"github.com/jungjoo0/security-checker/internal/service"
	"github.com/jungjoo0/security-checker/pkg/response"
)

// CheckHandler 일일 보안 체크 HTTP 처리기
type CheckHandler struct {
	checkSvc service.CheckService
}

// NewCheckHandler CheckHandler 생성
func NewCheckHandler(checkSvc service.CheckService) *CheckHandler {
	return &CheckHandler{checkSvc: checkSvc}
}

// SubmitCheck 당일 보안 체크 제출
// POST /api/v1/checks
func (h *CheckHandler) SubmitCheck(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.SubmitCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다.")
		return
	}

	if err := h.checkSvc.Submit(c.Request.Context(), employeeID, &req, time.Now()); err != nil {
		switch {
		case errors.Is(err, service.ErrCheckIncomplete):
			response.BadRequest(c, 12001, service.ErrCheckIncomplete.Error())
		case errors.Is(err, service.ErrAlreadyChecked):
			response.Conflict(c, 12002, service.ErrAlreadyChecked.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, gin.H{"message": "보안 체크가 완료되었습니다!"})
}

// GetToday 당일 체크 상태 조회
// GET /api/v1/checks/today
func (h *CheckHandler) GetToday(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	status, err := h.checkSvc.TodayStatus(c.Request.Context(), employeeID, time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, status)
}
