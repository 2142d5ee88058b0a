package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jungjoo0/security-checker/internal/dto"
	"github.com/jungjoo0/security-checker/internal/model"
	"github.com/jungjoo0/security-checker/internal/repository"
	"github.com/jungjoo0/security-checker/internal/scope"
	"github.com/jungjoo0/security-checker/pkg/kst"
)

// ── 대시보드 모듈 업무 오류 ──

var (
	ErrAdminNotFound = errors.New("관리자 정보를 찾을 수 없습니다.")
	ErrInvalidDate   = errors.New("날짜 형식이 올바르지 않습니다.")
)

// 당일 상태 표시 문자열 (원본 화면과 동일)
const (
	statusComplete   = "완료"
	statusIncomplete = "미완료"
)

// DashboardService 관리자 대시보드 업무 인터페이스
type DashboardService interface {
	// ListVisible 관리자 조회 범위 내 구성원과 해당 날짜의 체크 상태를 조회한다
	// 관리자 조직 속성은 토큰이 아니라 저장소에서 다시 읽는다 — 오래된 클레임이
	// 범위를 넓히지 못하게 한다
	ListVisible(ctx context.Context, adminID, date string, now time.Time) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService DashboardService 인스턴스 생성
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// subjectOf 관리자 모델을 범위 산정 입력으로 변환한다
func subjectOf(admin *model.Admin) scope.Subject {
	return scope.Subject{
		EmployeeID: admin.EmployeeID,
		JobTitle:   admin.JobType,
		Division:   admin.Division,
		CenterTeam: admin.CenterTeam,
		GroupName:  admin.GroupName,
		Department: admin.Department,
	}
}

func (s *dashboardService) ListVisible(ctx context.Context, adminID, date string, now time.Time) (*dto.DashboardResponse, error) {
	today := kst.Today(now)

	selected := date
	if selected == "" {
		selected = today
	} else if _, err := time.Parse("2006-01-02", selected); err != nil {
		return nil, ErrInvalidDate
	}

	admin, err := s.repo.Admin.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		s.logger.Error("관리자 조회 실패", zap.String("admin_id", adminID), zap.Error(err))
		return nil, err
	}

	pred := scope.Resolve(subjectOf(admin))

	rows, err := s.repo.Employee.ListWithStatus(ctx, pred, selected)
	if err != nil {
		s.logger.Error("대시보드 조회 실패", zap.String("admin_id", adminID), zap.Error(err))
		return nil, err
	}

	employees := make([]dto.DashboardRow, 0, len(rows))
	for _, r := range rows {
		row := dto.DashboardRow{
			EmployeeID:  r.EmployeeID,
			Name:        r.Name,
			JobType:     r.JobType,
			Division:    r.Division,
			CenterTeam:  r.CenterTeam,
			GroupName:   r.GroupName,
			Department:  r.Department,
			TodayStatus: statusIncomplete,
			TotalChecks: r.TotalChecks,
		}
		if r.TodayCompleted != nil && *r.TodayCompleted {
			row.TodayStatus = statusComplete
		}
		if r.CheckTime != nil {
			row.CheckTime = *r.CheckTime
		}
		employees = append(employees, row)
	}

	return &dto.DashboardResponse{
		Today:        today,
		SelectedDate: selected,
		Employees:    employees,
	}, nil
}
