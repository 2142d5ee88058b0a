package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jungjoo0/security-checker/internal/repository"
	"github.com/jungjoo0/security-checker/internal/scope"
	"github.com/jungjoo0/security-checker/pkg/kst"
)

// ── 내보내기 모듈 업무 오류 ──

var ErrExportGenerateFail = errors.New("엑셀 파일 생성에 실패했습니다.")

const exportSheetName = "보안체크누적데이터"

// 열 순서는 원본 다운로드 파일과 동일하다
var exportHeaders = []string{"사번", "이름", "직군", "본부", "센터/팀", "그룹", "실", "체크일자", "체크시간", "완료여부"}

// ExportService 누적 데이터 엑셀 내보내기 인터페이스
//
// 대시보드와 같은 scope.Resolve 를 거치므로 화면에서 보이지 않는
// 구성원이 파일에 포함될 수 없다.
type ExportService interface {
	// ExportChecks 관리자 조회 범위 내 전체 체크 이력을 xlsx 버퍼와 파일명으로 반환한다
	ExportChecks(ctx context.Context, adminID string, now time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportChecks(ctx context.Context, adminID string, now time.Time) (*bytes.Buffer, string, error) {
	admin, err := s.repo.Admin.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrAdminNotFound
		}
		s.logger.Error("관리자 조회 실패", zap.String("admin_id", adminID), zap.Error(err))
		return nil, "", err
	}

	pred := scope.Resolve(subjectOf(admin))

	rows, err := s.repo.Employee.ListHistory(ctx, pred)
	if err != nil {
		s.logger.Error("누적 이력 조회 실패", zap.String("admin_id", adminID), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	// 기본 시트를 데이터 시트로 사용
	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, h); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	for i, r := range rows {
		checkDate, checkTime := "", ""
		status := statusIncomplete
		if r.CheckDate != nil {
			checkDate = *r.CheckDate
		}
		if r.CheckTime != nil {
			checkTime = *r.CheckTime
		}
		if r.Completed != nil && *r.Completed {
			status = statusComplete
		}

		values := []interface{}{
			r.EmployeeID, r.Name, r.JobType,
			r.Division, r.CenterTeam, r.GroupName, r.Department,
			checkDate, checkTime, status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("엑셀 버퍼 생성 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("security_check_all_%s.xlsx", kst.Timestamp(now))

	s.logger.Info("누적 데이터 내보내기",
		zap.String("admin_id", adminID),
		zap.Int("rows", len(rows)),
		zap.String("filename", filename),
	)

	return buf, filename, nil
}
