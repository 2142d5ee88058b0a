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
	"github.com/jungjoo0/security-checker/pkg/kst"
)

// ── 보안 체크 모듈 업무 오류 ──

var (
	ErrCheckIncomplete = errors.New("모든 항목을 체크해주세요.")
	ErrAlreadyChecked  = errors.New("오늘은 이미 체크를 완료했습니다.")
)

// CheckService 일일 보안 체크 업무 인터페이스
//
// 상태는 (구성원, KST 날짜) 별로 NONE → COMPLETE 뿐이다.
// 부분 제출 상태는 존재하지 않으며, 날짜가 바뀌면 유니크 키가 달라져
// 별도 초기화 없이 새로 제출할 수 있다.
type CheckService interface {
	// Submit 당일 보안 체크 제출. 세 항목이 모두 true 가 아니면 저장 없이 실패한다.
	// 하루 1회 불변식은 저장소의 유니크 제약 단일 삽입으로 보장한다 —
	// 선조회 후 삽입이 아니므로 동시 제출 경쟁에서도 정확히 한 건만 성공한다
	Submit(ctx context.Context, employeeID string, req *dto.SubmitCheckRequest, now time.Time) error
	// TodayStatus 당일 기록(없으면 nil)과 누적 완료 횟수 조회. 부작용 없음
	TodayStatus(ctx context.Context, employeeID string, now time.Time) (*dto.TodayCheckResponse, error)
}

type checkService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCheckService CheckService 인스턴스 생성
func NewCheckService(repo *repository.Repository, logger *zap.Logger) CheckService {
	return &checkService{repo: repo, logger: logger}
}

func (s *checkService) Submit(ctx context.Context, employeeID string, req *dto.SubmitCheckRequest, now time.Time) error {
	if !req.PCShutdown || !req.LockCheck || !req.DocumentSecurity {
		return ErrCheckIncomplete
	}

	record := &model.CheckRecord{
		EmployeeID:       employeeID,
		CheckDate:        kst.Today(now),
		CheckTime:        kst.Timestamp(now),
		PCShutdown:       true,
		LockCheck:        true,
		DocumentSecurity: true,
		Completed:        true,
	}

	if err := s.repo.CheckRecord.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyChecked
		}
		s.logger.Error("체크 기록 저장 실패",
			zap.String("employee_id", employeeID),
			zap.String("check_date", record.CheckDate),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("보안 체크 완료",
		zap.String("employee_id", employeeID),
		zap.String("check_date", record.CheckDate),
	)
	return nil
}

func (s *checkService) TodayStatus(ctx context.Context, employeeID string, now time.Time) (*dto.TodayCheckResponse, error) {
	today := kst.Today(now)

	resp := &dto.TodayCheckResponse{Date: today}

	record, err := s.repo.CheckRecord.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("당일 기록 조회 실패", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	if record != nil {
		resp.TodayRecord = &dto.CheckRecordSummary{
			CheckDate: record.CheckDate,
			CheckTime: record.CheckTime,
			Completed: record.Completed,
		}
	}

	total, err := s.repo.CheckRecord.CountCompleted(ctx, employeeID)
	if err != nil {
		s.logger.Error("누적 횟수 조회 실패", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	resp.TotalChecks = total

	return resp, nil
}
