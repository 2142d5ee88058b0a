package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jungjoo0/security-checker/internal/model"
)

// CheckRecordRepository 보안 체크 기록 데이터 접근 인터페이스
type CheckRecordRepository interface {
	// Create 체크 기록 단건 삽입
	// (employee_id, check_date) 유니크 제약 위반 시 gorm.ErrDuplicatedKey 를 반환한다.
	// 읽고-쓰기 선검사 없이 이 원자적 삽입만으로 하루 1회 불변식을 보장한다
	Create(ctx context.Context, record *model.CheckRecord) error
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*model.CheckRecord, error)
	// CountCompleted 구성원의 누적 완료 횟수
	CountCompleted(ctx context.Context, employeeID string) (int64, error)
}

// checkRecordRepo CheckRecordRepository 의 GORM 구현
type checkRecordRepo struct {
	db *gorm.DB
}

// NewCheckRecordRepo CheckRecordRepository 인스턴스 생성
func NewCheckRecordRepo(db *gorm.DB) CheckRecordRepository {
	return &checkRecordRepo{db: db}
}

func (r *checkRecordRepo) Create(ctx context.Context, record *model.CheckRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *checkRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*model.CheckRecord, error) {
	var record model.CheckRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND check_date = ?", employeeID, date).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *checkRecordRepo) CountCompleted(ctx context.Context, employeeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CheckRecord{}).
		Where("employee_id = ? AND completed = ?", employeeID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
