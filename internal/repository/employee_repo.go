package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jungjoo0/security-checker/internal/model"
	"github.com/jungjoo0/security-checker/internal/scope"
)

// DashboardRow 대시보드 한 행: 구성원 + 선택 날짜의 체크 상태 + 누적 횟수
type DashboardRow struct {
	model.Employee
	TodayCompleted *bool   `gorm:"column:today_completed"`
	CheckTime      *string `gorm:"column:check_time"`
	TotalChecks    int64   `gorm:"column:total_checks"`
}

// HistoryRow 누적 내보내기 한 행: 구성원 + 체크 기록(없으면 NULL)
type HistoryRow struct {
	model.Employee
	CheckDate *string `gorm:"column:check_date"`
	CheckTime *string `gorm:"column:check_time"`
	Completed *bool   `gorm:"column:completed"`
}

// EmployeeRepository 구성원 데이터 접근 인터페이스
type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (*model.Employee, error)
	// Upsert 사번 기준 일괄 업서트: 기존 행은 모든 필드를 덮어쓴다
	Upsert(ctx context.Context, employees []model.Employee) error
	// ListWithStatus 술어 범위 내 구성원과 해당 날짜의 체크 상태를 조회한다 (사번 오름차순)
	ListWithStatus(ctx context.Context, pred scope.Predicate, date string) ([]DashboardRow, error)
	// ListHistory 술어 범위 내 구성원의 전체 체크 이력을 조회한다
	// (사번 오름차순, 체크일자 내림차순; 기록 없는 구성원도 한 행 포함)
	ListHistory(ctx context.Context, pred scope.Predicate) ([]HistoryRow, error)
}

// employeeRepo EmployeeRepository 의 GORM 구현
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo EmployeeRepository 인스턴스 생성
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) GetByID(ctx context.Context, employeeID string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) Upsert(ctx context.Context, employees []model.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "job_type", "division", "center_team", "group_name", "department",
			}),
		}).
		Create(&employees).Error
}

// applyPredicate 술어의 동등 제약을 employees 별칭 e 에 대한 WHERE 로 변환한다
// scope.Field 는 닫힌 컬럼 집합이므로 컬럼명 직접 결합이 안전하다
func applyPredicate(db *gorm.DB, pred scope.Predicate) *gorm.DB {
	for _, c := range pred {
		db = db.Where(fmt.Sprintf("e.%s = ?", c.Field), c.Value)
	}
	return db
}

func (r *employeeRepo) ListWithStatus(ctx context.Context, pred scope.Predicate, date string) ([]DashboardRow, error) {
	var rows []DashboardRow

	db := r.db.WithContext(ctx).
		Table("employees AS e").
		Select(`e.*,
			cr.completed AS today_completed,
			cr.check_time AS check_time,
			(SELECT COUNT(*) FROM check_records WHERE employee_id = e.employee_id AND completed = TRUE) AS total_checks`).
		Joins("LEFT JOIN check_records cr ON e.employee_id = cr.employee_id AND cr.check_date = ?", date)

	db = applyPredicate(db, pred)

	if err := db.Order("e.employee_id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *employeeRepo) ListHistory(ctx context.Context, pred scope.Predicate) ([]HistoryRow, error) {
	var rows []HistoryRow

	db := r.db.WithContext(ctx).
		Table("employees AS e").
		Select("e.*, cr.check_date AS check_date, cr.check_time AS check_time, cr.completed AS completed").
		Joins("LEFT JOIN check_records cr ON e.employee_id = cr.employee_id")

	db = applyPredicate(db, pred)

	if err := db.Order("e.employee_id ASC, cr.check_date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
