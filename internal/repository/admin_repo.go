package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jungjoo0/security-checker/internal/model"
)

// AdminRepository 관리자 데이터 접근 인터페이스
type AdminRepository interface {
	GetByID(ctx context.Context, employeeID string) (*model.Admin, error)
	// Upsert 사번 기준 일괄 업서트
	// password_hash 는 충돌 시 갱신 대상에서 제외된다 — 재업로드가 비밀번호를 바꾸지 않는다
	Upsert(ctx context.Context, admins []model.Admin) error
}

// adminRepo AdminRepository 의 GORM 구현
type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo AdminRepository 인스턴스 생성
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByID(ctx context.Context, employeeID string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) Upsert(ctx context.Context, admins []model.Admin) error {
	if len(admins) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "job_type", "division", "center_team", "group_name", "department",
			}),
		}).
		Create(&admins).Error
}
