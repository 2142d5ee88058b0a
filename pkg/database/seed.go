package database

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jungjoo0/security-checker/internal/model"
	"github.com/jungjoo0/security-checker/internal/scope"
)

// EnsureSuperAdmin 슈퍼 관리자(admin) 계정이 없으면 생성한다
// 이미 존재하면 비밀번호를 포함해 아무것도 변경하지 않는다
func EnsureSuperAdmin(db *gorm.DB, initialPassword string, logger *zap.Logger) error {
	var existing model.Admin
	err := db.Where("employee_id = ?", scope.SuperAdminID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("슈퍼 관리자 조회 실패: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("초기 비밀번호 해시 실패: %w", err)
	}

	admin := model.Admin{
		EmployeeID:   scope.SuperAdminID,
		Name:         "슈퍼관리자",
		PasswordHash: string(hash),
		JobType:      "시스템관리",
		Division:     scope.All,
		CenterTeam:   scope.All,
		GroupName:    scope.All,
		Department:   scope.All,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("슈퍼 관리자 생성 실패: %w", err)
	}

	logger.Info("슈퍼 관리자 계정을 생성했습니다", zap.String("employee_id", scope.SuperAdminID))
	return nil
}
