package repository

import "gorm.io/gorm"

// Repository 모든 Repository 의 집합 진입점
type Repository struct {
	Employee    EmployeeRepository
	Admin       AdminRepository
	CheckRecord CheckRecordRepository
}

// NewRepository Repository 집합 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:    NewEmployeeRepo(db),
		Admin:       NewAdminRepo(db),
		CheckRecord: NewCheckRecordRepo(db),
	}
}
