package model

// Admin 관리자 테이블 — admins
// 직군(JobType) 문자열의 키워드가 조회 범위 등급을 결정한다
type Admin struct {
	EmployeeID   string `gorm:"type:varchar(30);primaryKey" json:"employee_id"`
	Name         string `gorm:"type:varchar(100);not null"  json:"name"`
	PasswordHash string `gorm:"type:varchar(255);not null"  json:"-"`
	JobType      string `gorm:"type:varchar(50)"            json:"job_type"`
	Division     string `gorm:"type:varchar(100)"           json:"division"`
	CenterTeam   string `gorm:"type:varchar(100)"           json:"center_team"`
	GroupName    string `gorm:"type:varchar(100)"           json:"group_name"`
	Department   string `gorm:"type:varchar(100)"           json:"department"`
}

// TableName 테이블명 지정
func (Admin) TableName() string { return "admins" }
