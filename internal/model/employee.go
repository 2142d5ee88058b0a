package model

// Employee 구성원 테이블 — employees
// 4단계 조직 경로: 본부 → 센터/팀 → 그룹 → 실
type Employee struct {
	EmployeeID string `gorm:"type:varchar(30);primaryKey"  json:"employee_id"`
	Name       string `gorm:"type:varchar(100);not null"   json:"name"`
	JobType    string `gorm:"type:varchar(50)"             json:"job_type"`
	Division   string `gorm:"type:varchar(100)"            json:"division"`
	CenterTeam string `gorm:"type:varchar(100)"            json:"center_team"`
	GroupName  string `gorm:"type:varchar(100)"            json:"group_name"`
	Department string `gorm:"type:varchar(100)"            json:"department"`
}

// TableName 테이블명 지정
func (Employee) TableName() string { return "employees" }
