package model

// CheckRecord 보안 체크 기록 테이블 — check_records
// (employee_id, check_date) 유니크 제약: 하루에 한 건만 존재한다
// check_date 는 KST 달력 날짜("2006-01-02"), check_time 은 "YYYYMMDDHHmm"
type CheckRecord struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"                                           json:"id"`
	EmployeeID       string `gorm:"type:varchar(30);not null;uniqueIndex:uq_check_records_employee_date" json:"employee_id"`
	CheckDate        string `gorm:"type:varchar(10);not null;uniqueIndex:uq_check_records_employee_date" json:"check_date"`
	CheckTime        string `gorm:"type:varchar(12);not null"                                          json:"check_time"`
	PCShutdown       bool   `gorm:"column:pc_shutdown;not null;default:false"                          json:"pc_shutdown"`
	LockCheck        bool   `gorm:"not null;default:false"                                             json:"lock_check"`
	DocumentSecurity bool   `gorm:"not null;default:false"                                             json:"document_security"`
	Completed        bool   `gorm:"not null;default:false"                                             json:"completed"`
}

// TableName 테이블명 지정
func (CheckRecord) TableName() string { return "check_records" }
