package dto

// SubmitCheckRequest 일일 보안 체크 제출
// 세 항목이 모두 true 여야 저장된다 — 부분 제출은 존재하지 않는다
type SubmitCheckRequest struct {
	PCShutdown       bool `json:"pc_shutdown"`
	LockCheck        bool `json:"lock_check"`
	DocumentSecurity bool `json:"document_security"`
}

// TodayCheckResponse 당일 체크 상태 + 누적 완료 횟수
type TodayCheckResponse struct {
	Date        string              `json:"date"` // KST 달력 날짜
	TodayRecord *CheckRecordSummary `json:"today_record,omitempty"`
	TotalChecks int64               `json:"total_checks"`
}

// CheckRecordSummary 체크 기록 요약
type CheckRecordSummary struct {
	CheckDate string `json:"check_date"`
	CheckTime string `json:"check_time"` // "YYYYMMDDHHmm"
	Completed bool   `json:"completed"`
}
