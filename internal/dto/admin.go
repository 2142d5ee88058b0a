package dto

// DashboardRequest 관리자 대시보드 조회 조건
type DashboardRequest struct {
	Date string `form:"date"` // "2006-01-02"; 비우면 KST 오늘
}

// DashboardResponse 대시보드 결과
type DashboardResponse struct {
	Today        string         `json:"today"`         // KST 오늘
	SelectedDate string         `json:"selected_date"` // 조회 대상 날짜
	Employees    []DashboardRow `json:"employees"`
}

// DashboardRow 구성원 1명의 당일 상태
type DashboardRow struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	JobType     string `json:"job_type"`
	Division    string `json:"division"`
	CenterTeam  string `json:"center_team"`
	GroupName   string `json:"group_name"`
	Department  string `json:"department"`
	TodayStatus string `json:"today_status"` // "완료" | "미완료"
	CheckTime   string `json:"check_time,omitempty"`
	TotalChecks int64  `json:"total_checks"`
}

// ImportResponse 일괄 업로드 결과
type ImportResponse struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Errors    []ImportError `json:"errors,omitempty"`
}

// ImportError 업로드 실패 행과 사유
type ImportError struct {
	Row    int    `json:"row"` // 엑셀 행 번호 (1부터, 헤더 포함)
	Reason string `json:"reason"`
}
