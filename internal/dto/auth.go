package dto

// EmployeeLoginRequest 구성원 로그인 — 사번만으로 인증한다 (원본 정책 유지)
type EmployeeLoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

// AdminLoginRequest 관리자 로그인
type AdminLoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password"    binding:"required"`
}

// TokenResponse 로그인 성공 응답
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"` // "Bearer"
	ExpiresIn   int64        `json:"expires_in"` // 초 단위
	User        UserResponse `json:"user"`
}

// UserResponse 인증 주체 요약
type UserResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	UserType   string `json:"user_type"` // "employee" | "admin"
}
