package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jungjoo0/security-checker/config"
)

var (
	ErrTokenExpired = errors.New("토큰이 만료되었습니다")
	ErrTokenInvalid = errors.New("토큰이 유효하지 않습니다")
)

// 인증 주체 구분
const (
	UserTypeEmployee = "employee"
	UserTypeAdmin    = "admin"
)

// Claims 커스텀 JWT 클레임
type Claims struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	UserType   string `json:"user_type"` // "employee" | "admin"
	jwtv5.RegisteredClaims
}

// Manager JWT 관리자
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager JWT 관리자 생성
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// GenerateToken 액세스 토큰 발급
// jti 는 로그아웃 시 블랙리스트 키로 사용된다
func (m *Manager) GenerateToken(employeeID, name, userType string) (string, error) {
	now := time.Now()
	claims := Claims{
		EmployeeID: employeeID,
		Name:       name,
		UserType:   userType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "security-checker",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 토큰 파싱 및 검증
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
