package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jungjoo0/security-checker/config"
	"github.com/jungjoo0/security-checker/internal/dto"
	"github.com/jungjoo0/security-checker/internal/repository"
	"github.com/jungjoo0/security-checker/pkg/jwt"
	"github.com/jungjoo0/security-checker/pkg/redis"
)

// ── 인증 모듈 업무 오류 ──

var (
	ErrEmployeeNotFound = errors.New("등록되지 않은 사번입니다.")
	ErrAdminAuthFailed  = errors.New("사번 또는 비밀번호가 올바르지 않습니다.")
	ErrUserNotFound     = errors.New("사용자를 찾을 수 없습니다.")
)

// AuthService 인증 업무 인터페이스
type AuthService interface {
	// EmployeeLogin 구성원 로그인: 등록된 사번이면 토큰 발급 (원본과 동일하게 비밀번호 없음)
	EmployeeLogin(ctx context.Context, req *dto.EmployeeLoginRequest) (*dto.TokenResponse, error)
	// AdminLogin 관리자 로그인: 사번 + 비밀번호(bcrypt)
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error)
	// Logout 토큰 jti 를 잔여 유효기간 동안 블랙리스트에 등록한다
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	// Me 현재 인증 주체 조회
	Me(ctx context.Context, employeeID, userType string) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService AuthService 인스턴스 생성
func NewAuthService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) EmployeeLogin(ctx context.Context, req *dto.EmployeeLoginRequest) (*dto.TokenResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("구성원 조회 실패", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return nil, err
	}

	return s.issueToken(emp.EmployeeID, emp.Name, jwt.UserTypeEmployee)
}

func (s *authService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.repo.Admin.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 존재 여부가 드러나지 않도록 비밀번호 오류와 동일하게 응답
			return nil, ErrAdminAuthFailed
		}
		s.logger.Error("관리자 조회 실패", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrAdminAuthFailed
	}

	return s.issueToken(admin.EmployeeID, admin.Name, jwt.UserTypeAdmin)
}

func (s *authService) issueToken(employeeID, name, userType string) (*dto.TokenResponse, error) {
	token, err := s.jwtMgr.GenerateToken(employeeID, name, userType)
	if err != nil {
		s.logger.Error("토큰 발급 실패", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.Auth.TokenTTL.Seconds()),
		User: dto.UserResponse{
			EmployeeID: employeeID,
			Name:       name,
			UserType:   userType,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		// redis 미가동 시 로그아웃은 토큰 자연 만료에 맡긴다
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) Me(ctx context.Context, employeeID, userType string) (*dto.UserResponse, error) {
	switch userType {
	case jwt.UserTypeAdmin:
		admin, err := s.repo.Admin.GetByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return &dto.UserResponse{EmployeeID: admin.EmployeeID, Name: admin.Name, UserType: userType}, nil
	default:
		emp, err := s.repo.Employee.GetByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return &dto.UserResponse{EmployeeID: emp.EmployeeID, Name: emp.Name, UserType: userType}, nil
	}
}
