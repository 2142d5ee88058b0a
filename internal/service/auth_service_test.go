package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jungjoo0/security-checker/config"
	"github.com/jungjoo0/security-checker/internal/dto"
	"github.com/jungjoo0/security-checker/internal/model"
	"github.com/jungjoo0/security-checker/pkg/jwt"
)

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	return cfg
}

func newAuthService(t *testing.T) (AuthService, *mockEmployeeRepo, *mockAdminRepo, *jwt.Manager) {
	t.Helper()
	repo, empRepo, adminRepo, _ := newMockRepository()
	cfg := authTestConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, empRepo, adminRepo, jwtMgr
}

func TestAuthService_EmployeeLogin(t *testing.T) {
	svc, empRepo, _, jwtMgr := newAuthService(t)
	empRepo.add(model.Employee{EmployeeID: "E1001", Name: "김철수"})

	res, err := svc.EmployeeLogin(context.Background(), &dto.EmployeeLoginRequest{EmployeeID: "E1001"})
	if err != nil {
		t.Fatalf("EmployeeLogin 실패: %v", err)
	}

	if res.TokenType != "Bearer" || res.ExpiresIn != 3600 {
		t.Errorf("토큰 메타 = %s/%d, want Bearer/3600", res.TokenType, res.ExpiresIn)
	}
	if res.User.EmployeeID != "E1001" || res.User.UserType != jwt.UserTypeEmployee {
		t.Errorf("사용자 정보 불일치: %+v", res.User)
	}

	claims, err := jwtMgr.ParseToken(res.AccessToken)
	if err != nil {
		t.Fatalf("발급된 토큰 파싱 실패: %v", err)
	}
	if claims.EmployeeID != "E1001" || claims.UserType != jwt.UserTypeEmployee {
		t.Errorf("클레임 불일치: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("jti 가 비어 있음")
	}
}

func TestAuthService_EmployeeLogin_Unregistered(t *testing.T) {
	svc, _, _, _ := newAuthService(t)

	_, err := svc.EmployeeLogin(context.Background(), &dto.EmployeeLoginRequest{EmployeeID: "E9999"})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestAuthService_AdminLogin(t *testing.T) {
	svc, _, adminRepo, _ := newAuthService(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	adminRepo.add(model.Admin{EmployeeID: "A100", Name: "센터장A", PasswordHash: string(hash)})

	t.Run("정상 로그인", func(t *testing.T) {
		res, err := svc.AdminLogin(context.Background(), &dto.AdminLoginRequest{EmployeeID: "A100", Password: "secret1"})
		if err != nil {
			t.Fatalf("AdminLogin 실패: %v", err)
		}
		if res.User.UserType != jwt.UserTypeAdmin {
			t.Errorf("user_type = %q, want admin", res.User.UserType)
		}
	})

	t.Run("비밀번호 불일치", func(t *testing.T) {
		_, err := svc.AdminLogin(context.Background(), &dto.AdminLoginRequest{EmployeeID: "A100", Password: "wrong"})
		if !errors.Is(err, ErrAdminAuthFailed) {
			t.Errorf("err = %v, want ErrAdminAuthFailed", err)
		}
	})

	// 계정 존재 여부가 응답으로 드러나지 않아야 한다
	t.Run("없는 계정", func(t *testing.T) {
		_, err := svc.AdminLogin(context.Background(), &dto.AdminLoginRequest{EmployeeID: "A999", Password: "secret1"})
		if !errors.Is(err, ErrAdminAuthFailed) {
			t.Errorf("err = %v, want ErrAdminAuthFailed", err)
		}
	})
}

func TestAuthService_Logout_WithoutRedis(t *testing.T) {
	svc, _, _, _ := newAuthService(t)

	// redis 미가동 시 로그아웃은 조용히 성공한다 (토큰 자연 만료)
	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("Logout 실패: %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, empRepo, adminRepo, _ := newAuthService(t)
	empRepo.add(model.Employee{EmployeeID: "E1001", Name: "김철수"})
	adminRepo.add(model.Admin{EmployeeID: "A100", Name: "센터장A"})

	t.Run("구성원", func(t *testing.T) {
		u, err := svc.Me(context.Background(), "E1001", jwt.UserTypeEmployee)
		if err != nil {
			t.Fatalf("Me 실패: %v", err)
		}
		if u.Name != "김철수" || u.UserType != jwt.UserTypeEmployee {
			t.Errorf("응답 불일치: %+v", u)
		}
	})

	t.Run("관리자", func(t *testing.T) {
		u, err := svc.Me(context.Background(), "A100", jwt.UserTypeAdmin)
		if err != nil {
			t.Fatalf("Me 실패: %v", err)
		}
		if u.Name != "센터장A" {
			t.Errorf("이름 = %q, want 센터장A", u.Name)
		}
	})

	t.Run("삭제된 사용자", func(t *testing.T) {
		_, err := svc.Me(context.Background(), "E9999", jwt.UserTypeEmployee)
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})
}
