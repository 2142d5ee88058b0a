package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jungjoo0/security-checker/internal/model"
	"github.com/jungjoo0/security-checker/internal/scope"
)

func seedOrg(empRepo *mockEmployeeRepo, adminRepo *mockAdminRepo) {
	empRepo.add(model.Employee{EmployeeID: "E1001", Name: "김철수", Division: "D1", CenterTeam: "C1"})
	empRepo.add(model.Employee{EmployeeID: "E1002", Name: "이영희", Division: "D1", CenterTeam: "C1"})
	empRepo.add(model.Employee{EmployeeID: "E2001", Name: "박민수", Division: "D1", CenterTeam: "C2"})
	empRepo.add(model.Employee{EmployeeID: "E3001", Name: "최지은", Division: "D2", CenterTeam: "C9"})

	adminRepo.add(model.Admin{EmployeeID: "A100", Name: "센터장A", JobType: "센터장", Division: "D1", CenterTeam: "C1"})
	adminRepo.add(model.Admin{EmployeeID: scope.SuperAdminID, Name: "슈퍼관리자", JobType: "시스템관리",
		Division: scope.All, CenterTeam: scope.All, GroupName: scope.All, Department: scope.All})
}

func TestDashboardService_CenterHeadScope(t *testing.T) {
	repo, empRepo, adminRepo, checkRepo := newMockRepository()
	seedOrg(empRepo, adminRepo)
	svc := NewDashboardService(repo, zap.NewNop())

	now := time.Date(2025, 10, 16, 5, 0, 0, 0, time.UTC) // KST 10-16
	_ = checkRepo.Create(context.Background(), &model.CheckRecord{
		EmployeeID: "E1001", CheckDate: "2025-10-16", CheckTime: "202510161400", Completed: true,
	})

	result, err := svc.ListVisible(context.Background(), "A100", "", now)
	if err != nil {
		t.Fatalf("ListVisible 실패: %v", err)
	}

	// 센터장 A100: D1 + C1 소속만 보인다
	if len(result.Employees) != 2 {
		t.Fatalf("조회 인원 = %d, want 2 (D1/C1 소속만)", len(result.Employees))
	}
	// 사번 오름차순
	if result.Employees[0].EmployeeID != "E1001" || result.Employees[1].EmployeeID != "E1002" {
		t.Errorf("정렬 순서 오류: %s, %s", result.Employees[0].EmployeeID, result.Employees[1].EmployeeID)
	}

	if result.Employees[0].TodayStatus != "완료" {
		t.Errorf("E1001 상태 = %q, want 완료", result.Employees[0].TodayStatus)
	}
	if result.Employees[0].CheckTime != "202510161400" {
		t.Errorf("E1001 체크시간 = %q, want 202510161400", result.Employees[0].CheckTime)
	}
	if result.Employees[0].TotalChecks != 1 {
		t.Errorf("E1001 누적 = %d, want 1", result.Employees[0].TotalChecks)
	}
	if result.Employees[1].TodayStatus != "미완료" {
		t.Errorf("E1002 상태 = %q, want 미완료", result.Employees[1].TodayStatus)
	}
	if result.SelectedDate != "2025-10-16" {
		t.Errorf("selected_date = %q, want 오늘", result.SelectedDate)
	}
}

func TestDashboardService_SuperAdminSeesEveryone(t *testing.T) {
	repo, empRepo, adminRepo, _ := newMockRepository()
	seedOrg(empRepo, adminRepo)
	svc := NewDashboardService(repo, zap.NewNop())

	result, err := svc.ListVisible(context.Background(), scope.SuperAdminID, "", time.Now())
	if err != nil {
		t.Fatalf("ListVisible 실패: %v", err)
	}
	if len(result.Employees) != 4 {
		t.Errorf("조회 인원 = %d, want 전체 4", len(result.Employees))
	}
}

func TestDashboardService_SelectedDate(t *testing.T) {
	repo, empRepo, adminRepo, checkRepo := newMockRepository()
	seedOrg(empRepo, adminRepo)
	svc := NewDashboardService(repo, zap.NewNop())

	// 과거 날짜의 기록
	_ = checkRepo.Create(context.Background(), &model.CheckRecord{
		EmployeeID: "E1001", CheckDate: "2025-10-10", CheckTime: "202510102300", Completed: true,
	})

	result, err := svc.ListVisible(context.Background(), "A100", "2025-10-10", time.Now())
	if err != nil {
		t.Fatalf("ListVisible 실패: %v", err)
	}
	if result.SelectedDate != "2025-10-10" {
		t.Errorf("selected_date = %q, want 2025-10-10", result.SelectedDate)
	}
	if result.Employees[0].TodayStatus != "완료" {
		t.Errorf("과거 날짜 조회 상태 = %q, want 완료", result.Employees[0].TodayStatus)
	}
}

func TestDashboardService_InvalidDate(t *testing.T) {
	repo, empRepo, adminRepo, _ := newMockRepository()
	seedOrg(empRepo, adminRepo)
	svc := NewDashboardService(repo, zap.NewNop())

	if _, err := svc.ListVisible(context.Background(), "A100", "10/16/2025", time.Now()); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("잘못된 날짜 = %v, want ErrInvalidDate", err)
	}
}

func TestDashboardService_UnknownAdmin(t *testing.T) {
	repo, empRepo, adminRepo, _ := newMockRepository()
	seedOrg(empRepo, adminRepo)
	svc := NewDashboardService(repo, zap.NewNop())

	if _, err := svc.ListVisible(context.Background(), "NOBODY", "", time.Now()); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("미등록 관리자 = %v, want ErrAdminNotFound", err)
	}
}
