package service

import (
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jungjoo0/security-checker/internal/model"
	"github.com/jungjoo0/security-checker/internal/scope"
)

func TestExportService_ExportChecks(t *testing.T) {
	repo, empRepo, adminRepo, checkRepo := newMockRepository()
	seedOrg(empRepo, adminRepo)
	svc := NewExportService(repo, zap.NewNop())

	_ = checkRepo.Create(context.Background(), &model.CheckRecord{
		EmployeeID: "E1001", CheckDate: "2025-10-15", CheckTime: "202510152200", Completed: true,
	})
	_ = checkRepo.Create(context.Background(), &model.CheckRecord{
		EmployeeID: "E1001", CheckDate: "2025-10-16", CheckTime: "202510162100", Completed: true,
	})

	// UTC 10-16 05:30 → KST 10-16 14:30
	now := time.Date(2025, 10, 16, 5, 30, 0, 0, time.UTC)

	buf, filename, err := svc.ExportChecks(context.Background(), "A100", now)
	if err != nil {
		t.Fatalf("ExportChecks 실패: %v", err)
	}

	if filename != "security_check_all_202510161430.xlsx" {
		t.Errorf("filename = %q, want %q", filename, "security_check_all_202510161430.xlsx")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("생성된 파일을 다시 열 수 없음: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("보안체크누적데이터")
	if err != nil {
		t.Fatalf("시트 읽기 실패: %v", err)
	}

	// 헤더 + E1001 기록 2건 + E1002 빈 행 1건 = 4행
	if len(rows) != 4 {
		t.Fatalf("행 수 = %d, want 4", len(rows))
	}

	if rows[0][0] != "사번" || rows[0][9] != "완료여부" {
		t.Errorf("헤더 불일치: %v", rows[0])
	}

	// 사번 오름차순, 같은 사번 안에서 체크일자 내림차순
	if rows[1][0] != "E1001" || rows[1][7] != "2025-10-16" {
		t.Errorf("1행 = 사번 %q 일자 %q, want E1001 / 2025-10-16", rows[1][0], rows[1][7])
	}
	if rows[2][0] != "E1001" || rows[2][7] != "2025-10-15" {
		t.Errorf("2행 = 사번 %q 일자 %q, want E1001 / 2025-10-15", rows[2][0], rows[2][7])
	}
	if rows[1][9] != "완료" {
		t.Errorf("1행 완료여부 = %q, want 완료", rows[1][9])
	}

	// 기록 없는 구성원도 미완료 한 행으로 포함된다
	if rows[3][0] != "E1002" || rows[3][9] != "미완료" {
		t.Errorf("3행 = 사번 %q 상태 %q, want E1002 / 미완료", rows[3][0], rows[3][9])
	}
}

// 대시보드와 내보내기가 동일한 범위 산정을 공유하는지 확인한다
func TestExportService_ScopeMatchesDashboard(t *testing.T) {
	repo, empRepo, adminRepo, _ := newMockRepository()
	seedOrg(empRepo, adminRepo)

	exportSvc := NewExportService(repo, zap.NewNop())
	dashSvc := NewDashboardService(repo, zap.NewNop())

	now := time.Date(2025, 10, 16, 5, 0, 0, 0, time.UTC)

	dash, err := dashSvc.ListVisible(context.Background(), "A100", "", now)
	if err != nil {
		t.Fatalf("ListVisible 실패: %v", err)
	}

	buf, _, err := exportSvc.ExportChecks(context.Background(), "A100", now)
	if err != nil {
		t.Fatalf("ExportChecks 실패: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("파일 열기 실패: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("보안체크누적데이터")

	exported := make(map[string]bool)
	for _, row := range rows[1:] {
		exported[row[0]] = true
	}

	if len(exported) != len(dash.Employees) {
		t.Errorf("내보내기 인원 %d != 대시보드 인원 %d", len(exported), len(dash.Employees))
	}
	for _, e := range dash.Employees {
		if !exported[e.EmployeeID] {
			t.Errorf("대시보드에 보이는 %s 가 내보내기에 없음", e.EmployeeID)
		}
	}
}

func TestExportService_SuperAdminExportsAll(t *testing.T) {
	repo, empRepo, adminRepo, _ := newMockRepository()
	seedOrg(empRepo, adminRepo)
	svc := NewExportService(repo, zap.NewNop())

	buf, _, err := svc.ExportChecks(context.Background(), scope.SuperAdminID, time.Now())
	if err != nil {
		t.Fatalf("ExportChecks 실패: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("파일 열기 실패: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("보안체크누적데이터")
	// 헤더 + 구성원 4명 (기록 없음 → 각 1행)
	if len(rows) != 5 {
		t.Errorf("행 수 = %d, want 5", len(rows))
	}
}
