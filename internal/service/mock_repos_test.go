package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/jungjoo0/security-checker/internal/model"
	"github.com/jungjoo0/security-checker/internal/repository"
	"github.com/jungjoo0/security-checker/internal/scope"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	// 조인 조회용: 사번 → 체크 기록 (checkRepo 와 공유 가능)
	records *mockCheckRecordRepo
}

func newMockEmployeeRepo(records *mockCheckRecordRepo) *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[string]*model.Employee),
		records:   records,
	}
}

func (m *mockEmployeeRepo) add(emp model.Employee) {
	e := emp
	m.employees[e.EmployeeID] = &e
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, employeeID string) (*model.Employee, error) {
	if e, ok := m.employees[employeeID]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) Upsert(_ context.Context, employees []model.Employee) error {
	for _, e := range employees {
		m.add(e)
	}
	return nil
}

func (m *mockEmployeeRepo) orgValue(e *model.Employee, f scope.Field) string {
	switch f {
	case scope.FieldDivision:
		return e.Division
	case scope.FieldCenterTeam:
		return e.CenterTeam
	case scope.FieldGroupName:
		return e.GroupName
	case scope.FieldDepartment:
		return e.Department
	}
	return ""
}

func (m *mockEmployeeRepo) visible(pred scope.Predicate) []*model.Employee {
	var out []*model.Employee
	for _, e := range m.employees {
		emp := e
		if pred.Matches(func(f scope.Field) string { return m.orgValue(emp, f) }) {
			out = append(out, emp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}

func (m *mockEmployeeRepo) ListWithStatus(_ context.Context, pred scope.Predicate, date string) ([]repository.DashboardRow, error) {
	var rows []repository.DashboardRow
	for _, e := range m.visible(pred) {
		row := repository.DashboardRow{Employee: *e}
		for _, r := range m.records.byEmployee(e.EmployeeID) {
			if r.Completed {
				row.TotalChecks++
			}
			if r.CheckDate == date {
				rec := r
				row.TodayCompleted = &rec.Completed
				row.CheckTime = &rec.CheckTime
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (m *mockEmployeeRepo) ListHistory(_ context.Context, pred scope.Predicate) ([]repository.HistoryRow, error) {
	var rows []repository.HistoryRow
	for _, e := range m.visible(pred) {
		recs := m.records.byEmployee(e.EmployeeID)
		if len(recs) == 0 {
			rows = append(rows, repository.HistoryRow{Employee: *e})
			continue
		}
		sort.Slice(recs, func(i, j int) bool { return recs[i].CheckDate > recs[j].CheckDate })
		for _, r := range recs {
			rec := r
			rows = append(rows, repository.HistoryRow{
				Employee:  *e,
				CheckDate: &rec.CheckDate,
				CheckTime: &rec.CheckTime,
				Completed: &rec.Completed,
			})
		}
	}
	return rows, nil
}

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	admins map[string]*model.Admin
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) add(admin model.Admin) {
	a := admin
	m.admins[a.EmployeeID] = &a
}

func (m *mockAdminRepo) GetByID(_ context.Context, employeeID string) (*model.Admin, error) {
	if a, ok := m.admins[employeeID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) Upsert(_ context.Context, admins []model.Admin) error {
	for _, a := range admins {
		if existing, ok := m.admins[a.EmployeeID]; ok {
			// 실제 구현과 동일: password_hash 는 갱신하지 않는다
			a.PasswordHash = existing.PasswordHash
		}
		m.add(a)
	}
	return nil
}

// ── Mock CheckRecordRepository ──

type mockCheckRecordRepo struct {
	records map[string]*model.CheckRecord // key: employeeID + "|" + date
	nextID  int64
}

func newMockCheckRecordRepo() *mockCheckRecordRepo {
	return &mockCheckRecordRepo{records: make(map[string]*model.CheckRecord)}
}

func key(employeeID, date string) string { return employeeID + "|" + date }

func (m *mockCheckRecordRepo) Create(_ context.Context, record *model.CheckRecord) error {
	k := key(record.EmployeeID, record.CheckDate)
	if _, exists := m.records[k]; exists {
		// 유니크 제약 위반과 동일하게 동작
		return gorm.ErrDuplicatedKey
	}
	m.nextID++
	record.ID = m.nextID
	r := *record
	m.records[k] = &r
	return nil
}

func (m *mockCheckRecordRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*model.CheckRecord, error) {
	if r, ok := m.records[key(employeeID, date)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCheckRecordRepo) CountCompleted(_ context.Context, employeeID string) (int64, error) {
	var count int64
	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.Completed {
			count++
		}
	}
	return count, nil
}

func (m *mockCheckRecordRepo) byEmployee(employeeID string) []model.CheckRecord {
	var out []model.CheckRecord
	for _, r := range m.records {
		if r.EmployeeID == employeeID {
			out = append(out, *r)
		}
	}
	return out
}

// ── 공용 셋업 ──

func newMockRepository() (*repository.Repository, *mockEmployeeRepo, *mockAdminRepo, *mockCheckRecordRepo) {
	checkRepo := newMockCheckRecordRepo()
	empRepo := newMockEmployeeRepo(checkRepo)
	adminRepo := newMockAdminRepo()
	repo := &repository.Repository{
		Employee:    empRepo,
		Admin:       adminRepo,
		CheckRecord: checkRepo,
	}
	return repo, empRepo, adminRepo, checkRepo
}
