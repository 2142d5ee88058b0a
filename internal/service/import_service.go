package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jungjoo0/security-checker/config"
	"github.com/jungjoo0/security-checker/internal/dto"
	"github.com/jungjoo0/security-checker/internal/model"
	"github.com/jungjoo0/security-checker/internal/repository"
)

// ── 업로드 모듈 업무 오류 ──

var (
	ErrImportBadFile     = errors.New("엑셀 파일을 해석할 수 없습니다.")
	ErrImportNoData      = errors.New("엑셀 파일에 데이터 행이 없습니다. (첫 행은 헤더)")
	ErrImportTooManyRows = errors.New("데이터 행 수가 업로드 상한을 초과했습니다.")
	ErrImportBadHeader   = errors.New("엑셀 헤더에 필수 열(사번/이름)이 없습니다.")
)

// ImportService 구성원/관리자 일괄 업로드 인터페이스
//
// 업서트 의미: 같은 사번이 이미 있으면 필드를 덮어쓴다.
// 관리자의 비밀번호만은 예외 — 최초 삽입 시에만 초기값이 설정되고
// 재업로드로는 절대 바뀌지 않는다.
type ImportService interface {
	ImportEmployees(ctx context.Context, reader io.Reader) (*dto.ImportResponse, error)
	ImportAdmins(ctx context.Context, reader io.Reader) (*dto.ImportResponse, error)
}

type importService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewImportService ImportService 인스턴스 생성
func NewImportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ImportService {
	return &importService{cfg: cfg, repo: repo, logger: logger}
}

// importRow 엑셀에서 해석한 한 행
type importRow struct {
	Row        int // 엑셀 행 번호 (헤더 포함 1부터)
	EmployeeID string
	Name       string
	JobType    string
	Division   string
	CenterTeam string
	GroupName  string
	Department string
}

// parseHeaderIndex 한국어/영문 헤더 별칭을 열 인덱스로 매핑한다
func parseHeaderIndex(header []string) map[string]int {
	idx := map[string]int{
		"employee_id": -1,
		"name":        -1,
		"job_type":    -1,
		"division":    -1,
		"center_team": -1,
		"group_name":  -1,
		"department":  -1,
	}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "사번", "employee_id":
			idx["employee_id"] = i
		case "이름", "name":
			idx["name"] = i
		case "직군", "job_type":
			idx["job_type"] = i
		case "본부", "division":
			idx["division"] = i
		case "센터/팀", "center_team":
			idx["center_team"] = i
		case "그룹", "group_name":
			idx["group_name"] = i
		case "실", "department":
			idx["department"] = i
		}
	}
	return idx
}

// parseFile 첫 번째 시트를 행 목록으로 해석한다. 전부 빈 행은 건너뛴다
func (s *importService) parseFile(reader io.Reader) ([]importRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, ErrImportBadFile
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, ErrImportBadFile
	}

	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}

	colIndex := parseHeaderIndex(excelRows[0])
	if colIndex["employee_id"] < 0 || colIndex["name"] < 0 {
		return nil, ErrImportBadHeader
	}

	cell := func(row []string, key string) string {
		idx := colIndex[key]
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var rows []importRow
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		item := importRow{
			Row:        i + 1,
			EmployeeID: cell(row, "employee_id"),
			Name:       cell(row, "name"),
			JobType:    cell(row, "job_type"),
			Division:   cell(row, "division"),
			CenterTeam: cell(row, "center_team"),
			GroupName:  cell(row, "group_name"),
			Department: cell(row, "department"),
		}

		if item.EmployeeID == "" && item.Name == "" && item.JobType == "" &&
			item.Division == "" && item.CenterTeam == "" && item.GroupName == "" && item.Department == "" {
			continue
		}

		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > s.cfg.Import.MaxRows {
		return nil, ErrImportTooManyRows
	}

	return rows, nil
}

// validate 필수 필드 검사. 통과 행과 행별 실패 사유를 나눈다
func validate(rows []importRow) (valid []importRow, errs []dto.ImportError) {
	for _, row := range rows {
		if row.EmployeeID == "" || row.Name == "" {
			errs = append(errs, dto.ImportError{Row: row.Row, Reason: "필수 필드(사번/이름)가 비어 있습니다"})
			continue
		}
		valid = append(valid, row)
	}
	return valid, errs
}

func (s *importService) ImportEmployees(ctx context.Context, reader io.Reader) (*dto.ImportResponse, error) {
	rows, err := s.parseFile(reader)
	if err != nil {
		return nil, err
	}

	valid, rowErrs := validate(rows)

	employees := make([]model.Employee, 0, len(valid))
	for _, row := range valid {
		employees = append(employees, model.Employee{
			EmployeeID: row.EmployeeID,
			Name:       row.Name,
			JobType:    row.JobType,
			Division:   row.Division,
			CenterTeam: row.CenterTeam,
			GroupName:  row.GroupName,
			Department: row.Department,
		})
	}

	if err := s.repo.Employee.Upsert(ctx, employees); err != nil {
		s.logger.Error("구성원 업서트 실패", zap.Int("rows", len(employees)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("구성원 일괄 업로드", zap.Int("succeeded", len(employees)), zap.Int("failed", len(rowErrs)))

	return &dto.ImportResponse{
		Total:     len(rows),
		Succeeded: len(employees),
		Failed:    len(rowErrs),
		Errors:    rowErrs,
	}, nil
}

func (s *importService) ImportAdmins(ctx context.Context, reader io.Reader) (*dto.ImportResponse, error) {
	rows, err := s.parseFile(reader)
	if err != nil {
		return nil, err
	}

	valid, rowErrs := validate(rows)

	// 초기 비밀번호 해시는 배치당 한 번만 계산한다
	// 기존 행에는 적용되지 않는다 (admin_repo.Upsert 가 password_hash 를 갱신하지 않음)
	defaultHash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Auth.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("초기 비밀번호 해시 실패", zap.Error(err))
		return nil, fmt.Errorf("초기 비밀번호 해시 실패: %w", err)
	}

	admins := make([]model.Admin, 0, len(valid))
	for _, row := range valid {
		admins = append(admins, model.Admin{
			EmployeeID:   row.EmployeeID,
			Name:         row.Name,
			PasswordHash: string(defaultHash),
			JobType:      row.JobType,
			Division:     row.Division,
			CenterTeam:   row.CenterTeam,
			GroupName:    row.GroupName,
			Department:   row.Department,
		})
	}

	if err := s.repo.Admin.Upsert(ctx, admins); err != nil {
		s.logger.Error("관리자 업서트 실패", zap.Int("rows", len(admins)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("관리자 일괄 업로드", zap.Int("succeeded", len(admins)), zap.Int("failed", len(rowErrs)))

	return &dto.ImportResponse{
		Total:     len(rows),
		Succeeded: len(admins),
		Failed:    len(rowErrs),
		Errors:    rowErrs,
	}, nil
}
