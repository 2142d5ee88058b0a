// Package scope 관리자 조회 범위 산정.
//
// 관리자의 사번/직군/조직 경로로부터 "어느 구성원까지 볼 수 있는가"를
// 구조화된 술어(Predicate)로 계산한다. 대시보드와 엑셀 다운로드가
// 반드시 같은 Resolve 를 거치므로 화면과 내보내기의 가시 범위가
// 어긋날 수 없다.
package scope

import "strings"

// All 해당 조직 단계에 제약을 걸지 않는다는 센티널 값
const All = "전체"

// SuperAdminID 예약된 슈퍼 관리자 사번
const SuperAdminID = "admin"

// Field 구성원 조직 필드 식별자. 값은 employees 테이블 컬럼명과 일치한다
type Field string

const (
	FieldDivision   Field = "division"
	FieldCenterTeam Field = "center_team"
	FieldGroupName  Field = "group_name"
	FieldDepartment Field = "department"
)

// Constraint 단일 조직 필드에 대한 동등 제약
type Constraint struct {
	Field Field
	Value string
}

// Predicate 동등 제약의 논리곱. 비어 있으면 전체 구성원과 일치한다
type Predicate []Constraint

// Unrestricted 전체 구성원을 볼 수 있는 술어인지 여부
func (p Predicate) Unrestricted() bool { return len(p) == 0 }

// Matches 구성원의 조직 필드 값이 술어를 만족하는지 평가한다
// 저장소 구현과 무관하게 동작해야 하므로 값 조회 함수를 받는다
func (p Predicate) Matches(get func(Field) string) bool {
	for _, c := range p {
		if get(c.Field) != c.Value {
			return false
		}
	}
	return true
}

// Class 조회 범위 등급
type Class int

const (
	// ClassFull 전체 조회: 슈퍼 관리자, 대표이사, 보안담당
	ClassFull Class = iota
	// ClassDivisionHead 본부장: 본부 단위
	ClassDivisionHead
	// ClassCenterHead 센터장/팀장: 본부 + 센터/팀 단위
	ClassCenterHead
	// ClassGroupHead 그룹장: 본부 + 센터/팀 + 그룹 단위
	ClassGroupHead
	// ClassDepartmentHead 실장: 본부 + 센터/팀 + 실 단위
	ClassDepartmentHead
	// ClassDefault 직군 키워드 불일치: 본부 + 센터/팀 단위
	ClassDefault
)

// Subject 범위 산정 대상 관리자의 속성
// 저장소 모델과 분리해 두어 순수 함수로 검증할 수 있다
type Subject struct {
	EmployeeID string
	JobTitle   string
	Division   string
	CenterTeam string
	GroupName  string
	Department string
}

// classRule 직군 키워드 → 제약 대상 필드 규칙
// 직군 문자열에 여러 키워드가 섞일 수 있으므로 선순위 규칙이 이긴다
type classRule struct {
	class    Class
	keywords []string
	fields   []Field
}

// 규칙 테이블. 순서가 우선순위다 — 절대 재정렬하지 말 것
var classRules = []classRule{
	{ClassFull, []string{"대표이사", "보안담당"}, nil},
	{ClassDivisionHead, []string{"본부장"}, []Field{FieldDivision}},
	{ClassCenterHead, []string{"센터장", "팀장"}, []Field{FieldDivision, FieldCenterTeam}},
	{ClassGroupHead, []string{"그룹장"}, []Field{FieldDivision, FieldCenterTeam, FieldGroupName}},
	{ClassDepartmentHead, []string{"실장"}, []Field{FieldDivision, FieldCenterTeam, FieldDepartment}},
}

var defaultFields = []Field{FieldDivision, FieldCenterTeam}

// Classify 관리자의 조회 범위 등급을 판정한다. 첫 번째로 일치하는 등급이 적용된다
func Classify(s Subject) Class {
	if s.EmployeeID == SuperAdminID {
		return ClassFull
	}
	for _, rule := range classRules {
		for _, kw := range rule.keywords {
			if strings.Contains(s.JobTitle, kw) {
				return rule.class
			}
		}
	}
	return ClassDefault
}

// Resolve 관리자의 속성으로부터 구성원 필터 술어를 계산한다
// 순수 함수: 같은 입력이면 항상 같은 술어를 돌려준다
//
// 관리자의 해당 필드가 비어 있거나 "전체"이면 그 단계의 제약을 생략한다.
// 그룹장/실장의 그룹·실 필드가 빈 경우 센터/팀 수준까지 넓어지는 동작도
// 이 규칙의 결과이며 원본과 동일하게 유지한다.
func Resolve(s Subject) Predicate {
	class := Classify(s)
	if class == ClassFull {
		return nil
	}

	fields := defaultFields
	for _, rule := range classRules {
		if rule.class == class {
			fields = rule.fields
			break
		}
	}

	values := map[Field]string{
		FieldDivision:   s.Division,
		FieldCenterTeam: s.CenterTeam,
		FieldGroupName:  s.GroupName,
		FieldDepartment: s.Department,
	}

	var pred Predicate
	for _, f := range fields {
		v := values[f]
		if v == "" || v == All {
			continue
		}
		pred = append(pred, Constraint{Field: f, Value: v})
	}
	return pred
}
