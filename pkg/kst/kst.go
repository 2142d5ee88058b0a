package kst

import "time"

// KST 날짜/타임스탬프 연산 유틸리티.
//
// 원본 시스템과의 문자열 호환을 위해 타임존 변환 대신
// "UTC 시각 + 9시간" 시프트 연산을 그대로 사용한다.
// time.LoadLocation("Asia/Seoul") 로 대체하면 UTC 가 아닌 호스트에서
// 저장 문자열이 달라지므로 교체 금지.

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "200601021504"
)

// shift UTC 기준 시각을 9시간 앞으로 민 값을 반환한다.
func shift(now time.Time) time.Time {
	return now.UTC().Add(9 * time.Hour)
}

// Today 해당 시각의 KST 달력 날짜("2006-01-02")를 반환한다.
// 체크 기록의 유니크 키(check_date)에 그대로 사용된다.
func Today(now time.Time) string {
	return shift(now).Format(dateLayout)
}

// Timestamp 해당 시각의 KST 년월일시분("YYYYMMDDHHmm")을 반환한다.
// 체크 시각(check_time)과 엑셀 다운로드 파일명에 사용된다.
func Timestamp(now time.Time) string {
	return shift(now).Format(timestampLayout)
}

// NextMidnight 해당 시각 이후 첫 KST 자정의 UTC 시각을 반환한다.
// 일일 스케줄러가 다음 틱 대기 시간 계산에 사용한다.
func NextMidnight(now time.Time) time.Time {
	shifted := shift(now)
	next := time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC).
		Add(24 * time.Hour)
	return next.Add(-9 * time.Hour)
}
