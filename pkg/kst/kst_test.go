package kst

import (
	"testing"
	"time"
)

func TestToday_ShiftArithmetic(t *testing.T) {
	// UTC 2025-10-16 14:59 → KST 2025-10-16 23:59
	now := time.Date(2025, 10, 16, 14, 59, 0, 0, time.UTC)
	if got := Today(now); got != "2025-10-16" {
		t.Errorf("Today = %q, want %q", got, "2025-10-16")
	}

	// UTC 15:00 에서 KST 날짜가 넘어간다
	now = time.Date(2025, 10, 16, 15, 0, 0, 0, time.UTC)
	if got := Today(now); got != "2025-10-17" {
		t.Errorf("Today = %q, want %q", got, "2025-10-17")
	}
}

func TestTimestamp_MinuteGranularity(t *testing.T) {
	// UTC 2025-10-16 05:15:59 → KST 2025-10-16 14:15 (초 단위 절삭)
	now := time.Date(2025, 10, 16, 5, 15, 59, 0, time.UTC)
	if got := Timestamp(now); got != "202510161415" {
		t.Errorf("Timestamp = %q, want %q", got, "202510161415")
	}
}

func TestTimestamp_NonUTCHostInput(t *testing.T) {
	// 호스트 로컬 타임존이 무엇이든 UTC 환산 후 시프트하므로 결과가 같아야 한다
	loc := time.FixedZone("UTC+3", 3*60*60)
	utc := time.Date(2025, 12, 31, 20, 30, 0, 0, time.UTC)
	local := utc.In(loc)

	if Timestamp(utc) != Timestamp(local) {
		t.Errorf("Timestamp 가 호스트 타임존에 의존: %q != %q", Timestamp(utc), Timestamp(local))
	}
	// UTC 12-31 20:30 → KST 01-01 05:30 (연도 롤오버)
	if got := Timestamp(utc); got != "202601010530" {
		t.Errorf("Timestamp = %q, want %q", got, "202601010530")
	}
}

func TestNextMidnight(t *testing.T) {
	// KST 2025-10-16 23:59 → 다음 자정은 KST 10-17 00:00 = UTC 10-16 15:00
	now := time.Date(2025, 10, 16, 14, 59, 0, 0, time.UTC)
	want := time.Date(2025, 10, 16, 15, 0, 0, 0, time.UTC)
	if got := NextMidnight(now); !got.Equal(want) {
		t.Errorf("NextMidnight = %v, want %v", got, want)
	}

	if !NextMidnight(now).After(now) {
		t.Error("NextMidnight 는 항상 현재 시각 이후여야 한다")
	}
}
