// Package scheduler KST 자정 틱 스케줄러.
//
// 일일 롤오버 자체는 체크 기록의 (사번, 날짜) 유니크 키에 내재되어 있어
// 명시적 초기화가 필요 없다. 이 훅은 원본 시스템의 자정 크론과 동일하게
// 현재는 로그만 남기며, 향후 명시적 롤오버 로직을 위한 자리다.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jungjoo0/security-checker/pkg/kst"
)

// Hook 자정 틱마다 호출되는 콜백. now 는 틱 발생 시각이다
type Hook func(now time.Time)

// RunDaily KST 자정마다 hook 을 호출하는 루프를 실행한다
// ctx 취소 시 종료된다. 호출부가 고루틴으로 띄운다
func RunDaily(ctx context.Context, logger *zap.Logger, hook Hook) {
	for {
		now := time.Now()
		next := kst.NextMidnight(now)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("일일 스케줄러 종료")
			return
		case tick := <-timer.C:
			logger.Info("일일 보안 체크 초기화 실행", zap.String("kst_date", kst.Today(tick)))
			if hook != nil {
				hook(tick)
			}
		}
	}
}
