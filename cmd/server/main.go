package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jungjoo0/security-checker/config"
	"github.com/jungjoo0/security-checker/internal/api/handler"
	"github.com/jungjoo0/security-checker/internal/api/router"
	"github.com/jungjoo0/security-checker/internal/repository"
	"github.com/jungjoo0/security-checker/internal/scheduler"
	"github.com/jungjoo0/security-checker/internal/service"
	"github.com/jungjoo0/security-checker/pkg/database"
	"github.com/jungjoo0/security-checker/pkg/jwt"
	applogger "github.com/jungjoo0/security-checker/pkg/logger"
	"github.com/jungjoo0/security-checker/pkg/redis"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로거 초기화
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("애플리케이션 기동 중...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 데이터베이스 연결
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("데이터베이스 연결 실패", zap.Error(err))
	}

	// 3.1 마이그레이션 실행
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("sql.DB 획득 실패", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("마이그레이션 실패", zap.Error(err))
	}

	// 3.2 슈퍼 관리자 시드
	if err := database.EnsureSuperAdmin(db, cfg.Auth.SuperAdminPassword, logger); err != nil {
		logger.Fatal("슈퍼 관리자 시드 실패", zap.Error(err))
	}

	// 4. Redis 연결 (선택: 실패 시 블랙리스트/레이트리밋 없이 기동)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis 연결 실패, 토큰 블랙리스트/레이트리밋 비활성", zap.Error(err))
		rdb = nil
	}

	// 5. JWT 관리자 초기화
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 의존성 주입: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. 라우터 초기화
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. 일일 스케줄러 (KST 자정 틱; 현재는 로그만 남긴다)
	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()
	go scheduler.RunDaily(schedCtx, logger, nil)

	// 9. HTTP 서버 기동 (그레이스풀 셧다운)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 서버 기동", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 서버 비정상 종료", zap.Error(err))
		}
	}()

	// 10. 시스템 시그널 대기, 그레이스풀 셧다운
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("종료 시그널 수신, 그레이스풀 셧다운 시작", zap.String("signal", sig.String()))
	schedCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 중 오류", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("서버가 종료되었습니다")
}
