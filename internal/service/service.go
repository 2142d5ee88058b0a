package service

import (
	"go.uber.org/zap"

	"github.com/jungjoo0/security-checker/config"
	"github.com/jungjoo0/security-checker/internal/repository"
	"github.com/jungjoo0/security-checker/pkg/jwt"
	"github.com/jungjoo0/security-checker/pkg/redis"
)

// Service 모든 Service 의 집합 진입점
type Service struct {
	Auth      AuthService
	Check     CheckService
	Dashboard DashboardService
	Export    ExportService
	Import    ImportService
}

// NewService Service 집합 생성
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Check:     NewCheckService(repo, logger),
		Dashboard: NewDashboardService(repo, logger),
		Export:    NewExportService(repo, logger),
		Import:    NewImportService(cfg, repo, logger),
	}
}
