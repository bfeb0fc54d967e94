package app

import (
	"fmt"

	"puzzlekit/internal/config"
	"puzzlekit/internal/logger"
	"puzzlekit/internal/puzzle/service"
)

type App struct {
	Config        *config.Config
	Logger        *logger.Logger
	SolverService service.SolverService
}

// NewApp 加载配置并初始化日志与求解服务
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	log, err := logger.InitLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	solver := service.NewSolverService(cfg.Input, log)

	return &App{
		Config:        cfg,
		Logger:        log,
		SolverService: solver,
	}, nil
}

func (a *App) Close() {
	a.Logger.SyncLogger()
}
