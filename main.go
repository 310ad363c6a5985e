// @title SkillStack API
// @version 1.0
// @description 个人学习技能与学习记录管理服务。

// @host localhost:8000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"skillstack_backend/internal/app"
	"skillstack_backend/internal/config"
	"skillstack_backend/internal/util"
	"skillstack_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	recomputeAll := flag.Bool("recompute-all", false, "重算全部技能的学习时长与状态，完成后退出")
	issueToken := flag.Bool("issue-token", false, "签发访问令牌并输出，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *issueToken {
		if cfg.Auth.Secret == "" {
			log.Fatal("auth.secret is empty, cannot issue token")
		}
		token, err := util.GenerateJWT("owner", cfg.Auth.Secret, cfg.Auth.ExpireHours)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		logger.Log.Info("Database migration finished, exiting")
		application.Close()
		return
	}

	if *recomputeAll {
		n, err := application.RecomputeAll(context.Background())
		application.Close()
		if err != nil {
			logger.Log.Fatal("Recompute failed", zap.Error(err))
		}
		logger.Log.Info("Recompute finished", zap.Int("changed", n))
		return
	}

	if err := application.Run(*configDir); err != nil {
		logger.Log.Fatal("Server stopped", zap.Error(err))
	}
}
