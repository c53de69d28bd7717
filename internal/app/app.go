package app

import (
	"go-clocker/internal/config"
	"go-clocker/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the stores, migrates the schema and mounts every module
// on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("database schema migrated")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	closeAll := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, logger); err != nil {
		closeAll()
		return nil, err
	}
	return closeAll, nil
}
