package main

import (
	"context"
	"fmt"

	"github.com/sakethnarayana/glow-haven/config"
	"github.com/sakethnarayana/glow-haven/internal/database"
	"github.com/sakethnarayana/glow-haven/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// initLogger khởi tạo logger, cấu hình đọc từ biến môi trường LOG_*
func initLogger() error {
	if err := logger.Init(nil); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.GetAppLogger().Debug("Logger system initialized successfully")
	return nil
}

// initEnv nạp file env (nếu có) trước khi khởi tạo logger, để LOG_* trong file có hiệu lực
func initEnv() (string, error) {
	return config.LoadEnvFile()
}

// initConfig đọc cấu hình từ biến môi trường
func initConfig(envPath string) (*config.Configuration, error) {
	log := logger.GetAppLogger()
	if envPath != "" {
		log.WithField("env_file", envPath).Info("Loaded env file")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"database":    cfg.DBName,
		"tls":         cfg.MongoTLS,
		"create_mode": cfg.CollectionCreateMode,
	}).Info("Configuration loaded")
	return cfg, nil
}

// initDatabase kết nối MongoDB và trả về database đích
func initDatabase(ctx context.Context, cfg *config.Configuration) (*mongo.Client, *database.MongoStore, error) {
	client, err := database.GetInstance(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, database.NewMongoStore(client.Database(cfg.DBName), cfg.CollectionCreateMode), nil
}
