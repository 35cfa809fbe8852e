package database

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/sakethnarayana/glow-haven/config"
	"github.com/sakethnarayana/glow-haven/internal/common"
	"github.com/sakethnarayana/glow-haven/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ClientOptions dựng options kết nối từ cấu hình
func ClientOptions(c *config.Configuration) *options.ClientOptions {
	clientOptions := options.Client().ApplyURI(c.MongoURI).
		SetMaxPoolSize(4).                          // Provisioner chỉ chạy tuần tự, không cần pool lớn
		SetConnectTimeout(c.ConnectTimeout).        // Timeout khi kết nối
		SetServerSelectionTimeout(c.ConnectTimeout) // Không treo lâu khi server không tới được

	if c.MongoTLS {
		clientOptions.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	return clientOptions
}

// GetInstance khởi tạo client MongoDB và kiểm tra kết nối bằng ping.
//
// Tham số:
// - ctx: context của lần chạy
// - c: cấu hình chứa URL kết nối và timeout
//
// Trả về:
// - *mongo.Client: client đã kết nối
// - error: common.ErrConnection nếu không kết nối hoặc không xác thực được
//
// Không retry: một lần provisioning thất bại thì người vận hành chạy lại.
func GetInstance(ctx context.Context, c *config.Configuration) (*mongo.Client, error) {
	if c.MongoURI == "" {
		return nil, common.Wrap(common.ErrConfiguration, fmt.Errorf("database connection URL is empty"), "")
	}

	connectCtx, cancel := context.WithTimeout(ctx, c.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, ClientOptions(c))
	if err != nil {
		return nil, common.Wrap(common.ErrConnection, err, "failed to connect to MongoDB")
	}

	// Kiểm tra kết nối (cũng là lúc xác thực được thực hiện)
	pingCtx, cancelPing := context.WithTimeout(ctx, c.ConnectTimeout)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, common.Wrap(common.ErrConnection, err, "failed to ping MongoDB")
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance đóng kết nối MongoDB
func CloseInstance(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
