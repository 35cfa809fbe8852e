package logger

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// Log Output: file, stdout, both
	// Mặc định chỉ ghi file để không lẫn với các dòng tiến trình trên console
	Output string `env:"LOG_OUTPUT" envDefault:"file"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"10"`    // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"5"`  // Số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"30"`     // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS" envDefault:"false"` // Nén file cũ

	// Log Paths
	LogPath string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile string `env:"LOG_APP_FILE" envDefault:"provision.log"`
}

// DefaultConfig trả về cấu hình mặc định, override bằng environment variables
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{}
	if err := env.Parse(cfg); err != nil {
		// Giá trị env sai kiểu (ví dụ LOG_MAX_SIZE=abc): quay về mặc định cứng
		cfg = &LogConfig{
			Level:      "info",
			Format:     "text",
			Output:     "file",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			LogPath:    "./logs",
			AppFile:    "provision.log",
		}
	}

	cfg.Level = strings.ToLower(cfg.Level)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Output = strings.ToLower(cfg.Output)
	return cfg
}
