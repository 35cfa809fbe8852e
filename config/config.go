package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sakethnarayana/glow-haven/internal/common"
)

// Các chế độ tạo collection
const (
	CreateModeExplicit = "explicit" // Gọi createCollection
	CreateModeProbe    = "probe"    // Chèn document mẫu rồi xóa ngay
)

// Configuration chứa thông tin tĩnh cần thiết để chạy provisioner
type Configuration struct {
	MongoURI             string        `env:"MONGO_URI,required,notEmpty"`                            // URL kết nối MongoDB
	DBName               string        `env:"DB_NAME" envDefault:"beauty_db" validate:"required"`      // Tên cơ sở dữ liệu
	MongoTLS             bool          `env:"MONGO_TLS" envDefault:"true"`                             // Bật TLS khi kết nối
	ConnectTimeout       time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s" validate:"gt=0"`  // Timeout kết nối + ping
	ProvisionTimeout     time.Duration `env:"PROVISION_TIMEOUT" envDefault:"60s" validate:"gt=0"`      // Timeout cho toàn bộ lần chạy
	CollectionCreateMode string        `env:"COLLECTION_CREATE_MODE" envDefault:"explicit" validate:"oneof=explicit probe"`
	ReportFile           string        `env:"PROVISION_REPORT_FILE"` // Ghi report dạng YAML (tùy chọn)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Tìm thư mục config/env, đi dần lên thư mục cha
	for {
		envPath := filepath.Join(currentDir, "config", "env", fmt.Sprintf("%s.env", goEnv))
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	// Fallback: .env tại thư mục hiện tại
	if _, err := os.Stat(".env"); err == nil {
		return ".env"
	}
	return ""
}

// LoadEnvFile nạp file env (nếu có) vào biến môi trường.
// Không ghi đè biến đã có, không có file thì bỏ qua.
func LoadEnvFile() (string, error) {
	envPath := getEnvPath()
	if envPath == "" {
		return "", nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return envPath, common.Wrap(common.ErrConfiguration, err, fmt.Sprintf("cannot load env file %s", envPath))
	}
	return envPath, nil
}

// NewConfig đọc cấu hình từ biến môi trường.
// Thiếu MONGO_URI trả về common.ErrConfiguration.
func NewConfig() (*Configuration, error) {
	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, common.Wrap(common.ErrConfiguration, err, "invalid configuration")
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, common.Wrap(common.ErrConfiguration, err, "invalid configuration")
	}

	return &cfg, nil
}
