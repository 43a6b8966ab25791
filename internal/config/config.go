package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	MigrationsPath string        `env:"MIGRATIONS_PATH"`
	ServerPort     string        `env:"SERVER_PORT"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Секрет внешнего провайдера аутентификации; сами сессии живут у него,
	// мы только проверяем подпись токена.
	AuthJWTSecret string `env:"AUTH_JWT_SECRET,required"`

	// Бэкенд хранения изображений: "cloudinary" (внешний хостинг)
	// или "minio" (собственный S3-совместимый бакет).
	ImageBackend string `env:"IMAGE_BACKEND" envDefault:"cloudinary"`

	Cloudinary struct {
		CloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
		APIKey       string `env:"CLOUDINARY_API_KEY"`
		UploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET"`
	}

	// Настройки для MinIO
	Minio struct {
		Endpoint        string `env:"MINIO_ENDPOINT"`
		AccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
		UseSSL          bool   `env:"MINIO_USE_SSL"`
		BucketName      string `env:"MINIO_BUCKET_NAME"`
		Region          string `env:"MINIO_REGION"`
		PublicBaseURL   string `env:"MINIO_PUBLIC_BASE_URL"`
	}
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	// Значения по умолчанию для полей без envDefault
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	// Переменные бэкенда изображений валидируем вручную:
	// required-тег здесь не подходит, набор зависит от выбранного бэкенда.
	switch cfg.ImageBackend {
	case "cloudinary":
		if cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.UploadPreset == "" {
			return nil, fmt.Errorf("для IMAGE_BACKEND=cloudinary обязательны CLOUDINARY_CLOUD_NAME и CLOUDINARY_UPLOAD_PRESET")
		}
	case "minio":
		m := cfg.Minio
		if m.Endpoint == "" || m.AccessKeyID == "" || m.SecretAccessKey == "" || m.BucketName == "" || m.Region == "" {
			return nil, fmt.Errorf("для IMAGE_BACKEND=minio обязательны MINIO_ENDPOINT, MINIO_ACCESS_KEY_ID, MINIO_SECRET_ACCESS_KEY, MINIO_BUCKET_NAME, MINIO_REGION")
		}
	default:
		return nil, fmt.Errorf("неизвестный IMAGE_BACKEND: %q (ожидается cloudinary или minio)", cfg.ImageBackend)
	}

	return &cfg, nil
}
