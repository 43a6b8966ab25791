package di

import (
	"fmt"
	"log"

	"github.com/GoArmGo/DecorApp/internal/adapter/cloudinary"
	"github.com/GoArmGo/DecorApp/internal/adapter/storage/minio"
	"github.com/GoArmGo/DecorApp/internal/app"
	"github.com/GoArmGo/DecorApp/internal/config"
	"github.com/GoArmGo/DecorApp/internal/core/ports"
	"github.com/GoArmGo/DecorApp/internal/database/client"
	"github.com/GoArmGo/DecorApp/internal/database/storage"
	"github.com/GoArmGo/DecorApp/internal/handler"
	"github.com/GoArmGo/DecorApp/internal/logger"
	"github.com/GoArmGo/DecorApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (миграции прогоняются при подключении)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	eventStorage := storage.NewEventStorage(dbClient.DB, slogger)
	productStorage := storage.NewProductStorage(dbClient.DB, slogger)
	galleryStorage := storage.NewGalleryStorage(dbClient.DB, slogger)
	configStorage := storage.NewConfigStorage(dbClient.DB, slogger)

	// 4. Выбор бэкенда хранения изображений
	var imageStore ports.ImageStore
	switch cfg.ImageBackend {
	case "cloudinary":
		imageStore = cloudinary.NewClient(cfg)
	case "minio":
		imageStore, err = minio.NewMinioClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("неизвестный IMAGE_BACKEND: %q", cfg.ImageBackend)
	}

	// 5. Инициализация бизнес-логики (usecases)
	adminCatalog := usecase.NewAdminCatalogUseCase(eventStorage, productStorage, galleryStorage, imageStore, slogger)
	configUseCase := usecase.NewConfigUseCase(configStorage, slogger)
	publicCatalog := usecase.NewPublicCatalogUseCase(eventStorage, productStorage, galleryStorage, configStorage, slogger)

	// 6. Инициализация HTTP-обработчиков
	publicHandler := handler.NewPublicHandler(publicCatalog, slogger)
	adminHandler := handler.NewAdminHandler(adminCatalog, configUseCase, slogger)

	// 7. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		dbClient,
		slogger,
		publicHandler,
		adminHandler,
	)

	log.Println("[container] Все зависимости успешно инициализированы.")
	return application, nil
}
