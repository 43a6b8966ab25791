package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/DecorApp/internal/config"
	"github.com/GoArmGo/DecorApp/internal/database/client"
	"github.com/GoArmGo/DecorApp/internal/handler"
)

type App struct {
	Config        *config.Config
	db            *client.Client
	logger        *slog.Logger
	publicHandler *handler.PublicHandler
	adminHandler  *handler.AdminHandler
}

func NewApp(cfg *config.Config,
	db *client.Client,
	logger *slog.Logger,
	publicHandler *handler.PublicHandler,
	adminHandler *handler.AdminHandler) *App {
	return &App{
		Config:        cfg,
		db:            db,
		logger:        logger,
		publicHandler: publicHandler,
		adminHandler:  adminHandler,
	}
}

func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, a.Config, a.logger, a.publicHandler, a.adminHandler); err != nil {
		return err
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		log.Printf("[app] ошибка при завершении: %v", closeErr)
	}

	log.Println("[app] Завершено корректно.")
	return nil
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
