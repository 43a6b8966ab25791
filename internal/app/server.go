package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/DecorApp/internal/config"
	"github.com/GoArmGo/DecorApp/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// runServer запускает HTTP сервер: публичное API и защищённую админку.
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	publicHandler *handler.PublicHandler,
	adminHandler *handler.AdminHandler,
) error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(handler.RequestLogger(logger))

	// Публичные страницы: только чтение, без аутентификации.
	r.Route("/api", func(r chi.Router) {
		r.Get("/eventos", publicHandler.ListEvents)
		r.Get("/eventos/{id}", publicHandler.GetEvent)
		r.Get("/productos", publicHandler.ListProducts)
		r.Get("/productos/{id}", publicHandler.GetProduct)
		r.Get("/configuracion", publicHandler.GetConfig)
	})

	// Админка: каждый запрос проверяется по подписи токена провайдера.
	r.Route("/admin", func(r chi.Router) {
		r.Use(handler.AdminAuth(cfg.AuthJWTSecret, logger))

		r.Get("/session", adminHandler.Session)

		r.Get("/eventos", adminHandler.ListEvents)
		r.Post("/eventos", adminHandler.CreateEvent)
		r.Put("/eventos/{id}", adminHandler.UpdateEvent)
		r.Delete("/eventos/{id}", adminHandler.DeleteEvent)

		r.Get("/productos", adminHandler.ListProducts)
		r.Post("/productos", adminHandler.CreateProduct)
		r.Put("/productos/{id}", adminHandler.UpdateProduct)
		r.Delete("/productos/{id}", adminHandler.DeleteProduct)

		r.Get("/productos/{id}/galeria", adminHandler.ListGalleryPhotos)
		r.Post("/productos/{id}/galeria", adminHandler.AttachGalleryPhoto)
		r.Delete("/galeria/{id}", adminHandler.DeleteGalleryPhoto)

		r.Get("/configuracion", adminHandler.GetConfigScreen)
		r.Post("/configuracion/save", adminHandler.SaveConfigScreen)
		r.Post("/configuracion", adminHandler.CreateConfigEntry)
		r.Delete("/configuracion/{id}", adminHandler.DeleteConfigEntry)

		r.Post("/uploads", adminHandler.Upload)
	})

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	go func() {
		log.Printf("Сервер запущен на %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка при запуске сервера: %v", err)
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	log.Println("Получен сигнал завершения. Завершаем работу сервера...")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Println("Сервер успешно завершил работу.")
	return nil
}
