package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GalleryStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewGalleryStorage(db *sqlx.DB, logger *slog.Logger) *GalleryStorage {
	return &GalleryStorage{db: db, logger: logger}
}

// ListGalleryPhotos возвращает фото продукта в порядке добавления
func (s *GalleryStorage) ListGalleryPhotos(ctx context.Context, productoID uuid.UUID) ([]domain.GalleryPhoto, error) {
	q := `SELECT * FROM galeria_fotos WHERE producto_id = $1 ORDER BY orden ASC, created_at ASC`

	photos := []domain.GalleryPhoto{}
	if err := s.db.SelectContext(ctx, &photos, q, productoID); err != nil {
		s.logger.Error("failed to list gallery photos", "producto_id", productoID, "error", err)
		return nil, fmt.Errorf("ошибка при получении фото галереи: %w", err)
	}
	return photos, nil
}

// CountGalleryPhotos — текущее число фото продукта.
// Используется как orden новой записи: порядок append-only.
func (s *GalleryStorage) CountGalleryPhotos(ctx context.Context, productoID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM galeria_fotos WHERE producto_id = $1`, productoID)
	if err != nil {
		s.logger.Error("failed to count gallery photos", "producto_id", productoID, "error", err)
		return 0, fmt.Errorf("ошибка при подсчёте фото галереи: %w", err)
	}
	return count, nil
}

// InsertGalleryPhoto сохраняет фото галереи
func (s *GalleryStorage) InsertGalleryPhoto(ctx context.Context, photo *domain.GalleryPhoto) error {
	start := time.Now()

	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	photo.CreatedAt = time.Now()

	query := `
	INSERT INTO galeria_fotos (id, producto_id, url_foto, alt_text, orden, created_at)
	VALUES (:id, :producto_id, :url_foto, :alt_text, :orden, :created_at)
	`

	if _, err := s.db.NamedExecContext(ctx, query, photo); err != nil {
		s.logger.Error("failed to insert gallery photo", "producto_id", photo.ProductoID, "error", err)
		return fmt.Errorf("ошибка при сохранении фото галереи: %w", err)
	}

	s.logger.Info("gallery photo inserted successfully",
		"id", photo.ID,
		"producto_id", photo.ProductoID,
		"orden", photo.Orden,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeleteGalleryPhoto удаляет одно фото галереи
func (s *GalleryStorage) DeleteGalleryPhoto(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM galeria_fotos WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete gallery photo", "id", id, "error", err)
		return fmt.Errorf("ошибка при удалении фото галереи: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Warn("gallery photo not found for delete", "id", id)
		return domain.ErrNotFound
	}

	s.logger.Info("gallery photo deleted successfully", "id", id)
	return nil
}
