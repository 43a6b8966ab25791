package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProductStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewProductStorage(db *sqlx.DB, logger *slog.Logger) *ProductStorage {
	return &ProductStorage{db: db, logger: logger}
}

// ListProducts возвращает продукты вместе с именем события (join),
// новые сверху. Единственное место, где появляется форма ProductWithEvent.
func (s *ProductStorage) ListProducts(ctx context.Context, onlyActive bool) ([]domain.ProductWithEvent, error) {
	start := time.Now()

	q := `
	SELECT p.id, p.evento_id, p.titulo, p.descripcion, p.foto_principal,
	       p.destacado, p.activo, p.orden, p.created_at, p.updated_at,
	       e.nombre AS evento_nombre
	FROM productos p
	JOIN eventos e ON e.id = p.evento_id`
	if onlyActive {
		q += ` WHERE p.activo = true`
	}
	q += ` ORDER BY p.created_at DESC`

	products := []domain.ProductWithEvent{}
	if err := s.db.SelectContext(ctx, &products, q); err != nil {
		s.logger.Error("failed to list products", "only_active", onlyActive, "error", err)
		return nil, fmt.Errorf("ошибка при получении списка продуктов: %w", err)
	}

	s.logger.Info("products listed successfully",
		"count", len(products),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return products, nil
}

// GetProductByID получает продукт с именем события по ID
func (s *ProductStorage) GetProductByID(ctx context.Context, id uuid.UUID) (*domain.ProductWithEvent, error) {
	q := `
	SELECT p.id, p.evento_id, p.titulo, p.descripcion, p.foto_principal,
	       p.destacado, p.activo, p.orden, p.created_at, p.updated_at,
	       e.nombre AS evento_nombre
	FROM productos p
	JOIN eventos e ON e.id = p.evento_id
	WHERE p.id = $1
	LIMIT 1`

	var prod domain.ProductWithEvent
	err := s.db.GetContext(ctx, &prod, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("product not found", "id", id)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get product by id", "id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении продукта по ID: %w", err)
	}
	return &prod, nil
}

// InsertProduct сохраняет новый продукт в базе данных
func (s *ProductStorage) InsertProduct(ctx context.Context, prod *domain.Product) error {
	start := time.Now()

	if prod.ID == uuid.Nil {
		prod.ID = uuid.New()
	}
	now := time.Now()
	prod.CreatedAt = now
	prod.UpdatedAt = now

	query := `
	INSERT INTO productos (id, evento_id, titulo, descripcion, foto_principal, destacado, activo, orden, created_at, updated_at)
	VALUES (:id, :evento_id, :titulo, :descripcion, :foto_principal, :destacado, :activo, :orden, :created_at, :updated_at)
	`

	if _, err := s.db.NamedExecContext(ctx, query, prod); err != nil {
		s.logger.Error("failed to insert product", "titulo", prod.Titulo, "error", err)
		return fmt.Errorf("ошибка при сохранении продукта: %w", err)
	}

	s.logger.Info("product inserted successfully",
		"id", prod.ID,
		"titulo", prod.Titulo,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdateProduct обновляет продукт по месту
func (s *ProductStorage) UpdateProduct(ctx context.Context, prod *domain.Product) error {
	start := time.Now()
	prod.UpdatedAt = time.Now()

	query := `
	UPDATE productos
	SET evento_id = :evento_id, titulo = :titulo, descripcion = :descripcion,
	    foto_principal = :foto_principal, destacado = :destacado, activo = :activo,
	    orden = :orden, updated_at = :updated_at
	WHERE id = :id
	`

	res, err := s.db.NamedExecContext(ctx, query, prod)
	if err != nil {
		s.logger.Error("failed to update product", "id", prod.ID, "error", err)
		return fmt.Errorf("ошибка при обновлении продукта: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Warn("product not found for update", "id", prod.ID)
		return domain.ErrNotFound
	}

	s.logger.Info("product updated successfully",
		"id", prod.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeleteProduct удаляет продукт; фото галереи удаляет каскад БД.
func (s *ProductStorage) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete product", "id", id, "error", err)
		return fmt.Errorf("ошибка при удалении продукта: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Warn("product not found for delete", "id", id)
		return domain.ErrNotFound
	}

	s.logger.Info("product deleted successfully", "id", id)
	return nil
}
