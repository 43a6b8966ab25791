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

type EventStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewEventStorage(db *sqlx.DB, logger *slog.Logger) *EventStorage {
	return &EventStorage{db: db, logger: logger}
}

// ListEvents возвращает события, упорядоченные по orden, затем по nombre.
// Записи без явного порядка (orden = 0) тем самым выстраиваются по алфавиту.
func (s *EventStorage) ListEvents(ctx context.Context, onlyActive bool) ([]domain.Event, error) {
	start := time.Now()

	q := `SELECT * FROM eventos`
	if onlyActive {
		q += ` WHERE activo = true`
	}
	q += ` ORDER BY orden ASC, nombre ASC`

	events := []domain.Event{}
	if err := s.db.SelectContext(ctx, &events, q); err != nil {
		s.logger.Error("failed to list events", "only_active", onlyActive, "error", err)
		return nil, fmt.Errorf("ошибка при получении списка событий: %w", err)
	}

	s.logger.Info("events listed successfully",
		"count", len(events),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return events, nil
}

// GetEventByID получает событие по ID
func (s *EventStorage) GetEventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var evt domain.Event
	err := s.db.GetContext(ctx, &evt, `SELECT * FROM eventos WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("event not found", "id", id)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get event by id", "id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении события по ID: %w", err)
	}
	return &evt, nil
}

// InsertEvent сохраняет новое событие в базе данных
func (s *EventStorage) InsertEvent(ctx context.Context, evt *domain.Event) error {
	start := time.Now()

	if evt.ID == uuid.Nil {
		evt.ID = uuid.New()
	}
	now := time.Now()
	evt.CreatedAt = now
	evt.UpdatedAt = now

	query := `
	INSERT INTO eventos (id, nombre, descripcion, imagen_url, orden, activo, created_at, updated_at)
	VALUES (:id, :nombre, :descripcion, :imagen_url, :orden, :activo, :created_at, :updated_at)
	`

	if _, err := s.db.NamedExecContext(ctx, query, evt); err != nil {
		s.logger.Error("failed to insert event", "nombre", evt.Nombre, "error", err)
		return fmt.Errorf("ошибка при сохранении события: %w", err)
	}

	s.logger.Info("event inserted successfully",
		"id", evt.ID,
		"nombre", evt.Nombre,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdateEvent обновляет событие по месту
func (s *EventStorage) UpdateEvent(ctx context.Context, evt *domain.Event) error {
	start := time.Now()
	evt.UpdatedAt = time.Now()

	query := `
	UPDATE eventos
	SET nombre = :nombre, descripcion = :descripcion, imagen_url = :imagen_url,
	    orden = :orden, activo = :activo, updated_at = :updated_at
	WHERE id = :id
	`

	res, err := s.db.NamedExecContext(ctx, query, evt)
	if err != nil {
		s.logger.Error("failed to update event", "id", evt.ID, "error", err)
		return fmt.Errorf("ошибка при обновлении события: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Warn("event not found for update", "id", evt.ID)
		return domain.ErrNotFound
	}

	s.logger.Info("event updated successfully",
		"id", evt.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeleteEvent удаляет событие. Зависимые продукты удаляет
// внешний ключ ON DELETE CASCADE, сам код каскад не выполняет.
func (s *EventStorage) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM eventos WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete event", "id", id, "error", err)
		return fmt.Errorf("ошибка при удалении события: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Warn("event not found for delete", "id", id)
		return domain.ErrNotFound
	}

	s.logger.Info("event deleted successfully", "id", id)
	return nil
}
