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

type ConfigStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewConfigStorage(db *sqlx.DB, logger *slog.Logger) *ConfigStorage {
	return &ConfigStorage{db: db, logger: logger}
}

// ListConfigEntries возвращает все записи конфигурации.
// Порядок (categoria, clave) фиксирован: при дубликатах clave
// "первое совпадение" на читающей стороне детерминировано.
func (s *ConfigStorage) ListConfigEntries(ctx context.Context) ([]domain.ConfigEntry, error) {
	start := time.Now()

	q := `SELECT * FROM configuracion ORDER BY categoria ASC, clave ASC`

	entries := []domain.ConfigEntry{}
	if err := s.db.SelectContext(ctx, &entries, q); err != nil {
		s.logger.Error("failed to list config entries", "error", err)
		return nil, fmt.Errorf("ошибка при получении конфигурации: %w", err)
	}

	s.logger.Info("config entries listed successfully",
		"count", len(entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return entries, nil
}

// InsertConfigEntry сохраняет новую запись конфигурации
func (s *ConfigStorage) InsertConfigEntry(ctx context.Context, entry *domain.ConfigEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.UpdatedAt = time.Now()

	query := `
	INSERT INTO configuracion (id, clave, valor, tipo, categoria, mostrar, updated_at)
	VALUES (:id, :clave, :valor, :tipo, :categoria, :mostrar, :updated_at)
	`

	if _, err := s.db.NamedExecContext(ctx, query, entry); err != nil {
		s.logger.Error("failed to insert config entry", "clave", entry.Clave, "error", err)
		return fmt.Errorf("ошибка при сохранении записи конфигурации: %w", err)
	}

	s.logger.Info("config entry inserted successfully", "id", entry.ID, "clave", entry.Clave)
	return nil
}

// UpdateConfigValue обновляет только valor записи по её id
func (s *ConfigStorage) UpdateConfigValue(ctx context.Context, id uuid.UUID, valor string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE configuracion SET valor = $1, updated_at = $2 WHERE id = $3`,
		valor, time.Now(), id,
	)
	if err != nil {
		s.logger.Error("failed to update config value", "id", id, "error", err)
		return fmt.Errorf("ошибка при обновлении записи конфигурации: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Warn("config entry not found for update", "id", id)
		return domain.ErrNotFound
	}

	s.logger.Info("config value updated successfully", "id", id)
	return nil
}

// DeleteConfigEntry удаляет запись конфигурации
func (s *ConfigStorage) DeleteConfigEntry(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM configuracion WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete config entry", "id", id, "error", err)
		return fmt.Errorf("ошибка при удалении записи конфигурации: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Warn("config entry not found for delete", "id", id)
		return domain.ErrNotFound
	}

	s.logger.Info("config entry deleted successfully", "id", id)
	return nil
}
