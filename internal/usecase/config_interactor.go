package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/DecorApp/internal/core/ports"
	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/GoArmGo/DecorApp/internal/syncbuf"
	"github.com/google/uuid"
)

// configAdapter подключает таблицу configuracion к буферу синхронизации.
type configAdapter struct {
	storage  ports.ConfigStorage
	expected []domain.ExpectedKey
}

func (a *configAdapter) Load(ctx context.Context) ([]domain.ConfigEntry, error) {
	return a.storage.ListConfigEntries(ctx)
}

// Missing синтезирует pending-строки для ожидаемых claves, которых нет
// в выборке. Такая строка не уходит в хранилище как есть: при сохранении
// она маршрутизируется в insert.
func (a *configAdapter) Missing(existing []domain.ConfigEntry) []domain.ConfigEntry {
	present := make(map[string]bool, len(existing))
	for _, e := range existing {
		present[e.Clave] = true
	}

	var synthesized []domain.ConfigEntry
	for _, exp := range a.expected {
		if present[exp.Clave] {
			continue
		}
		synthesized = append(synthesized, domain.ConfigEntry{
			Clave:     exp.Clave,
			Valor:     "",
			Tipo:      exp.Tipo,
			Categoria: exp.Categoria,
			Mostrar:   true,
		})
	}
	return synthesized
}

func (a *configAdapter) RowID(e domain.ConfigEntry) domain.RowID {
	if e.ID == uuid.Nil {
		return domain.PendingRow(e.Clave)
	}
	return domain.Identified(e.ID)
}

func (a *configAdapter) Value(e domain.ConfigEntry) string {
	return e.Valor
}

func (a *configAdapter) Insert(ctx context.Context, row domain.ConfigEntry, value string) error {
	// clave/categoria/tipo переносятся из синтезированной строки
	entry := row
	entry.Valor = value
	entry.Mostrar = true
	return a.storage.InsertConfigEntry(ctx, &entry)
}

func (a *configAdapter) Update(ctx context.Context, id uuid.UUID, value string) error {
	return a.storage.UpdateConfigValue(ctx, id, value)
}

// configInteractor implements ConfigUseCase
type configInteractor struct {
	storage ports.ConfigStorage
	logger  *slog.Logger
}

func NewConfigUseCase(storage ports.ConfigStorage, logger *slog.Logger) ConfigUseCase {
	return &configInteractor{storage: storage, logger: logger}
}

func (uc *configInteractor) rows(buf *syncbuf.Buffer[domain.ConfigEntry], adapter *configAdapter) []ConfigRow {
	entries := buf.Rows()
	rows := make([]ConfigRow, 0, len(entries))
	for _, e := range entries {
		id := adapter.RowID(e)
		// значение берём из буфера: для чистых строк оно совпадает
		// с сохранённым, а для errored несёт введённое оператором
		if v, ok := buf.Value(id); ok {
			e.Valor = v
		}
		rows = append(rows, ConfigRow{
			ID:     id,
			Entry:  e,
			Estado: buf.State(id).String(),
		})
	}
	return rows
}

func (uc *configInteractor) LoadScreen(ctx context.Context) ([]ConfigRow, error) {
	adapter := &configAdapter{storage: uc.storage, expected: domain.ExpectedConfigKeys}
	buf := syncbuf.New[domain.ConfigEntry](adapter, uc.logger)
	if err := buf.Load(ctx); err != nil {
		return nil, fmt.Errorf("usecase: загрузка экрана конфигурации: %w", err)
	}
	return uc.rows(buf, adapter), nil
}

// SaveScreen прогоняет присланный буфер через компонент синхронизации.
// Неизвестные id (например, из другой вкладки после перезагрузки)
// игнорируются; между вкладками действует "последняя запись побеждает".
func (uc *configInteractor) SaveScreen(ctx context.Context, values map[domain.RowID]string) ([]ConfigRow, syncbuf.BatchResult, error) {
	adapter := &configAdapter{storage: uc.storage, expected: domain.ExpectedConfigKeys}
	buf := syncbuf.New[domain.ConfigEntry](adapter, uc.logger)
	if err := buf.Load(ctx); err != nil {
		return nil, syncbuf.BatchResult{}, fmt.Errorf("usecase: загрузка перед сохранением: %w", err)
	}

	for id, valor := range values {
		buf.Set(id, valor)
	}

	result, err := buf.Save(ctx)
	if err != nil {
		return nil, result, fmt.Errorf("usecase: сохранение конфигурации: %w", err)
	}

	return uc.rows(buf, adapter), result, nil
}

// CreateEntry — единичное создание записи (новая социальная сеть).
// Дубликат clave отклоняется на уровне буфера: БД уникальность не форсирует.
func (uc *configInteractor) CreateEntry(ctx context.Context, input ConfigEntryInput) (*domain.ConfigEntry, error) {
	if input.Clave == "" {
		return nil, fmt.Errorf("%w: clave обязательно", domain.ErrValidation)
	}

	existing, err := uc.storage.ListConfigEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: проверка дубликата clave: %w", err)
	}
	for _, e := range existing {
		if e.Clave == input.Clave {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateKey, input.Clave)
		}
	}

	entry := domain.ConfigEntry{
		Clave:     input.Clave,
		Valor:     input.Valor,
		Tipo:      input.Tipo,
		Categoria: input.Categoria,
		Mostrar:   true,
	}
	if entry.Tipo == "" {
		entry.Tipo = "text"
	}
	if entry.Categoria == "" {
		entry.Categoria = "redes_sociales"
	}

	if err := uc.storage.InsertConfigEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("usecase: создание записи конфигурации: %w", err)
	}
	return &entry, nil
}

func (uc *configInteractor) DeleteEntry(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return uc.storage.DeleteConfigEntry(ctx, id)
}
