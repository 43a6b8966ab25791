// Package syncbuf реализует согласование локального буфера редактирования
// с сохранёнными строками таблицы: diff по значению, маршрутизация
// insert/update по типу идентификатора, параллельная пачка записей
// и полная перезагрузка после неё. Паттерн общий для всех админских
// экранов; конкретная таблица подключается через Adapter.
package syncbuf

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
)

// RowState — состояние строки буфера: clean → dirty → saving → clean|errored.
type RowState int

const (
	// StateClean — значение буфера совпадает с сохранённым.
	StateClean RowState = iota
	// StateDirty — значение буфера разошлось с сохранённым.
	StateDirty
	// StateUnsaved — синтезированная строка, которой ещё нет в БД.
	// Подтип dirty: само её существование в хранилище зависит от сохранения.
	StateUnsaved
	// StateSaving — строка входит в выполняющуюся пачку записи.
	StateSaving
	// StateErrored — последняя запись строки завершилась ошибкой;
	// строка снова dirty, оператор может повторить сохранение.
	StateErrored
)

func (s RowState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	case StateUnsaved:
		return "unsaved"
	case StateSaving:
		return "saving"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// Adapter связывает буфер с конкретной таблицей.
type Adapter[T any] interface {
	// Load возвращает все сохранённые строки в определённом порядке.
	Load(ctx context.Context) ([]T, error)

	// Missing синтезирует pending-строки для ожидаемых, но отсутствующих
	// записей. Может вернуть nil, если таблице синтез не нужен.
	Missing(existing []T) []T

	// RowID возвращает идентификатор строки: Identified для сохранённых,
	// Pending для синтезированных.
	RowID(row T) domain.RowID

	// Value возвращает редактируемое значение строки.
	Value(row T) string

	// Insert сохраняет pending-строку с новым значением; остальные поля
	// (clave, categoria, tipo) берутся из самой синтезированной строки.
	Insert(ctx context.Context, row T, value string) error

	// Update записывает новое значение по настоящему id.
	Update(ctx context.Context, id uuid.UUID, value string) error
}

// RowFailure — исход неудачной записи одной строки.
type RowFailure struct {
	ID  domain.RowID
	Err error
}

// BatchResult — поимённый итог пачки записей. Пачка не транзакционна:
// часть строк могла записаться, часть нет.
type BatchResult struct {
	Inserted int
	Updated  int
	Failed   []RowFailure
}

// OK сообщает, что ни одна строка не завершилась ошибкой.
func (r BatchResult) OK() bool {
	return len(r.Failed) == 0
}

// Buffer — буфер редактирования одного экрана. Не предназначен для
// разделения между запросами: каждый экран владеет своим экземпляром,
// перезагрузка всегда целиком заменяет локальное состояние.
type Buffer[T any] struct {
	adapter Adapter[T]
	logger  *slog.Logger

	rows    []T
	index   map[domain.RowID]T
	orig    map[domain.RowID]string
	buf     map[domain.RowID]string
	errored map[domain.RowID]bool
	saving  bool
}

func New[T any](adapter Adapter[T], logger *slog.Logger) *Buffer[T] {
	return &Buffer[T]{
		adapter: adapter,
		logger:  logger,
		index:   map[domain.RowID]T{},
		orig:    map[domain.RowID]string{},
		buf:     map[domain.RowID]string{},
		errored: map[domain.RowID]bool{},
	}
}

// Load загружает сохранённые строки, дополняет их синтезированными
// pending-строками и целиком заменяет буфер. Единственный механизм,
// которым pending-идентификаторы заменяются настоящими.
func (b *Buffer[T]) Load(ctx context.Context) error {
	rows, err := b.adapter.Load(ctx)
	if err != nil {
		return fmt.Errorf("загрузка строк буфера: %w", err)
	}
	rows = append(rows, b.adapter.Missing(rows)...)

	b.rows = rows
	b.index = make(map[domain.RowID]T, len(rows))
	b.orig = make(map[domain.RowID]string, len(rows))
	b.buf = make(map[domain.RowID]string, len(rows))
	b.errored = map[domain.RowID]bool{}

	for _, row := range rows {
		id := b.adapter.RowID(row)
		b.index[id] = row
		b.orig[id] = b.adapter.Value(row)
		b.buf[id] = b.adapter.Value(row)
	}

	b.logger.Debug("edit buffer loaded", "rows", len(rows))
	return nil
}

// Rows возвращает строки в порядке загрузки (сохранённые, затем синтезированные).
func (b *Buffer[T]) Rows() []T {
	out := make([]T, len(b.rows))
	copy(out, b.rows)
	return out
}

// Set меняет значение строки в буфере. Сохранённые строки не трогаются
// до Save. Неизвестный id игнорируется, ok == false.
func (b *Buffer[T]) Set(id domain.RowID, value string) bool {
	if _, known := b.buf[id]; !known {
		return false
	}
	b.buf[id] = value
	return true
}

// Value возвращает текущее значение буфера для строки.
func (b *Buffer[T]) Value(id domain.RowID) (string, bool) {
	v, ok := b.buf[id]
	return v, ok
}

// Dirty сообщает, разошлась ли строка с сохранённым значением.
// Pending-строки всегда dirty.
func (b *Buffer[T]) Dirty(id domain.RowID) bool {
	if id.IsPending() {
		return true
	}
	return b.buf[id] != b.orig[id]
}

// State возвращает состояние строки.
func (b *Buffer[T]) State(id domain.RowID) RowState {
	switch {
	case b.saving && b.changed(id):
		return StateSaving
	case b.errored[id]:
		return StateErrored
	case id.IsPending():
		return StateUnsaved
	case b.buf[id] != b.orig[id]:
		return StateDirty
	}
	return StateClean
}

// HasChanges сообщает, есть ли что сохранять.
func (b *Buffer[T]) HasChanges() bool {
	for id := range b.buf {
		if b.changed(id) {
			return true
		}
	}
	return false
}

// changed — критерий попадания строки в пачку записи: значение буфера
// отличается от исходного. Нетронутая pending-строка с пустым значением
// не записывается (её появление в БД откладывается до первого реального
// значения), хотя State для неё всё равно unsaved.
func (b *Buffer[T]) changed(id domain.RowID) bool {
	return b.buf[id] != b.orig[id]
}

// Save записывает изменённое подмножество строк: pending уходят в insert,
// остальные в update. Операции по строкам независимы и выполняются
// параллельно, без отката и без упорядочивания; исход каждой строки
// попадает в BatchResult. После завершения пачки буфер целиком
// перезагружается. Между сеансами действует "последняя запись побеждает":
// версионной проверки нет, это документированное ограничение.
func (b *Buffer[T]) Save(ctx context.Context) (BatchResult, error) {
	var changed []domain.RowID
	for id := range b.buf {
		if b.changed(id) {
			changed = append(changed, id)
		}
	}

	// Неизменённые строки вообще не отправляются: объём запросов
	// ограничен числом изменённых строк, не размером таблицы.
	if len(changed) == 0 {
		return BatchResult{}, nil
	}

	b.saving = true
	defer func() { b.saving = false }()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result BatchResult
	)

	// Сохраняем попытки, чтобы после перезагрузки вернуть значения
	// неудачных строк в буфер.
	attempted := make(map[domain.RowID]string, len(changed))

	for _, id := range changed {
		value := b.buf[id]
		attempted[id] = value
		row := b.index[id]

		wg.Add(1)
		go func(id domain.RowID, row T, value string) {
			defer wg.Done()

			var err error
			if realID, ok := id.UUID(); ok {
				err = b.adapter.Update(ctx, realID, value)
			} else {
				err = b.adapter.Insert(ctx, row, value)
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				result.Failed = append(result.Failed, RowFailure{ID: id, Err: err})
			case id.IsPending():
				result.Inserted++
			default:
				result.Updated++
			}
		}(id, row, value)
	}

	wg.Wait()

	for _, f := range result.Failed {
		b.logger.Error("row save failed", "row_id", f.ID.String(), "error", f.Err)
	}

	// Полная перезагрузка возвращает свежее состояние и настоящие id
	// вместо pending; частично записавшаяся пачка корректируется именно здесь.
	if err := b.Load(ctx); err != nil {
		return result, fmt.Errorf("перезагрузка буфера после сохранения: %w", err)
	}

	// Неудачные строки снова становятся dirty с введёнными значениями,
	// чтобы оператор мог повторить сохранение.
	for _, f := range result.Failed {
		if b.Set(f.ID, attempted[f.ID]) {
			b.errored[f.ID] = true
		}
	}

	b.logger.Info("edit buffer saved",
		"inserted", result.Inserted,
		"updated", result.Updated,
		"failed", len(result.Failed),
	)
	return result, nil
}
