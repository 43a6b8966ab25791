package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// pendingPrefix — текстовая форма локального id ещё не сохранённой строки.
// Формат совместим с клиентом ("new_<clave>"), но разбирается только здесь.
const pendingPrefix = "new_"

// RowID — идентификатор строки в буфере редактирования.
// Строка либо уже сохранена и несёт настоящий id из БД (Identified),
// либо синтезирована локально и несёт только clave (Pending).
// Маршрутизация insert/update делается по типу, а не по префиксу строки.
type RowID struct {
	id      uuid.UUID
	pending string
}

// Identified создаёт RowID для сохранённой строки.
func Identified(id uuid.UUID) RowID {
	return RowID{id: id}
}

// PendingRow создаёт RowID для синтезированной строки с заданной clave.
func PendingRow(clave string) RowID {
	return RowID{pending: clave}
}

// IsPending сообщает, сохранена ли строка в БД.
func (r RowID) IsPending() bool {
	return r.pending != ""
}

// UUID возвращает настоящий id строки. Для pending-строк ok == false.
func (r RowID) UUID() (uuid.UUID, bool) {
	if r.IsPending() {
		return uuid.Nil, false
	}
	return r.id, true
}

// PendingKey возвращает clave синтезированной строки. Для сохранённых строк ok == false.
func (r RowID) PendingKey() (string, bool) {
	if !r.IsPending() {
		return "", false
	}
	return r.pending, true
}

func (r RowID) String() string {
	if r.IsPending() {
		return pendingPrefix + r.pending
	}
	return r.id.String()
}

// MarshalText — сериализация для JSON-ключей и ответов API.
func (r RowID) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText — единственное место, где разбирается префикс pendingPrefix.
func (r *RowID) UnmarshalText(text []byte) error {
	s := string(text)
	if rest, ok := strings.CutPrefix(s, pendingPrefix); ok {
		if rest == "" {
			return fmt.Errorf("пустая clave в локальном id %q", s)
		}
		*r = PendingRow(rest)
		return nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("некорректный id строки %q: %w", s, err)
	}
	*r = Identified(id)
	return nil
}
