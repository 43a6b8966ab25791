package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConfigEntry — запись конфигурации сайта (таблица configuracion).
// Логический ключ — clave; уникальность в БД не форсируется,
// порядок чтения (categoria, clave) делает "первое совпадение" стабильным.
type ConfigEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Clave     string    `db:"clave" json:"clave"`
	Valor     string    `db:"valor" json:"valor"`
	Tipo      string    `db:"tipo" json:"tipo"`
	Categoria string    `db:"categoria" json:"categoria"`
	Mostrar   bool      `db:"mostrar" json:"mostrar"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ExpectedKey описывает clave, которую публичные страницы ожидают увидеть.
type ExpectedKey struct {
	Clave     string
	Categoria string
	Tipo      string
}

// ExpectedConfigKeys — claves, которые админка синтезирует как pending-строки,
// если их ещё нет в хранилище. Набор и категории совпадают с публичными страницами.
var ExpectedConfigKeys = []ExpectedKey{
	{Clave: "telefono", Categoria: "contacto", Tipo: "text"},
	{Clave: "email", Categoria: "contacto", Tipo: "text"},
	{Clave: "direccion", Categoria: "informacion", Tipo: "text"},
}
