package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event представляет категорию услуг (таблица eventos).
// Имена колонок оставлены испанскими, как в схеме сайта.
type Event struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Nombre      string    `db:"nombre" json:"nombre"`
	Descripcion string    `db:"descripcion" json:"descripcion"`
	ImagenURL   string    `db:"imagen_url" json:"imagen_url"`
	Orden       int       `db:"orden" json:"orden"`
	Activo      bool      `db:"activo" json:"activo"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Product представляет позицию каталога (таблица productos).
type Product struct {
	ID            uuid.UUID `db:"id" json:"id"`
	EventoID      uuid.UUID `db:"evento_id" json:"evento_id"`
	Titulo        string    `db:"titulo" json:"titulo"`
	Descripcion   string    `db:"descripcion" json:"descripcion"`
	FotoPrincipal string    `db:"foto_principal" json:"foto_principal"`
	Destacado     bool      `db:"destacado" json:"destacado"`
	Activo        bool      `db:"activo" json:"activo"`
	Orden         int       `db:"orden" json:"orden"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// ProductWithEvent — продукт вместе с именем своего события (join).
// Отдельный тип, чтобы форма с join-полем не смешивалась с голым Product.
type ProductWithEvent struct {
	Product
	EventoNombre string `db:"evento_nombre" json:"evento_nombre"`
}

// GalleryPhoto — дополнительное фото продукта (таблица galeria_fotos).
// Обновления по месту нет: замена = удаление + вставка.
type GalleryPhoto struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProductoID uuid.UUID `db:"producto_id" json:"producto_id"`
	URLFoto    string    `db:"url_foto" json:"url_foto"`
	AltText    string    `db:"alt_text" json:"alt_text"`
	Orden      int       `db:"orden" json:"orden"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
