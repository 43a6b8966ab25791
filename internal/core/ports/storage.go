package ports

import (
	"context"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
)

// EventStorage определяет методы для взаимодействия с хранилищем событий (eventos)
type EventStorage interface {
	// ListEvents возвращает события, упорядоченные по (orden, nombre).
	// onlyActive ограничивает выборку активными записями.
	ListEvents(ctx context.Context, onlyActive bool) ([]domain.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	InsertEvent(ctx context.Context, evt *domain.Event) error
	UpdateEvent(ctx context.Context, evt *domain.Event) error
	// DeleteEvent удаляет событие; продукты удаляет каскад на стороне БД.
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// ProductStorage определяет методы для взаимодействия с хранилищем продуктов (productos)
type ProductStorage interface {
	// ListProducts возвращает продукты с именем события (join c eventos),
	// упорядоченные по created_at DESC.
	ListProducts(ctx context.Context, onlyActive bool) ([]domain.ProductWithEvent, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*domain.ProductWithEvent, error)
	InsertProduct(ctx context.Context, prod *domain.Product) error
	UpdateProduct(ctx context.Context, prod *domain.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// GalleryStorage определяет методы для работы с фото галереи (galeria_fotos)
type GalleryStorage interface {
	// ListGalleryPhotos возвращает фото продукта, упорядоченные по orden.
	ListGalleryPhotos(ctx context.Context, productoID uuid.UUID) ([]domain.GalleryPhoto, error)
	// CountGalleryPhotos — текущее число фото; используется как orden при вставке.
	CountGalleryPhotos(ctx context.Context, productoID uuid.UUID) (int, error)
	InsertGalleryPhoto(ctx context.Context, photo *domain.GalleryPhoto) error
	DeleteGalleryPhoto(ctx context.Context, id uuid.UUID) error
}

// ConfigStorage определяет методы для работы с конфигурацией сайта (configuracion)
type ConfigStorage interface {
	// ListConfigEntries возвращает все записи, упорядоченные по (categoria, clave).
	ListConfigEntries(ctx context.Context) ([]domain.ConfigEntry, error)
	InsertConfigEntry(ctx context.Context, entry *domain.ConfigEntry) error
	// UpdateConfigValue обновляет только valor по id.
	UpdateConfigValue(ctx context.Context, id uuid.UUID, valor string) error
	DeleteConfigEntry(ctx context.Context, id uuid.UUID) error
}
