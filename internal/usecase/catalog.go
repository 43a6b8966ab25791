package usecase

import (
	"context"
	"io"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/GoArmGo/DecorApp/internal/syncbuf"
	"github.com/google/uuid"
)

// EventInput — поля формы события. Указатели отличают "поле не прислали"
// от нулевого значения: отсутствующим полям вставка подставляет дефолты
// схемы (activo = true, orden = 0).
type EventInput struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	ImagenURL   string `json:"imagen_url"`
	Orden       *int   `json:"orden"`
	Activo      *bool  `json:"activo"`
}

// ProductInput — поля формы продукта. Дефолты: destacado = false, activo = true.
type ProductInput struct {
	EventoID      uuid.UUID `json:"evento_id"`
	Titulo        string    `json:"titulo"`
	Descripcion   string    `json:"descripcion"`
	FotoPrincipal string    `json:"foto_principal"`
	Orden         *int      `json:"orden"`
	Destacado     *bool     `json:"destacado"`
	Activo        *bool     `json:"activo"`
}

// ConfigEntryInput — форма единичного создания записи конфигурации
// (добавление новой социальной сети из админки).
type ConfigEntryInput struct {
	Clave     string `json:"clave"`
	Valor     string `json:"valor"`
	Categoria string `json:"categoria"`
	Tipo      string `json:"tipo"`
}

// ConfigRow — строка экрана конфигурации: запись плюс её идентификатор
// в буфере (настоящий id либо локальный pending) и состояние строки.
type ConfigRow struct {
	ID     domain.RowID       `json:"id"`
	Entry  domain.ConfigEntry `json:"entry"`
	Estado string             `json:"estado"`
}

// AdminCatalogUseCase — бизнес-логика админских CRUD-экранов каталога.
// Валидация обязательных полей выполняется до любого обращения к хранилищу;
// удаление требует явного подтверждения.
type AdminCatalogUseCase interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, input EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, input EventInput) (*domain.Event, error)
	// DeleteEvent без confirmed возвращает ErrConfirmationRequired и ничего
	// не пишет; каскадное удаление продуктов выполняет БД.
	DeleteEvent(ctx context.Context, id uuid.UUID, confirmed bool) error

	ListProducts(ctx context.Context) ([]domain.ProductWithEvent, error)
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID, confirmed bool) error

	// AttachGalleryPhoto загружает файл в хранилище изображений и привязывает
	// URL к продукту с orden = текущему числу фото. Pending-владелец
	// отклоняется до загрузки: сначала нужно сохранить продукт.
	AttachGalleryPhoto(ctx context.Context, owner domain.RowID, filename string, reader io.Reader, contentType string) (*domain.GalleryPhoto, error)
	ListGalleryPhotos(ctx context.Context, productoID uuid.UUID) ([]domain.GalleryPhoto, error)
	DeleteGalleryPhoto(ctx context.Context, id uuid.UUID, confirmed bool) error

	// UploadImage — боковой канал: файл уходит хостингу изображений,
	// назад возвращается только публичный URL.
	UploadImage(ctx context.Context, filename string, reader io.Reader, contentType string) (string, error)
}

// ConfigUseCase — экран конфигурации поверх буфера синхронизации.
type ConfigUseCase interface {
	// LoadScreen возвращает сохранённые записи, упорядоченные по
	// (categoria, clave), плюс синтезированные pending-строки для
	// ожидаемых отсутствующих claves.
	LoadScreen(ctx context.Context) ([]ConfigRow, error)

	// SaveScreen принимает полный буфер экрана (id строки → valor),
	// выполняет diff → insert/update → reload и возвращает свежие строки
	// вместе с поимённым итогом пачки.
	SaveScreen(ctx context.Context, values map[domain.RowID]string) ([]ConfigRow, syncbuf.BatchResult, error)

	// CreateEntry — единичное создание; дубликат clave отклоняется.
	CreateEntry(ctx context.Context, input ConfigEntryInput) (*domain.ConfigEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID, confirmed bool) error
}

// PublicCatalogUseCase — публичные страницы: только чтение, один снимок
// данных на запрос, никакого состояния.
type PublicCatalogUseCase interface {
	// ListActiveEvents: при наличии явного порядка сортирует по orden,
	// иначе по nombre.
	ListActiveEvents(ctx context.Context) ([]domain.Event, error)
	// GetEventDetail — событие и его активные продукты.
	GetEventDetail(ctx context.Context, id uuid.UUID) (*domain.Event, []domain.ProductWithEvent, error)
	// ListActiveProducts фильтрует по событию и подстроке запроса в памяти,
	// без проталкивания условий в SQL.
	ListActiveProducts(ctx context.Context, eventoID uuid.UUID, query string) ([]domain.ProductWithEvent, error)
	// GetProductDetail — продукт с именем события и фотографиями галереи.
	GetProductDetail(ctx context.Context, id uuid.UUID) (*domain.ProductWithEvent, []domain.GalleryPhoto, error)
	// PublicConfig — только записи с mostrar = true, сгруппированные по categoria.
	PublicConfig(ctx context.Context) (map[string][]domain.ConfigEntry, error)
}
