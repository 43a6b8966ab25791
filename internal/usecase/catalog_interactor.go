package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/GoArmGo/DecorApp/internal/core/ports"
	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
)

// adminCatalog implements AdminCatalogUseCase
type adminCatalog struct {
	events     ports.EventStorage
	products   ports.ProductStorage
	gallery    ports.GalleryStorage
	imageStore ports.ImageStore
	logger     *slog.Logger
}

// NewAdminCatalogUseCase создает новый экземпляр AdminCatalogUseCase,
// принимает реализации портов хранилищ и хранилища изображений
func NewAdminCatalogUseCase(
	events ports.EventStorage,
	products ports.ProductStorage,
	gallery ports.GalleryStorage,
	imageStore ports.ImageStore,
	logger *slog.Logger,
) AdminCatalogUseCase {
	return &adminCatalog{
		events:     events,
		products:   products,
		gallery:    gallery,
		imageStore: imageStore,
		logger:     logger,
	}
}

func (uc *adminCatalog) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := uc.events.ListEvents(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("usecase: список событий: %w", err)
	}
	return events, nil
}

// CreateEvent валидирует форму и вставляет событие с дефолтами схемы.
// При пустом nombre до хранилища дело не доходит.
func (uc *adminCatalog) CreateEvent(ctx context.Context, input EventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre обязательно", domain.ErrValidation)
	}

	evt := domain.Event{
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
		ImagenURL:   input.ImagenURL,
		Orden:       0,
		Activo:      true,
	}
	if input.Orden != nil {
		evt.Orden = *input.Orden
	}
	if input.Activo != nil {
		evt.Activo = *input.Activo
	}

	if err := uc.events.InsertEvent(ctx, &evt); err != nil {
		return nil, fmt.Errorf("usecase: создание события: %w", err)
	}
	return &evt, nil
}

func (uc *adminCatalog) UpdateEvent(ctx context.Context, id uuid.UUID, input EventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre обязательно", domain.ErrValidation)
	}

	current, err := uc.events.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Nombre = input.Nombre
	current.Descripcion = input.Descripcion
	current.ImagenURL = input.ImagenURL
	if input.Orden != nil {
		current.Orden = *input.Orden
	}
	if input.Activo != nil {
		current.Activo = *input.Activo
	}

	if err := uc.events.UpdateEvent(ctx, current); err != nil {
		return nil, fmt.Errorf("usecase: обновление события: %w", err)
	}
	return current, nil
}

func (uc *adminCatalog) DeleteEvent(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return uc.events.DeleteEvent(ctx, id)
}

func (uc *adminCatalog) ListProducts(ctx context.Context) ([]domain.ProductWithEvent, error) {
	products, err := uc.products.ListProducts(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("usecase: список продуктов: %w", err)
	}
	return products, nil
}

// validateProductInput — клиентская валидация формы продукта:
// обязательные поля проверяются до любого сетевого вызова.
func validateProductInput(input ProductInput) error {
	switch {
	case input.EventoID == uuid.Nil:
		return fmt.Errorf("%w: evento_id обязательно", domain.ErrValidation)
	case strings.TrimSpace(input.Titulo) == "":
		return fmt.Errorf("%w: titulo обязательно", domain.ErrValidation)
	case strings.TrimSpace(input.Descripcion) == "":
		return fmt.Errorf("%w: descripcion обязательно", domain.ErrValidation)
	case strings.TrimSpace(input.FotoPrincipal) == "":
		// Продукт не считается готовым к сохранению, пока загрузка
		// изображения не вернула URL.
		return fmt.Errorf("%w: foto_principal обязательно", domain.ErrValidation)
	}
	return nil
}

func (uc *adminCatalog) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	prod := domain.Product{
		EventoID:      input.EventoID,
		Titulo:        input.Titulo,
		Descripcion:   input.Descripcion,
		FotoPrincipal: input.FotoPrincipal,
		Destacado:     false,
		Activo:        true,
	}
	if input.Orden != nil {
		prod.Orden = *input.Orden
	}
	if input.Destacado != nil {
		prod.Destacado = *input.Destacado
	}
	if input.Activo != nil {
		prod.Activo = *input.Activo
	}

	if err := uc.products.InsertProduct(ctx, &prod); err != nil {
		return nil, fmt.Errorf("usecase: создание продукта: %w", err)
	}
	return &prod, nil
}

func (uc *adminCatalog) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	current, err := uc.products.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prod := current.Product
	prod.EventoID = input.EventoID
	prod.Titulo = input.Titulo
	prod.Descripcion = input.Descripcion
	prod.FotoPrincipal = input.FotoPrincipal
	if input.Orden != nil {
		prod.Orden = *input.Orden
	}
	if input.Destacado != nil {
		prod.Destacado = *input.Destacado
	}
	if input.Activo != nil {
		prod.Activo = *input.Activo
	}

	if err := uc.products.UpdateProduct(ctx, &prod); err != nil {
		return nil, fmt.Errorf("usecase: обновление продукта: %w", err)
	}
	return &prod, nil
}

func (uc *adminCatalog) DeleteProduct(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return uc.products.DeleteProduct(ctx, id)
}

// AttachGalleryPhoto привязывает дополнительное фото к уже сохранённому
// продукту. Порядок действий важен: сначала проверка владельца, затем
// загрузка файла, затем вставка строки с orden = текущему числу фото.
func (uc *adminCatalog) AttachGalleryPhoto(ctx context.Context, owner domain.RowID, filename string, reader io.Reader, contentType string) (*domain.GalleryPhoto, error) {
	productoID, ok := owner.UUID()
	if !ok {
		// Продукт ещё не сохранён: фото галереи привязывать не к чему,
		// загрузка даже не начинается.
		return nil, domain.ErrPendingOwner
	}

	if _, err := uc.products.GetProductByID(ctx, productoID); err != nil {
		return nil, err
	}

	url, err := uc.imageStore.UploadImage(ctx, filename, reader, contentType)
	if err != nil {
		return nil, fmt.Errorf("usecase: загрузка фото галереи: %w", err)
	}

	count, err := uc.gallery.CountGalleryPhotos(ctx, productoID)
	if err != nil {
		return nil, fmt.Errorf("usecase: подсчёт фото галереи: %w", err)
	}

	photo := domain.GalleryPhoto{
		ProductoID: productoID,
		URLFoto:    url,
		Orden:      count,
	}
	if err := uc.gallery.InsertGalleryPhoto(ctx, &photo); err != nil {
		return nil, fmt.Errorf("usecase: сохранение фото галереи: %w", err)
	}

	uc.logger.Info("gallery photo attached", "producto_id", productoID, "orden", photo.Orden)
	return &photo, nil
}

func (uc *adminCatalog) ListGalleryPhotos(ctx context.Context, productoID uuid.UUID) ([]domain.GalleryPhoto, error) {
	photos, err := uc.gallery.ListGalleryPhotos(ctx, productoID)
	if err != nil {
		return nil, fmt.Errorf("usecase: фото галереи: %w", err)
	}
	return photos, nil
}

func (uc *adminCatalog) DeleteGalleryPhoto(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return uc.gallery.DeleteGalleryPhoto(ctx, id)
}

// UploadImage — боковой канал загрузки. Ошибка не ретраится: повторная
// попытка инициируется оператором заново.
func (uc *adminCatalog) UploadImage(ctx context.Context, filename string, reader io.Reader, contentType string) (string, error) {
	url, err := uc.imageStore.UploadImage(ctx, filename, reader, contentType)
	if err != nil {
		return "", fmt.Errorf("usecase: загрузка изображения: %w", err)
	}
	return url, nil
}
