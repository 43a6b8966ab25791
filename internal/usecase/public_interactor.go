package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/GoArmGo/DecorApp/internal/core/ports"
	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
)

// publicCatalog implements PublicCatalogUseCase
type publicCatalog struct {
	events   ports.EventStorage
	products ports.ProductStorage
	gallery  ports.GalleryStorage
	config   ports.ConfigStorage
	logger   *slog.Logger
}

func NewPublicCatalogUseCase(
	events ports.EventStorage,
	products ports.ProductStorage,
	gallery ports.GalleryStorage,
	config ports.ConfigStorage,
	logger *slog.Logger,
) PublicCatalogUseCase {
	return &publicCatalog{
		events:   events,
		products: products,
		gallery:  gallery,
		config:   config,
		logger:   logger,
	}
}

// sortEvents применяет правило сортировки публичных списков:
// числовой orden выигрывает, если он вообще проставлен;
// без него список выстраивается по nombre.
func sortEvents(events []domain.Event) {
	hasOrder := false
	for _, e := range events {
		if e.Orden != 0 {
			hasOrder = true
			break
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if hasOrder {
			if events[i].Orden != events[j].Orden {
				return events[i].Orden < events[j].Orden
			}
		}
		return events[i].Nombre < events[j].Nombre
	})
}

func (uc *publicCatalog) ListActiveEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := uc.events.ListEvents(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("usecase: публичный список событий: %w", err)
	}
	sortEvents(events)
	return events, nil
}

func (uc *publicCatalog) GetEventDetail(ctx context.Context, id uuid.UUID) (*domain.Event, []domain.ProductWithEvent, error) {
	evt, err := uc.events.GetEventByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	products, err := uc.ListActiveProducts(ctx, id, "")
	if err != nil {
		return nil, nil, err
	}
	return evt, products, nil
}

// ListActiveProducts фильтрует уже выбранные данные в памяти:
// по событию и по подстроке (titulo или descripcion, без учёта регистра).
func (uc *publicCatalog) ListActiveProducts(ctx context.Context, eventoID uuid.UUID, query string) ([]domain.ProductWithEvent, error) {
	products, err := uc.products.ListProducts(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("usecase: публичный список продуктов: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]domain.ProductWithEvent, 0, len(products))
	for _, p := range products {
		if eventoID != uuid.Nil && p.EventoID != eventoID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Titulo), query) &&
			!strings.Contains(strings.ToLower(p.Descripcion), query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (uc *publicCatalog) GetProductDetail(ctx context.Context, id uuid.UUID) (*domain.ProductWithEvent, []domain.GalleryPhoto, error) {
	prod, err := uc.products.GetProductByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	photos, err := uc.gallery.ListGalleryPhotos(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("usecase: галерея продукта: %w", err)
	}
	return prod, photos, nil
}

// PublicConfig возвращает записи с mostrar = true, сгруппированные по
// categoria. Отсутствие ожидаемой clave здесь никого не смущает:
// публичные страницы обязаны переживать пустую конфигурацию.
func (uc *publicCatalog) PublicConfig(ctx context.Context) (map[string][]domain.ConfigEntry, error) {
	entries, err := uc.config.ListConfigEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: публичная конфигурация: %w", err)
	}

	grouped := map[string][]domain.ConfigEntry{}
	for _, e := range entries {
		if !e.Mostrar {
			continue
		}
		grouped[e.Categoria] = append(grouped[e.Categoria], e)
	}
	return grouped, nil
}
