package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
)

// Хранилища в памяти для тестов бизнес-логики. Ошибки и счётчики вызовов
// управляются поимённо, без моков.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeEventStorage struct {
	events  []domain.Event
	listErr error

	inserts int
	updates int
	deletes int
}

func (s *fakeEventStorage) ListEvents(ctx context.Context, onlyActive bool) ([]domain.Event, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Event, 0, len(s.events))
	for _, e := range s.events {
		if onlyActive && !e.Activo {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeEventStorage) GetEventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			evt := e
			return &evt, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeEventStorage) InsertEvent(ctx context.Context, evt *domain.Event) error {
	s.inserts++
	if evt.ID == uuid.Nil {
		evt.ID = uuid.New()
	}
	s.events = append(s.events, *evt)
	return nil
}

func (s *fakeEventStorage) UpdateEvent(ctx context.Context, evt *domain.Event) error {
	s.updates++
	for i, e := range s.events {
		if e.ID == evt.ID {
			s.events[i] = *evt
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *fakeEventStorage) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	s.deletes++
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeProductStorage struct {
	products []domain.ProductWithEvent
	listErr  error

	inserts int
	updates int
	deletes int
}

func (s *fakeProductStorage) ListProducts(ctx context.Context, onlyActive bool) ([]domain.ProductWithEvent, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.ProductWithEvent, 0, len(s.products))
	for _, p := range s.products {
		if onlyActive && !p.Activo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeProductStorage) GetProductByID(ctx context.Context, id uuid.UUID) (*domain.ProductWithEvent, error) {
	for _, p := range s.products {
		if p.ID == id {
			prod := p
			return &prod, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeProductStorage) InsertProduct(ctx context.Context, prod *domain.Product) error {
	s.inserts++
	if prod.ID == uuid.Nil {
		prod.ID = uuid.New()
	}
	s.products = append(s.products, domain.ProductWithEvent{Product: *prod})
	return nil
}

func (s *fakeProductStorage) UpdateProduct(ctx context.Context, prod *domain.Product) error {
	s.updates++
	for i, p := range s.products {
		if p.ID == prod.ID {
			s.products[i].Product = *prod
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *fakeProductStorage) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	s.deletes++
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeGalleryStorage struct {
	photos  []domain.GalleryPhoto
	inserts int
	deletes int
}

func (s *fakeGalleryStorage) ListGalleryPhotos(ctx context.Context, productoID uuid.UUID) ([]domain.GalleryPhoto, error) {
	var out []domain.GalleryPhoto
	for _, p := range s.photos {
		if p.ProductoID == productoID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeGalleryStorage) CountGalleryPhotos(ctx context.Context, productoID uuid.UUID) (int, error) {
	count := 0
	for _, p := range s.photos {
		if p.ProductoID == productoID {
			count++
		}
	}
	return count, nil
}

func (s *fakeGalleryStorage) InsertGalleryPhoto(ctx context.Context, photo *domain.GalleryPhoto) error {
	s.inserts++
	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	s.photos = append(s.photos, *photo)
	return nil
}

func (s *fakeGalleryStorage) DeleteGalleryPhoto(ctx context.Context, id uuid.UUID) error {
	s.deletes++
	for i, p := range s.photos {
		if p.ID == id {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeConfigStorage защищён мьютексом: пачка записей буфера синхронизации
// обращается к хранилищу из нескольких горутин.
type fakeConfigStorage struct {
	mu      sync.Mutex
	entries []domain.ConfigEntry
	listErr error
	failOn  map[string]error // clave → ошибка записи

	inserts int
	updates int
	deletes int
}

func (s *fakeConfigStorage) ListConfigEntries(ctx context.Context) ([]domain.ConfigEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.ConfigEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *fakeConfigStorage) InsertConfigEntry(ctx context.Context, entry *domain.ConfigEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failOn[entry.Clave]; err != nil {
		return err
	}
	s.inserts++
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *fakeConfigStorage) UpdateConfigValue(ctx context.Context, id uuid.UUID, valor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			if err := s.failOn[e.Clave]; err != nil {
				return err
			}
			s.updates++
			s.entries[i].Valor = valor
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *fakeConfigStorage) DeleteConfigEntry(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeImageStore struct {
	url   string
	err   error
	calls int
}

func (s *fakeImageStore) UploadImage(ctx context.Context, filename string, reader io.Reader, contentType string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}
