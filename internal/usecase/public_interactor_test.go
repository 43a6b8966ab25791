package usecase

import (
	"context"
	"testing"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicCatalog(events *fakeEventStorage, products *fakeProductStorage, gallery *fakeGalleryStorage, config *fakeConfigStorage) PublicCatalogUseCase {
	return NewPublicCatalogUseCase(events, products, gallery, config, discardLogger())
}

func TestListActiveEvents_Ordering(t *testing.T) {
	t.Run("orden wins when anyone sets it", func(t *testing.T) {
		events := &fakeEventStorage{events: []domain.Event{
			{ID: uuid.New(), Nombre: "Aniversarios", Orden: 2, Activo: true},
			{ID: uuid.New(), Nombre: "XV Años", Orden: 1, Activo: true},
			{ID: uuid.New(), Nombre: "Bodas", Orden: 0, Activo: true},
		}}
		uc := newPublicCatalog(events, &fakeProductStorage{}, &fakeGalleryStorage{}, &fakeConfigStorage{})

		got, err := uc.ListActiveEvents(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Bodas", got[0].Nombre)
		assert.Equal(t, "XV Años", got[1].Nombre)
		assert.Equal(t, "Aniversarios", got[2].Nombre)
	})

	t.Run("falls back to nombre when nobody sets orden", func(t *testing.T) {
		events := &fakeEventStorage{events: []domain.Event{
			{ID: uuid.New(), Nombre: "XV Años", Activo: true},
			{ID: uuid.New(), Nombre: "Aniversarios", Activo: true},
			{ID: uuid.New(), Nombre: "Bodas", Activo: true},
		}}
		uc := newPublicCatalog(events, &fakeProductStorage{}, &fakeGalleryStorage{}, &fakeConfigStorage{})

		got, err := uc.ListActiveEvents(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Aniversarios", got[0].Nombre)
		assert.Equal(t, "Bodas", got[1].Nombre)
		assert.Equal(t, "XV Años", got[2].Nombre)
	})

	t.Run("inactive events hidden", func(t *testing.T) {
		events := &fakeEventStorage{events: []domain.Event{
			{ID: uuid.New(), Nombre: "Bodas", Activo: true},
			{ID: uuid.New(), Nombre: "Archivado", Activo: false},
		}}
		uc := newPublicCatalog(events, &fakeProductStorage{}, &fakeGalleryStorage{}, &fakeConfigStorage{})

		got, err := uc.ListActiveEvents(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bodas", got[0].Nombre)
	})
}

func TestListActiveProducts_Filtering(t *testing.T) {
	bodas := uuid.New()
	xv := uuid.New()
	products := &fakeProductStorage{products: []domain.ProductWithEvent{
		{Product: domain.Product{ID: uuid.New(), EventoID: bodas, Titulo: "Arco floral", Descripcion: "Arco de flores naturales", Activo: true}},
		{Product: domain.Product{ID: uuid.New(), EventoID: bodas, Titulo: "Mesa dulce", Descripcion: "Decoración con globos", Activo: true}},
		{Product: domain.Product{ID: uuid.New(), EventoID: xv, Titulo: "Trono XV", Descripcion: "Silla decorada", Activo: true}},
		{Product: domain.Product{ID: uuid.New(), EventoID: bodas, Titulo: "Oculto", Descripcion: "Inactivo", Activo: false}},
	}}
	uc := newPublicCatalog(&fakeEventStorage{}, products, &fakeGalleryStorage{}, &fakeConfigStorage{})

	t.Run("filter by event", func(t *testing.T) {
		got, err := uc.ListActiveProducts(context.Background(), bodas, "")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("substring match is case-insensitive over titulo and descripcion", func(t *testing.T) {
		got, err := uc.ListActiveProducts(context.Background(), uuid.Nil, "GLOBOS")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mesa dulce", got[0].Titulo)
	})

	t.Run("no filters returns all active", func(t *testing.T) {
		got, err := uc.ListActiveProducts(context.Background(), uuid.Nil, "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestGetProductDetail(t *testing.T) {
	productoID := uuid.New()
	products := &fakeProductStorage{products: []domain.ProductWithEvent{
		{Product: domain.Product{ID: productoID, Titulo: "Arco floral", Activo: true}, EventoNombre: "Bodas"},
	}}
	gallery := &fakeGalleryStorage{photos: []domain.GalleryPhoto{
		{ID: uuid.New(), ProductoID: productoID, URLFoto: "https://img.example/1.jpg", Orden: 0},
		{ID: uuid.New(), ProductoID: uuid.New(), URLFoto: "https://img.example/otra.jpg", Orden: 0},
	}}
	uc := newPublicCatalog(&fakeEventStorage{}, products, gallery, &fakeConfigStorage{})

	prod, photos, err := uc.GetProductDetail(context.Background(), productoID)
	require.NoError(t, err)
	assert.Equal(t, "Arco floral", prod.Titulo)
	assert.Equal(t, "Bodas", prod.EventoNombre)
	require.Len(t, photos, 1)
	assert.Equal(t, "https://img.example/1.jpg", photos[0].URLFoto)
}

func TestPublicConfig(t *testing.T) {
	storage := &fakeConfigStorage{entries: []domain.ConfigEntry{
		{ID: uuid.New(), Clave: "telefono", Valor: "595-111", Categoria: "contacto", Mostrar: true},
		{ID: uuid.New(), Clave: "instagram/url", Valor: "https://instagram.com/decor", Categoria: "redes_sociales", Mostrar: true},
		{ID: uuid.New(), Clave: "interno/nota", Valor: "secreto", Categoria: "contacto", Mostrar: false},
	}}
	uc := newPublicCatalog(&fakeEventStorage{}, &fakeProductStorage{}, &fakeGalleryStorage{}, storage)

	grouped, err := uc.PublicConfig(context.Background())
	require.NoError(t, err)

	// Скрытые записи не попадают в публичный ответ.
	require.Len(t, grouped["contacto"], 1)
	assert.Equal(t, "telefono", grouped["contacto"][0].Clave)
	require.Len(t, grouped["redes_sociales"], 1)
}
