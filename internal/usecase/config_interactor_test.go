package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/GoArmGo/DecorApp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScreen(t *testing.T) {
	t.Run("missing expected claves synthesized as unsaved", func(t *testing.T) {
		storage := &fakeConfigStorage{entries: []domain.ConfigEntry{
			{ID: uuid.New(), Clave: "telefono", Valor: "595-111", Categoria: "contacto", Tipo: "text", Mostrar: true},
		}}
		uc := NewConfigUseCase(storage, discardLogger())

		rows, err := uc.LoadScreen(context.Background())
		require.NoError(t, err)
		// Одна сохранённая плюс две синтезированные из ожидаемого набора.
		require.Len(t, rows, len(domain.ExpectedConfigKeys))

		states := map[string]string{}
		for _, r := range rows {
			states[r.Entry.Clave] = r.Estado
		}
		assert.Equal(t, "clean", states["telefono"])
		assert.Equal(t, "unsaved", states["email"])
		assert.Equal(t, "unsaved", states["direccion"])
	})

	t.Run("storage error propagated", func(t *testing.T) {
		storage := &fakeConfigStorage{listErr: errors.New("conexión perdida")}
		uc := NewConfigUseCase(storage, discardLogger())

		_, err := uc.LoadScreen(context.Background())
		assert.Error(t, err)
	})
}

func TestSaveScreen(t *testing.T) {
	t.Run("untouched screen issues no writes", func(t *testing.T) {
		id := uuid.New()
		storage := &fakeConfigStorage{entries: []domain.ConfigEntry{
			{ID: id, Clave: "telefono", Valor: "595-111", Categoria: "contacto", Tipo: "text", Mostrar: true},
		}}
		uc := NewConfigUseCase(storage, discardLogger())

		// Клиент шлёт полный буфер, включая неизменённые значения.
		rows, result, err := uc.SaveScreen(context.Background(), map[domain.RowID]string{
			domain.Identified(id): "595-111",
		})
		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Zero(t, storage.inserts)
		assert.Zero(t, storage.updates)
		assert.NotEmpty(t, rows)
	})

	t.Run("pending row inserted, saved row updated", func(t *testing.T) {
		id := uuid.New()
		storage := &fakeConfigStorage{entries: []domain.ConfigEntry{
			{ID: id, Clave: "telefono", Valor: "595-111", Categoria: "contacto", Tipo: "text", Mostrar: true},
		}}
		uc := NewConfigUseCase(storage, discardLogger())

		rows, result, err := uc.SaveScreen(context.Background(), map[domain.RowID]string{
			domain.Identified(id):      "595-222",
			domain.PendingRow("email"): "hola@decor.py",
		})
		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Equal(t, 1, result.Inserted)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 1, storage.inserts)
		assert.Equal(t, 1, storage.updates)

		// После сохранения строка email сохранена с настоящим id.
		for _, r := range rows {
			if r.Entry.Clave == "email" {
				assert.False(t, r.ID.IsPending())
				assert.Equal(t, "hola@decor.py", r.Entry.Valor)
			}
		}
	})

	t.Run("unknown row ids ignored", func(t *testing.T) {
		storage := &fakeConfigStorage{}
		uc := NewConfigUseCase(storage, discardLogger())

		_, result, err := uc.SaveScreen(context.Background(), map[domain.RowID]string{
			domain.Identified(uuid.New()): "huérfano",
		})
		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Zero(t, storage.inserts)
		assert.Zero(t, storage.updates)
	})

	t.Run("partial failure reported per row", func(t *testing.T) {
		okID := uuid.New()
		badID := uuid.New()
		storage := &fakeConfigStorage{
			entries: []domain.ConfigEntry{
				{ID: okID, Clave: "telefono", Valor: "595-111", Categoria: "contacto", Tipo: "text", Mostrar: true},
				{ID: badID, Clave: "email", Valor: "old@decor.py", Categoria: "contacto", Tipo: "text", Mostrar: true},
			},
			failOn: map[string]error{"email": errors.New("conexión perdida")},
		}
		uc := NewConfigUseCase(storage, discardLogger())

		rows, result, err := uc.SaveScreen(context.Background(), map[domain.RowID]string{
			domain.Identified(okID):  "595-222",
			domain.Identified(badID): "new@decor.py",
		})
		require.NoError(t, err)
		assert.False(t, result.OK())
		assert.Equal(t, 1, result.Updated)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, domain.Identified(badID), result.Failed[0].ID)

		// Неудачная строка возвращается errored с введённым значением,
		// удачная — clean со свежим.
		for _, r := range rows {
			switch r.Entry.Clave {
			case "telefono":
				assert.Equal(t, "clean", r.Estado)
				assert.Equal(t, "595-222", r.Entry.Valor)
			case "email":
				assert.Equal(t, "errored", r.Estado)
				assert.Equal(t, "new@decor.py", r.Entry.Valor)
			}
		}
	})
}

func TestCreateEntry(t *testing.T) {
	t.Run("duplicate clave rejected", func(t *testing.T) {
		storage := &fakeConfigStorage{entries: []domain.ConfigEntry{
			{ID: uuid.New(), Clave: "instagram/url", Valor: "https://instagram.com/decor", Categoria: "redes_sociales", Tipo: "url", Mostrar: true},
		}}
		uc := NewConfigUseCase(storage, discardLogger())

		_, err := uc.CreateEntry(context.Background(), ConfigEntryInput{Clave: "instagram/url", Valor: "otra"})
		require.ErrorIs(t, err, domain.ErrDuplicateKey)
		assert.Zero(t, storage.inserts)
	})

	t.Run("empty clave rejected", func(t *testing.T) {
		uc := NewConfigUseCase(&fakeConfigStorage{}, discardLogger())
		_, err := uc.CreateEntry(context.Background(), ConfigEntryInput{Valor: "x"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("defaults for tipo and categoria", func(t *testing.T) {
		storage := &fakeConfigStorage{}
		uc := NewConfigUseCase(storage, discardLogger())

		entry, err := uc.CreateEntry(context.Background(), ConfigEntryInput{Clave: "tiktok/url", Valor: "https://tiktok.com/@decor"})
		require.NoError(t, err)
		assert.Equal(t, "text", entry.Tipo)
		assert.Equal(t, "redes_sociales", entry.Categoria)
		assert.True(t, entry.Mostrar)
	})
}

func TestDeleteEntry_RequiresConfirmation(t *testing.T) {
	id := uuid.New()
	storage := &fakeConfigStorage{entries: []domain.ConfigEntry{
		{ID: id, Clave: "instagram/url", Mostrar: true},
	}}
	uc := NewConfigUseCase(storage, discardLogger())

	require.ErrorIs(t, uc.DeleteEntry(context.Background(), id, false), domain.ErrConfirmationRequired)
	assert.Len(t, storage.entries, 1)

	require.NoError(t, uc.DeleteEntry(context.Background(), id, true))
	assert.Empty(t, storage.entries)
}
