package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowID_Identified(t *testing.T) {
	id := uuid.New()
	r := Identified(id)

	assert.False(t, r.IsPending())

	got, ok := r.UUID()
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = r.PendingKey()
	assert.False(t, ok)

	assert.Equal(t, id.String(), r.String())
}

func TestRowID_Pending(t *testing.T) {
	r := PendingRow("telefono/contacto")

	assert.True(t, r.IsPending())

	_, ok := r.UUID()
	assert.False(t, ok)

	clave, ok := r.PendingKey()
	require.True(t, ok)
	assert.Equal(t, "telefono/contacto", clave)

	assert.Equal(t, "new_telefono/contacto", r.String())
}

func TestRowID_UnmarshalText(t *testing.T) {
	t.Run("real id round-trips", func(t *testing.T) {
		id := uuid.New()

		var r RowID
		require.NoError(t, r.UnmarshalText([]byte(id.String())))

		got, ok := r.UUID()
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("pending id round-trips", func(t *testing.T) {
		var r RowID
		require.NoError(t, r.UnmarshalText([]byte("new_email")))

		assert.True(t, r.IsPending())
		clave, _ := r.PendingKey()
		assert.Equal(t, "email", clave)
	})

	t.Run("empty clave rejected", func(t *testing.T) {
		var r RowID
		assert.Error(t, r.UnmarshalText([]byte("new_")))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		var r RowID
		assert.Error(t, r.UnmarshalText([]byte("not-a-uuid")))
	})
}

// Идентификаторы строк ходят по API как ключи JSON-объекта.
func TestRowID_JSONMapKey(t *testing.T) {
	id := uuid.New()
	payload := []byte(`{"values": {"` + id.String() + `": "595-123-456", "new_direccion/informacion": "Av. Central 123"}}`)

	var decoded struct {
		Values map[RowID]string `json:"values"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "595-123-456", decoded.Values[Identified(id)])
	assert.Equal(t, "Av. Central 123", decoded.Values[PendingRow("direccion/informacion")])
}
