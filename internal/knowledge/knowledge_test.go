package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	records := List()

	assert.Len(t, records, 22)

	rice, ok := records["rice"]
	assert.True(t, ok)
	assert.Equal(t, "rice.jpg", rice.ImageFile)
	assert.NotEmpty(t, rice.Description)

	// The catalogue is immutable: mutating the returned map must not leak
	// into later calls.
	delete(records, "rice")
	_, ok = List()["rice"]
	assert.True(t, ok)
}

func TestGet(t *testing.T) {
	rec, ok := Get("coffee")
	assert.True(t, ok)
	assert.Equal(t, "coffee.jpg", rec.ImageFile)

	_, ok = Get("tomato")
	assert.False(t, ok)
}

func TestImageResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rice.jpg"), []byte("img"), 0o644))

	r := NewImageResolver(dir)

	t.Run("declared image present", func(t *testing.T) {
		got := r.Resolve(CropRecord{ImageFile: "rice.jpg"})
		assert.Equal(t, "rice.jpg", got)
	})

	t.Run("declared image absent falls back", func(t *testing.T) {
		got := r.Resolve(CropRecord{ImageFile: "maize.jpg"})
		assert.Equal(t, DefaultImage, got)
	})

	t.Run("empty declaration falls back", func(t *testing.T) {
		got := r.Resolve(CropRecord{})
		assert.Equal(t, DefaultImage, got)
	})
}
