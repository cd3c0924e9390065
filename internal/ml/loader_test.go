package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadClassifier(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		path := writeArtifact(t, "model.json", `{
			"n_features": 2,
			"trees": [{"nodes": [
				{"feature": 0, "threshold": 1.5, "left": 1, "right": 2, "class": -1},
				{"feature": -1, "threshold": 0, "left": -1, "right": -1, "class": 0},
				{"feature": -1, "threshold": 0, "left": -1, "right": -1, "class": 1}
			]}]
		}`)

		c, err := LoadClassifier(path)
		require.NoError(t, err)
		assert.Equal(t, 2, c.NFeatures)
		assert.Len(t, c.Trees, 1)

		raw, err := c.Predict([]float64{2, 0})
		assert.NoError(t, err)
		assert.Equal(t, EncodedLabel(1), raw)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadClassifier(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeArtifact(t, "model.json", "{not json")
		_, err := LoadClassifier(path)
		assert.Error(t, err)
	})

	t.Run("empty forest rejected", func(t *testing.T) {
		path := writeArtifact(t, "model.json", `{"n_features": 7, "trees": []}`)
		_, err := LoadClassifier(path)
		assert.Error(t, err)
	})
}

func TestLoadEncoder(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		path := writeArtifact(t, "encoder.json", `{"classes": ["maize", "rice"]}`)

		enc, err := LoadEncoder(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"maize", "rice"}, enc.Classes)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadEncoder(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("empty class list rejected", func(t *testing.T) {
		path := writeArtifact(t, "encoder.json", `{"classes": []}`)
		_, err := LoadEncoder(path)
		assert.Error(t, err)
	})
}
