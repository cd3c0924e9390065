package knowledge

import (
	"os"
	"path/filepath"
)

// DefaultImage is served when a crop's declared image is missing from the
// asset directory, so the page never shows a broken reference.
const DefaultImage = "default.jpg"

// ImageResolver resolves crop images against the on-disk asset directory.
type ImageResolver struct {
	dir string
}

// NewImageResolver creates a resolver rooted at the asset directory.
func NewImageResolver(dir string) *ImageResolver {
	return &ImageResolver{dir: dir}
}

// Resolve returns the record's image filename when the file exists, otherwise
// DefaultImage.
func (r *ImageResolver) Resolve(rec CropRecord) string {
	if rec.ImageFile == "" {
		return DefaultImage
	}
	if _, err := os.Stat(filepath.Join(r.dir, rec.ImageFile)); err != nil {
		return DefaultImage
	}
	return rec.ImageFile
}
