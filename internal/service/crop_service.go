package service

import (
	"sort"

	"cropadvisor/internal/knowledge"
)

// CropView is a knowledge-base entry with its image resolved against the
// asset store.
type CropView struct {
	Name   string
	Image  string
	Record knowledge.CropRecord
}

// CropService serves the static crop knowledge base.
type CropService interface {
	ListCrops() []CropView
}

type cropService struct {
	images *knowledge.ImageResolver
}

// NewCropService builds a CropService over the given image resolver.
func NewCropService(images *knowledge.ImageResolver) CropService {
	return &cropService{images: images}
}

// ListCrops returns every crop sorted by name with fallback-resolved images.
func (s *cropService) ListCrops() []CropView {
	records := knowledge.List()

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]CropView, 0, len(names))
	for _, name := range names {
		rec := records[name]
		views = append(views, CropView{
			Name:   name,
			Image:  s.images.Resolve(rec),
			Record: rec,
		})
	}
	return views
}
