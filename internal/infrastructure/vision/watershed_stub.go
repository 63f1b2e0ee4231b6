//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"seed-segmenter/internal/domain/entity"
)

// WatershedSegmenter заглушка для сборки без OpenCV.
type WatershedSegmenter struct{}

// NewWatershedSegmenter создаёт сегментатор-заглушку (без OpenCV).
func NewWatershedSegmenter() *WatershedSegmenter {
	return &WatershedSegmenter{}
}

// Segment возвращает ошибку, если сборка без тега gocv.
func (s *WatershedSegmenter) Segment(ctx context.Context, plane *image.Gray, markers *entity.MarkerMap) (*entity.Labels, error) {
	_ = ctx
	_ = plane
	_ = markers
	return nil, ErrSegmenterUnavailable
}
