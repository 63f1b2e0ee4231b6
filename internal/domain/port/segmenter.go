package port

import (
	"context"
	"image"

	"seed-segmenter/internal/domain/entity"
)

// Segmenter интерфейс внешней watershed-сегментации
type Segmenter interface {
	// Segment заливает одноканальное изображение от ненулевых маркеров и
	// возвращает метку затравки для каждого пикселя
	Segment(ctx context.Context, plane *image.Gray, markers *entity.MarkerMap) (*entity.Labels, error)
}
