package port

import (
	"io"

	"seed-segmenter/internal/domain/entity"
)

// ImageLoader интерфейс загрузчика изображений
type ImageLoader interface {
	// Load читает файл и приводит изображение к трём каналам
	Load(path string) (*entity.Image, error)

	// Decode делает то же самое для потока байт
	Decode(r io.Reader) (*entity.Image, error)
}
