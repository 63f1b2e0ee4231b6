package imageio

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"seed-segmenter/internal/domain/entity"
	"seed-segmenter/internal/domain/port"
)

// Loader читает изображения через imaging: jpeg, png, gif, tiff, bmp и webp.
type Loader struct {
	// AutoOrient поворачивает снимок по EXIF, как это делает просмотрщик.
	AutoOrient bool
}

// NewLoader создаёт загрузчик с учётом EXIF-ориентации.
func NewLoader() *Loader {
	return &Loader{AutoOrient: true}
}

// Load читает файл и приводит его к трём каналам.
func (l *Loader) Load(path string) (*entity.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(l.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	return convert(img)
}

// Decode читает изображение из потока.
func (l *Loader) Decode(r io.Reader) (*entity.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(l.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return convert(img)
}

func convert(img image.Image) (*entity.Image, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode image: empty image %dx%d", b.Dx(), b.Dy())
	}
	return entity.ImageFromStd(img), nil
}

// EncodePNG пишет изображение в PNG без потерь, чтобы координаты маркеров
// совпадали с пикселями.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// Проверка реализации интерфейса
var _ port.ImageLoader = (*Loader)(nil)
