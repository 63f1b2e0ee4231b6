//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"seed-segmenter/internal/domain/entity"
	"seed-segmenter/internal/domain/port"
)

// Метки затравок в формате OpenCV: только положительные значения,
// -1 на выходе означает границу между областями.
const (
	cvForeground int32 = 1
	cvBackground int32 = 2
	cvBoundary   int32 = -1
)

// border — ширина служебной рамки вокруг изображения.
const border = 1

// WatershedSegmenter сегментирует изображение через cv::watershed.
type WatershedSegmenter struct{}

// NewWatershedSegmenter создаёт сегментатор на базе OpenCV.
func NewWatershedSegmenter() *WatershedSegmenter {
	return &WatershedSegmenter{}
}

// Segment заливает изображение от маркеров и возвращает метки в классах
// entity.MarkerClass: +1 объект, -1 фон. Линии водораздела получают метку
// соседней области, так что нулей в результате нет.
func (s *WatershedSegmenter) Segment(ctx context.Context, plane *image.Gray, markers *entity.MarkerMap) (*entity.Labels, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if plane == nil || markers == nil {
		return nil, errors.New("watershed: nil input")
	}

	w, h := plane.Bounds().Dx(), plane.Bounds().Dy()
	if w != markers.Width || h != markers.Height {
		return nil, fmt.Errorf("watershed: %w: image %dx%d, markers %dx%d",
			entity.ErrShapeMismatch, w, h, markers.Width, markers.Height)
	}

	// cv::watershed принимает только 8UC3, поэтому канал дублируется.
	src, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC3, replicate(plane))
	if err != nil {
		return nil, fmt.Errorf("watershed: build image mat: %w", err)
	}
	defer src.Close()

	seeds := gocv.NewMatWithSize(h, w, gocv.MatTypeCV32S)
	defer seeds.Close()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			seeds.SetIntAt(y, x, encodeMarker(markers.At(x, y)))
		}
	}

	// cv::watershed затирает крайние строки и столбцы маркеров значением -1,
	// поэтому работаем с рамкой в один пиксель и потом её отрезаем.
	paddedSrc := gocv.NewMat()
	defer paddedSrc.Close()
	gocv.CopyMakeBorder(src, &paddedSrc, border, border, border, border, gocv.BorderReplicate, color.RGBA{})

	paddedSeeds := gocv.NewMat()
	defer paddedSeeds.Close()
	gocv.CopyMakeBorder(seeds, &paddedSeeds, border, border, border, border, gocv.BorderConstant, color.RGBA{})

	gocv.Watershed(paddedSrc, &paddedSeeds)

	labels := entity.NewLabels(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			labels.Values[y*w+x] = decodeLabel(paddedSeeds.GetIntAt(y+border, x+border))
		}
	}
	fillRidges(labels)

	return labels, nil
}

// replicate собирает BGR-буфер из одного канала.
func replicate(plane *image.Gray) []byte {
	b := plane.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := plane.Pix[plane.PixOffset(b.Min.X, y) : plane.PixOffset(b.Min.X, y)+b.Dx()]
		for _, v := range row {
			out = append(out, v, v, v)
		}
	}
	return out
}

func encodeMarker(c entity.MarkerClass) int32 {
	switch c {
	case entity.Foreground:
		return cvForeground
	case entity.Background:
		return cvBackground
	default:
		return 0
	}
}

func decodeLabel(v int32) int32 {
	switch v {
	case cvForeground:
		return int32(entity.Foreground)
	case cvBackground:
		return int32(entity.Background)
	default:
		return 0
	}
}

// Проверка реализации интерфейса
var _ port.Segmenter = (*WatershedSegmenter)(nil)
