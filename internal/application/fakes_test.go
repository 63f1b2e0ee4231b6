package app

import (
	"context"
	"errors"
	"image"
	"io"

	"seed-segmenter/internal/domain/entity"
)

// fakeSegmenter копирует маркеры в метки
// и запоминает входные данные.
type fakeSegmenter struct {
	calls   int
	plane   *image.Gray
	markers *entity.MarkerMap
	err     error
}

func (f *fakeSegmenter) Segment(ctx context.Context, plane *image.Gray, markers *entity.MarkerMap) (*entity.Labels, error) {
	f.calls++
	f.plane = plane
	f.markers = markers
	if f.err != nil {
		return nil, f.err
	}

	labels := entity.NewLabels(markers.Width, markers.Height)
	for y := 0; y < markers.Height; y++ {
		for x := 0; x < markers.Width; x++ {
			if c := markers.At(x, y); c != entity.Unset {
				labels.Values[y*markers.Width+x] = int32(c)
			}
		}
	}
	return labels, nil
}

type fakeLoader struct {
	img *entity.Image
	err error
}

func (f *fakeLoader) Load(path string) (*entity.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

func (f *fakeLoader) Decode(r io.Reader) (*entity.Image, error) {
	return f.Load("")
}

var errBroken = errors.New("broken")
