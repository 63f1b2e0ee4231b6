package imageio

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"seed-segmenter/internal/domain/entity"
)

func sampleImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.SetNRGBA(1, 2, color.NRGBA{R: 12, G: 34, B: 56, A: 255})
	return img
}

func TestLoader_LoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	require.NoError(t, imaging.Save(sampleImage(), path))

	img, err := NewLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, img.Width)
	require.Equal(t, 3, img.Height)
	require.Len(t, img.Pix, 4*3*entity.Channels)
	require.Equal(t, [entity.Channels]uint8{12, 34, 56}, img.At(1, 2))
}

func TestLoader_LoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestLoader_DecodeGarbage(t *testing.T) {
	_, err := NewLoader().Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
}

func TestEncodePNG_RoundTripsThroughDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, sampleImage()))

	img, err := NewLoader().Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, [entity.Channels]uint8{12, 34, 56}, img.At(1, 2))
}
