package entity

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageFromStd_ForcesThreeChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	img := ImageFromStd(src)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 1, img.Height)
	require.Len(t, img.Pix, 2*1*Channels)
	require.Equal(t, [Channels]uint8{10, 20, 30}, img.At(0, 0))
	require.Equal(t, [Channels]uint8{200, 100, 50}, img.At(1, 0))
}

func TestImageFromStd_Gray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 1, 1))
	src.SetGray(0, 0, color.Gray{Y: 77})

	img := ImageFromStd(src)
	require.Equal(t, [Channels]uint8{77, 77, 77}, img.At(0, 0))
}

func TestImage_Channel(t *testing.T) {
	img := NewImage(2, 2)
	img.set(1, 1, [Channels]uint8{9, 8, 7})

	red := img.Channel(0)
	require.Equal(t, uint8(9), red.GrayAt(1, 1).Y)
	require.Equal(t, uint8(0), red.GrayAt(0, 0).Y)
	require.Equal(t, uint8(7), img.Channel(2).GrayAt(1, 1).Y)
}

func TestImage_ToRGBA(t *testing.T) {
	img := NewImage(1, 1)
	img.set(0, 0, [Channels]uint8{1, 2, 3})

	rgba := img.ToRGBA()
	require.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, rgba.RGBAAt(0, 0))
}

func TestLabels_Visualize(t *testing.T) {
	l := NewLabels(3, 1)
	l.Values[0] = 1
	l.Values[1] = -1
	l.Values[2] = 0

	gray := l.Visualize()
	require.Equal(t, []uint8{255, 1, 0}, gray.Pix)
	require.Equal(t, []int32{-1, 0, 1}, l.Distinct())
}

func TestMarkerClass_Color(t *testing.T) {
	require.Equal(t, [Channels]uint8{0, 0, 255}, Foreground.Color())
	require.Equal(t, [Channels]uint8{255, 0, 0}, Background.Color())
	require.Equal(t, [Channels]uint8{}, Unset.Color())
	require.Equal(t, "foreground", Foreground.String())
}
