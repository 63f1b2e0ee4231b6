package entity

import (
	"image"
	"image/color"
	"image/draw"
)

// Channels число каналов в Image (RGB).
const Channels = 3

// Image — трёхканальное 8-битное изображение H×W×3, каналы в порядке RGB.
// После загрузки не изменяется.
type Image struct {
	Width  int     // ширина в пикселях
	Height int     // высота в пикселях
	Pix    []uint8 // построчно, по 3 байта на пиксель
}

// NewImage создаёт изображение, заполненное нулями.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// ImageFromStd приводит любое image.Image к трёхканальному виду.
// Альфа-канал отбрасывается.
func ImageFromStd(src image.Image) *Image {
	b := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			s := rgba.PixOffset(x, y)
			d := img.offset(x, y)
			copy(img.Pix[d:d+Channels], rgba.Pix[s:s+Channels])
		}
	}
	return img
}

// Contains сообщает, лежит ли точка внутри изображения.
func (img *Image) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.Width && y < img.Height
}

// SameShape сообщает, совпадают ли размеры двух изображений.
func (img *Image) SameShape(other *Image) bool {
	return other != nil && img.Width == other.Width && img.Height == other.Height &&
		len(img.Pix) == len(other.Pix)
}

// At возвращает значения каналов пикселя.
func (img *Image) At(x, y int) [Channels]uint8 {
	o := img.offset(x, y)
	return [Channels]uint8{img.Pix[o], img.Pix[o+1], img.Pix[o+2]}
}

func (img *Image) set(x, y int, c [Channels]uint8) {
	o := img.offset(x, y)
	copy(img.Pix[o:o+Channels], c[:])
}

// Channel возвращает отдельный канал как одноканальное изображение.
func (img *Image) Channel(c int) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	for i := 0; i < img.Width*img.Height; i++ {
		gray.Pix[i] = img.Pix[i*Channels+c]
	}
	return gray
}

// ToRGBA готовит изображение к отображению.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return out
}

func (img *Image) offset(x, y int) int {
	return (y*img.Width + x) * Channels
}
