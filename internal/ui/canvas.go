package ui

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	app "seed-segmenter/internal/application"
)

// markerCanvas показывает изображение и превращает клики в события разметки:
// левая кнопка — объект, правая — фон.
type markerCanvas struct {
	widget.BaseWidget

	img     *canvas.Image
	pixelW  int
	pixelH  int
	onEvent func(ev app.Event)
}

func newMarkerCanvas(onEvent func(ev app.Event)) *markerCanvas {
	c := &markerCanvas{onEvent: onEvent}
	c.img = canvas.NewImageFromImage(nil)
	c.img.FillMode = canvas.ImageFillStretch
	c.img.ScaleMode = canvas.ImageScalePixels
	c.ExtendBaseWidget(c)
	return c
}

// SetImage заменяет картинку. Минимальный размер равен размеру в пикселях,
// чтобы клик попадал в тот пиксель, над которым стоит курсор.
func (c *markerCanvas) SetImage(img image.Image) {
	b := img.Bounds()
	c.pixelW, c.pixelH = b.Dx(), b.Dy()
	c.img.Image = img
	c.img.SetMinSize(fyne.NewSize(float32(c.pixelW), float32(c.pixelH)))
	c.img.Refresh()
	c.Refresh()
}

func (c *markerCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.img)
}

func (c *markerCanvas) MinSize() fyne.Size {
	return c.img.MinSize()
}

// Tapped обрабатывает левый клик.
func (c *markerCanvas) Tapped(ev *fyne.PointEvent) {
	c.emit(app.LeftClick, ev.Position)
}

// TappedSecondary обрабатывает правый клик.
func (c *markerCanvas) TappedSecondary(ev *fyne.PointEvent) {
	c.emit(app.RightClick, ev.Position)
}

func (c *markerCanvas) emit(kind app.EventKind, pos fyne.Position) {
	if c.onEvent == nil {
		return
	}
	x, y := c.toPixel(pos)
	c.onEvent(app.Event{Kind: kind, X: x, Y: y})
}

// toPixel переводит позицию в координатах виджета в пиксель изображения.
// Проверка границ остаётся за сеансом.
func (c *markerCanvas) toPixel(pos fyne.Position) (int, int) {
	size := c.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return -1, -1
	}

	x := math.Floor(float64(pos.X) / float64(size.Width) * float64(c.pixelW))
	y := math.Floor(float64(pos.Y) / float64(size.Height) * float64(c.pixelH))
	return int(x), int(y)
}
