package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"seed-segmenter/internal/domain/entity"
)

const labelsTitle = "Segmentation"

// showLabels открывает результат сегментации в отдельном окне.
func showLabels(a fyne.App, labels *entity.Labels) fyne.Window {
	img := canvas.NewImageFromImage(labels.Visualize())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(float32(labels.Width), float32(labels.Height)))

	w := a.NewWindow(labelsTitle)
	w.SetContent(img)
	w.Show()
	return w
}
