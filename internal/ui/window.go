package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	app "seed-segmenter/internal/application"
	"seed-segmenter/internal/domain/entity"
	"seed-segmenter/internal/logger"
)

// Window — основное окно: изображение с маркерами и кнопка «Segment».
// Все обращения к сеансу идут из колбэков fyne, то есть из одного потока.
type Window struct {
	fyneApp    fyne.App
	win        fyne.Window
	session    *entity.Session
	dispatcher *app.Dispatcher

	canvas     *markerCanvas
	segmentBtn *widget.Button
}

// NewWindow собирает окно для уже загруженного сеанса.
func NewWindow(a fyne.App, title string, session *entity.Session, dispatcher *app.Dispatcher) *Window {
	w := &Window{
		fyneApp:    a,
		win:        a.NewWindow(title),
		session:    session,
		dispatcher: dispatcher,
	}

	w.canvas = newMarkerCanvas(w.handle)
	w.canvas.SetImage(session.Image.ToRGBA())
	w.segmentBtn = widget.NewButtonWithIcon("Segment", theme.ConfirmIcon(), func() {
		w.handle(app.Event{Kind: app.SegmentPressed})
	})

	w.win.SetContent(container.NewBorder(nil, w.segmentBtn, nil, nil, container.NewCenter(w.canvas)))
	return w
}

// ShowAndRun показывает окно и запускает цикл событий.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

func (w *Window) handle(ev app.Event) {
	out, err := w.dispatcher.Dispatch(context.Background(), w.session, ev)
	switch {
	case errors.Is(err, entity.ErrOutOfBounds):
		logger.Log.Warn("click ignored", zap.Int("x", ev.X), zap.Int("y", ev.Y), zap.Error(err))
		return
	case errors.Is(err, entity.ErrNoMarkers):
		dialog.ShowInformation("Segment", err.Error(), w.win)
		return
	case err != nil:
		logger.Log.Error("handle event", zap.Stringer("event", ev.Kind), zap.Error(err))
		dialog.ShowError(err, w.win)
		return
	}

	if out.Composite != nil {
		w.canvas.SetImage(out.Composite.ToRGBA())
	}
	if out.Labels != nil {
		showLabels(w.fyneApp, out.Labels)
	}
}
