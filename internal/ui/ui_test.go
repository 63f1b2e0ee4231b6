package ui

import (
	"context"
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	app "seed-segmenter/internal/application"
	"seed-segmenter/internal/domain/entity"
)

type labelSegmenter struct{}

func (labelSegmenter) Segment(ctx context.Context, plane *image.Gray, markers *entity.MarkerMap) (*entity.Labels, error) {
	labels := entity.NewLabels(markers.Width, markers.Height)
	for i, c := range markers.Values {
		labels.Values[i] = int32(c)
	}
	return labels, nil
}

func newTestWindow(t *testing.T) (fyne.App, *Window) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	session := entity.NewSession(0)
	session.Load(entity.NewImage(10, 10))
	dispatcher := app.NewDispatcher(app.NewSegmentationService(nil, labelSegmenter{}))

	w := NewWindow(a, "test", session, dispatcher)
	w.canvas.Resize(fyne.NewSize(10, 10))
	return a, w
}

func TestMarkerCanvas_ToPixelScales(t *testing.T) {
	c := newMarkerCanvas(nil)
	c.SetImage(image.NewRGBA(image.Rect(0, 0, 10, 20)))
	c.Resize(fyne.NewSize(20, 40))

	x, y := c.toPixel(fyne.NewPos(5, 39))
	require.Equal(t, 2, x)
	require.Equal(t, 19, y)

	x, y = c.toPixel(fyne.NewPos(-1, 0))
	require.Equal(t, -1, x)
	require.Equal(t, 0, y)
}

func TestMarkerCanvas_EmitsEvents(t *testing.T) {
	var got []app.Event
	c := newMarkerCanvas(func(ev app.Event) { got = append(got, ev) })
	c.SetImage(image.NewRGBA(image.Rect(0, 0, 10, 10)))
	c.Resize(fyne.NewSize(10, 10))

	test.TapAt(c, fyne.NewPos(2.5, 3.5))
	test.TapSecondaryAt(c, fyne.NewPos(7.2, 7.9))

	require.Equal(t, []app.Event{
		{Kind: app.LeftClick, X: 2, Y: 3},
		{Kind: app.RightClick, X: 7, Y: 7},
	}, got)
}

func TestWindow_ClicksPlaceMarkers(t *testing.T) {
	_, w := newTestWindow(t)

	test.TapAt(w.canvas, fyne.NewPos(2.5, 3.5))
	test.TapSecondaryAt(w.canvas, fyne.NewPos(7.5, 7.5))

	require.Equal(t, entity.Foreground, w.session.Markers.At(2, 3))
	require.Equal(t, entity.Background, w.session.Markers.At(7, 7))
	require.Equal(t, [entity.Channels]uint8{0, 0, 76}, entity.ImageFromStd(w.canvas.img.Image).At(2, 3))
}

func TestWindow_SegmentOpensViewer(t *testing.T) {
	a, w := newTestWindow(t)
	before := len(a.Driver().AllWindows())

	test.Tap(w.segmentBtn)
	require.Len(t, a.Driver().AllWindows(), before, "no viewer without markers")

	test.TapAt(w.canvas, fyne.NewPos(1, 1))
	test.Tap(w.segmentBtn)
	require.Len(t, a.Driver().AllWindows(), before+1)
}

func TestWindow_OutOfBoundsClickIgnored(t *testing.T) {
	_, w := newTestWindow(t)

	w.handle(app.Event{Kind: app.LeftClick, X: 40, Y: 1})
	require.False(t, w.session.HasMarkers())
}

func TestShowLabels(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	labels := entity.NewLabels(3, 2)
	labels.Values[0] = 1
	win := showLabels(a, labels)
	require.Equal(t, labelsTitle, win.Title())
}
