//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"seed-segmenter/internal/domain/entity"
)

func TestWatershedSegmenter_TwoSeedsOnBlackImage(t *testing.T) {
	session := entity.NewSession(1)
	session.Load(entity.NewImage(10, 10))
	require.NoError(t, session.Mark(2, 3, entity.Foreground))
	require.NoError(t, session.Mark(7, 7, entity.Background))

	labels, err := NewWatershedSegmenter().Segment(context.Background(), session.Image.Channel(0), session.Markers)
	require.NoError(t, err)
	require.Equal(t, 10, labels.Width)
	require.Equal(t, 10, labels.Height)
	require.Equal(t, int32(entity.Foreground), labels.At(2, 3))
	require.Equal(t, int32(entity.Background), labels.At(7, 7))

	gray := labels.Visualize()
	distinct := make(map[uint8]struct{})
	for _, v := range gray.Pix {
		distinct[v] = struct{}{}
	}
	require.GreaterOrEqual(t, len(distinct), 2)
	require.Contains(t, distinct, uint8(255))
}

func TestWatershedSegmenter_SeedsOnImageBorder(t *testing.T) {
	session := entity.NewSession(1)
	session.Load(entity.NewImage(10, 10))
	require.NoError(t, session.Mark(0, 0, entity.Foreground))
	require.NoError(t, session.Mark(9, 9, entity.Background))

	labels, err := NewWatershedSegmenter().Segment(context.Background(), session.Image.Channel(0), session.Markers)
	require.NoError(t, err)
	require.Equal(t, int32(entity.Foreground), labels.At(0, 0))
	require.Equal(t, int32(entity.Background), labels.At(9, 9))
	for i, v := range labels.Values {
		require.NotZero(t, v, "pixel (%d, %d) left unlabelled", i%labels.Width, i/labels.Width)
	}
	require.Equal(t, []int32{-1, 1}, labels.Distinct())
}

func TestWatershedSegmenter_ShapeMismatch(t *testing.T) {
	_, err := NewWatershedSegmenter().Segment(context.Background(),
		image.NewGray(image.Rect(0, 0, 3, 3)), entity.NewMarkerMap(2, 2))
	require.ErrorIs(t, err, entity.ErrShapeMismatch)
}

func TestWatershedSegmenter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWatershedSegmenter().Segment(ctx, image.NewGray(image.Rect(0, 0, 2, 2)), entity.NewMarkerMap(2, 2))
	require.ErrorIs(t, err, context.Canceled)
}
