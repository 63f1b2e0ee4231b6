package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"seed-segmenter/internal/domain/entity"
	"seed-segmenter/internal/domain/port"
	"seed-segmenter/internal/logger"
)

// segmentChannel — канал, который уходит в watershed.
const segmentChannel = 0

type SegmentationService struct {
	loader    port.ImageLoader
	segmenter port.Segmenter
}

// NewSegmentationService создаёт сервис разметки и сегментации.
func NewSegmentationService(loader port.ImageLoader, segmenter port.Segmenter) *SegmentationService {
	return &SegmentationService{
		loader:    loader,
		segmenter: segmenter,
	}
}

// Open загружает файл в сеанс. Старая разметка сбрасывается.
func (s *SegmentationService) Open(session *entity.Session, path string) error {
	if s.loader == nil {
		return errors.New("image loader is not configured")
	}

	img, err := s.loader.Load(path)
	if err != nil {
		return err
	}

	session.Load(img)
	logger.Log.Info("image loaded",
		zap.Int64("session", session.ID),
		zap.String("path", path),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))
	return nil
}

// OpenReader делает то же, что Open, для потока байт.
func (s *SegmentationService) OpenReader(session *entity.Session, r io.Reader) error {
	if s.loader == nil {
		return errors.New("image loader is not configured")
	}

	img, err := s.loader.Decode(r)
	if err != nil {
		return err
	}

	session.Load(img)
	logger.Log.Info("image decoded",
		zap.Int64("session", session.ID),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))
	return nil
}

// Mark ставит маркер и возвращает свежую подсветку для отображения.
func (s *SegmentationService) Mark(session *entity.Session, x, y int, class entity.MarkerClass) (*entity.Image, error) {
	if err := session.Mark(x, y, class); err != nil {
		return nil, err
	}

	logger.Log.Debug("marker placed",
		zap.Int64("session", session.ID),
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Stringer("class", class),
		zap.Int("markers", session.Markers.Count()))

	return s.Composite(session)
}

// Composite смешивает изображение сеанса с его оверлеем.
func (s *SegmentationService) Composite(session *entity.Session) (*entity.Image, error) {
	if session.Image == nil {
		return nil, entity.ErrNoImage
	}
	return Blend(session.Image, session.Overlay)
}

// Segment запускает watershed по нулевому каналу и текущим маркерам.
func (s *SegmentationService) Segment(ctx context.Context, session *entity.Session) (*entity.Labels, error) {
	if session.Image == nil {
		return nil, entity.ErrNoImage
	}
	if !session.HasMarkers() {
		return nil, entity.ErrNoMarkers
	}
	if s.segmenter == nil {
		return nil, errors.New("segmenter is not configured")
	}

	start := time.Now()
	labels, err := s.segmenter.Segment(ctx, session.Image.Channel(segmentChannel), session.Markers)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}
	if labels.Width != session.Image.Width || labels.Height != session.Image.Height {
		return nil, fmt.Errorf("segment: %w: got %dx%d labels", entity.ErrShapeMismatch, labels.Width, labels.Height)
	}

	logger.Log.Info("segmentation finished",
		zap.Int64("session", session.ID),
		zap.Int("markers", session.Markers.Count()),
		zap.Int("regions", len(labels.Distinct())),
		zap.Duration("duration", time.Since(start)))

	return labels, nil
}
