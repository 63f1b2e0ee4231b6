package container

import (
	app "seed-segmenter/internal/application"
	"seed-segmenter/internal/domain/port"
)

type Container struct {
	SessionService      *app.SessionService
	SegmentationService *app.SegmentationService
	Dispatcher          *app.Dispatcher
}

func New(sessionRepo port.SessionRepository, loader port.ImageLoader, segmenter port.Segmenter) *Container {
	sessionService := app.NewSessionService(sessionRepo)
	segmentationService := app.NewSegmentationService(loader, segmenter)

	return &Container{
		SessionService:      sessionService,
		SegmentationService: segmentationService,
		Dispatcher:          app.NewDispatcher(segmentationService),
	}
}
