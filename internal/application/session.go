package app

import (
	"context"

	"seed-segmenter/internal/domain/entity"
	"seed-segmenter/internal/domain/port"
)

type SessionService struct {
	repo port.SessionRepository
}

func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) Get(ctx context.Context, id int64) (*entity.Session, error) {
	return s.repo.Get(ctx, id)
}

func (s *SessionService) Save(ctx context.Context, session *entity.Session) error {
	return s.repo.Save(ctx, session)
}

// Cancel забывает изображение и маркеры сеанса.
func (s *SessionService) Cancel(ctx context.Context, id int64) (*entity.Session, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}
