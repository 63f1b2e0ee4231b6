package port

import (
	"context"

	"seed-segmenter/internal/domain/entity"
)

// SessionRepository интерфейс хранилища сеансов разметки
type SessionRepository interface {
	// Get возвращает сеанс по ID, создаёт новый если не найден
	Get(ctx context.Context, id int64) (*entity.Session, error)

	// Save сохраняет сеанс
	Save(ctx context.Context, session *entity.Session) error

	// Delete удаляет сеанс
	Delete(ctx context.Context, id int64) error
}
