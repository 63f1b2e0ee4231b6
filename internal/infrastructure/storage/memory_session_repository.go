package storage

import (
	"context"
	"sync"

	"seed-segmenter/internal/domain/entity"
	"seed-segmenter/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сеансов разметки
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[int64]*entity.Session),
	}
}

// Get возвращает сеанс по ID, создаёт новый если не найден
func (r *MemorySessionRepository) Get(ctx context.Context, id int64) (*entity.Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[id]
	r.mu.RUnlock()

	if exists {
		return session, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Пока ждали блокировку, сеанс мог создать другой вызов
	if session, exists := r.sessions[id]; exists {
		return session, nil
	}

	session = entity.NewSession(id)
	r.sessions[id] = session

	return session, nil
}

// Save сохраняет сеанс
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return nil
}

// Delete удаляет сеанс, отсутствие сеанса не ошибка
func (r *MemorySessionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
