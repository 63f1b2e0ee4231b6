package entity

import "fmt"

// SessionState состояние сеанса разметки
type SessionState string

const (
	StateNoImage       SessionState = "no_image"       // Изображение ещё не загружено
	StateImageLoaded   SessionState = "image_loaded"   // Изображение загружено, маркеров нет
	StateMarkersPlaced SessionState = "markers_placed" // Есть хотя бы один маркер
)

// Session хранит всё состояние разметки одного изображения.
// Карта маркеров и оверлей создаются сразу при загрузке и всегда совпадают
// по размеру с изображением.
type Session struct {
	ID      int64        // идентификатор сеанса (в боте — Chat ID)
	State   SessionState // текущее состояние
	Image   *Image       // исходное изображение, только чтение
	Markers *MarkerMap   // затравки для watershed
	Overlay *Image       // цвета маркеров для подсветки
}

// NewSession создаёт сеанс без изображения.
func NewSession(id int64) *Session {
	return &Session{
		ID:    id,
		State: StateNoImage,
	}
}

// Load привязывает изображение к сеансу и сбрасывает разметку.
func (s *Session) Load(img *Image) {
	s.Image = img
	s.Markers = NewMarkerMap(img.Width, img.Height)
	s.Overlay = NewImage(img.Width, img.Height)
	s.SetState(StateImageLoaded)
}

// Mark ставит маркер класса c в точку (x, y).
func (s *Session) Mark(x, y int, c MarkerClass) error {
	if s.Image == nil {
		return ErrNoImage
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidClass, c)
	}
	if !s.Image.Contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, s.Image.Width, s.Image.Height)
	}

	s.Markers.Set(x, y, c)
	s.Overlay.set(x, y, c.Color())
	s.SetState(StateMarkersPlaced)
	return nil
}

// HasMarkers сообщает, можно ли запускать сегментацию.
func (s *Session) HasMarkers() bool {
	return s.Markers != nil && !s.Markers.Empty()
}

// SetState обновляет состояние сеанса
func (s *Session) SetState(state SessionState) {
	s.State = state
}
