package app

import (
	"context"
	"fmt"

	"seed-segmenter/internal/domain/entity"
)

// EventKind тип пользовательского события
type EventKind int

const (
	LeftClick      EventKind = iota // Маркер объекта
	RightClick                      // Маркер фона
	SegmentPressed                  // Кнопка «Segment»
)

func (k EventKind) String() string {
	switch k {
	case LeftClick:
		return "left_click"
	case RightClick:
		return "right_click"
	case SegmentPressed:
		return "segment"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event пользовательское событие с координатами в пикселях изображения.
type Event struct {
	Kind EventKind
	X, Y int
}

// Outcome — что нужно показать после обработки события.
type Outcome struct {
	Composite *entity.Image  // новая подсветка для основного окна
	Labels    *entity.Labels // результат сегментации для отдельного окна
}

// Handler обрабатывает событие в рамках сеанса.
type Handler func(ctx context.Context, session *entity.Session, ev Event) (*Outcome, error)

// Dispatcher связывает события с обработчиками независимо от GUI.
// Вызывается из одного потока: сеанс не защищён блокировками.
type Dispatcher struct {
	handlers map[EventKind]Handler
}

// NewDispatcher строит таблицу обработчиков поверх сервиса сегментации.
func NewDispatcher(svc *SegmentationService) *Dispatcher {
	mark := func(class entity.MarkerClass) Handler {
		return func(ctx context.Context, session *entity.Session, ev Event) (*Outcome, error) {
			composite, err := svc.Mark(session, ev.X, ev.Y, class)
			if err != nil {
				return nil, err
			}
			return &Outcome{Composite: composite}, nil
		}
	}

	return &Dispatcher{
		handlers: map[EventKind]Handler{
			LeftClick:  mark(entity.Foreground),
			RightClick: mark(entity.Background),
			SegmentPressed: func(ctx context.Context, session *entity.Session, ev Event) (*Outcome, error) {
				labels, err := svc.Segment(ctx, session)
				if err != nil {
					return nil, err
				}
				return &Outcome{Labels: labels}, nil
			},
		},
	}
}

// Dispatch находит обработчик и выполняет его до конца.
func (d *Dispatcher) Dispatch(ctx context.Context, session *entity.Session, ev Event) (*Outcome, error) {
	h, ok := d.handlers[ev.Kind]
	if !ok {
		return nil, fmt.Errorf("no handler for %s", ev.Kind)
	}
	return h(ctx, session, ev)
}
