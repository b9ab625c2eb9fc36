package roster

import (
	"github.com/google/uuid"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

func (e *Engine) AddEvent(name, date, color string) domain.ScheduleEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	event := &domain.ScheduleEvent{
		ID:    uuid.NewString(),
		Name:  name,
		Date:  date,
		Color: color,
	}
	e.events = append(e.events, event)
	e.persist()
	return *event
}

func (e *Engine) UpdateEvent(event domain.ScheduleEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing := e.findEvent(event.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	*existing = event
	e.persist()
	return nil
}

// MoveEvent 只改日期，对应日历上的拖放操作。
func (e *Engine) MoveEvent(id, date string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing := e.findEvent(id)
	if existing == nil {
		return domain.ErrNotFound
	}
	existing.Date = date
	e.persist()
	return nil
}

func (e *Engine) DeleteEvent(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.findEvent(id) == nil {
		return domain.ErrNotFound
	}

	events := e.events[:0]
	for _, ev := range e.events {
		if ev.ID != id {
			events = append(events, ev)
		}
	}
	e.events = events

	e.persist()
	return nil
}

// EventsByMonth 返回某个月（YYYY-MM）的事件；month 为空时返回全部。
func (e *Engine) EventsByMonth(month string) []domain.ScheduleEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := []domain.ScheduleEvent{}
	for _, ev := range e.events {
		if month != "" && (len(ev.Date) < 7 || ev.Date[:7] != month) {
			continue
		}
		out = append(out, *ev)
	}
	return out
}

func (e *Engine) findEvent(id string) *domain.ScheduleEvent {
	for _, ev := range e.events {
		if ev.ID == id {
			return ev
		}
	}
	return nil
}
