package roster

import (
	"time"

	"github.com/google/uuid"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

// AddLeave 新增一条休假记录，(pharmacistID, date) 已存在时幂等返回原记录。
// 休假不会级联清除既有的班次指派，冲突由问题侦测事后呈现。
// 启用周六上限策略时，超出上限的周六休假会被拒绝并返回 ErrSaturdayLeaveLimit。
func (e *Engine) AddLeave(pharmacistID, date string) (domain.Leave, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, l := range e.leaves {
		if l.PharmacistID == pharmacistID && l.Date == date {
			return *l, nil
		}
	}

	if e.cfg.Roster.SaturdayLeaveLimitEnabled && weekdayOf(date) == int(time.Saturday) {
		if e.saturdayLeaveCountLocked(pharmacistID, date[:7]) >= e.cfg.Roster.SaturdayLeaveLimit {
			return domain.Leave{}, domain.ErrSaturdayLeaveLimit
		}
	}

	leave := &domain.Leave{
		ID:           uuid.NewString(),
		PharmacistID: pharmacistID,
		Date:         date,
	}
	e.leaves = append(e.leaves, leave)
	e.persist()
	return *leave, nil
}

func (e *Engine) DeleteLeave(pharmacistID, date string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	leaves := e.leaves[:0]
	removed := false
	for _, l := range e.leaves {
		if l.PharmacistID == pharmacistID && l.Date == date {
			removed = true
			continue
		}
		leaves = append(leaves, l)
	}
	e.leaves = leaves

	if removed {
		e.persist()
	}
}

func (e *Engine) IsOnLeave(pharmacistID, date string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.isOnLeaveLocked(pharmacistID, date)
}

// Leaves 返回全部休假记录；pharmacistID 非空时只返回该药师的记录。
func (e *Engine) Leaves(pharmacistID string) []domain.Leave {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Leave, 0, len(e.leaves))
	for _, l := range e.leaves {
		if pharmacistID != "" && l.PharmacistID != pharmacistID {
			continue
		}
		out = append(out, *l)
	}
	return out
}

func (e *Engine) isOnLeaveLocked(pharmacistID, date string) bool {
	for _, l := range e.leaves {
		if l.PharmacistID == pharmacistID && l.Date == date {
			return true
		}
	}
	return false
}

// saturdayLeaveCountLocked 统计某药师在某月（YYYY-MM）已有的周六休假数。
func (e *Engine) saturdayLeaveCountLocked(pharmacistID, month string) int {
	count := 0
	for _, l := range e.leaves {
		if l.PharmacistID != pharmacistID {
			continue
		}
		if len(l.Date) < 7 || l.Date[:7] != month {
			continue
		}
		if weekdayOf(l.Date) == int(time.Saturday) {
			count++
		}
	}
	return count
}
