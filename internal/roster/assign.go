package roster

import (
	"strings"
	"time"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

// Unassign 作为 pharmacistID 传入时表示清除指派。
const Unassign = ""

// AssignShift 设置或清除某天某个班型的指派。这里刻意不做可用性检查：
// 把休假中的药师排进班次是允许的，冲突交给问题侦测在事后呈现
//（先指派、后标记）。
func (e *Engine) AssignShift(date, shiftID, pharmacistID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.assignShiftLocked(date, shiftID, pharmacistID)
	e.persist()
}

func (e *Engine) assignShiftLocked(date, shiftID, pharmacistID string) {
	day := e.ensureDay(date)
	if pharmacistID == Unassign {
		delete(day.Shifts, shiftID)
	} else {
		day.Shifts[shiftID] = pharmacistID
	}
	e.cleanupDay(date)
}

// AssignSupport 设置某天某个支援席位。指派真实药师时会扫描所有与该时段
// 时间窗重叠的班型，把同一位药师当天在这些班型上的指派清掉：一个人不能
// 同时占住班次和覆盖同一时段的支援席位，支援指派优先。
func (e *Engine) AssignSupport(date string, slot domain.TimeSlot, slotIndex int, pharmacistID string) {
	if slotIndex < 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	day := e.ensureDay(date)
	if day.Support == nil {
		day.Support = &domain.SupportSlots{}
	}

	// 席位数组按该星期的支援需求定长，下标是稳定身份
	slots := day.Support.Slots(slot)
	want := e.supportNeedCountLocked(weekdayOf(date), slot)
	if slotIndex+1 > want {
		want = slotIndex + 1
	}
	for len(slots) < want {
		slots = append(slots, nil)
	}

	if pharmacistID == Unassign {
		slots[slotIndex] = nil
	} else {
		window := slotWindows[slot]
		for _, shift := range e.shifts {
			if day.Shifts[shift.ID] == pharmacistID && doTimesOverlap(shift, window) {
				delete(day.Shifts, shift.ID)
			}
		}
		occupant := pharmacistID
		slots[slotIndex] = &occupant
	}

	day.Support.SetSlots(slot, slots)
	e.cleanupDay(date)
	e.persist()
}

// AssignSaturdaySupport 填入周六上午支援的第一个空席（周六没有下午支援）。
func (e *Engine) AssignSaturdaySupport(date, pharmacistID string) {
	if pharmacistID == Unassign {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	day := e.ensureDay(date)
	if day.Support == nil {
		day.Support = &domain.SupportSlots{}
	}

	occupant := pharmacistID
	filled := false
	for i, existing := range day.Support.Morning {
		if existing == nil {
			day.Support.Morning[i] = &occupant
			filled = true
			break
		}
	}
	if !filled {
		day.Support.Morning = append(day.Support.Morning, &occupant)
	}

	e.persist()
}

// UpdateNotes 设置某天的备注，空白内容视为清除。
func (e *Engine) UpdateNotes(date, notes string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	day := e.ensureDay(date)
	day.Notes = strings.TrimSpace(notes)
	e.cleanupDay(date)
	e.persist()
}

// AssignShiftForMonth 为整个月批次指派同一班型，自动跳过该药师的休假日，
// 覆盖既有指派。返回实际指派的天数。
func (e *Engine) AssignShiftForMonth(year int, month time.Month, shiftID, pharmacistID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	days := daysInMonth(year, month)
	for d := 1; d <= days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if e.isOnLeaveLocked(pharmacistID, date) {
			continue
		}
		e.assignShiftLocked(date, shiftID, pharmacistID)
		count++
	}

	e.persist()
	return count
}

/**********************************************
 * 支援需求
 **********************************************/

func (e *Engine) SupportNeeds() []domain.SupportNeed {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.SupportNeed, 0, len(e.supportNeeds))
	for _, n := range e.supportNeeds {
		out = append(out, *n)
	}
	return out
}

// UpdateSupportNeed 更新某个 (星期, 时段) 的支援人数，负数钳制为零。
func (e *Engine) UpdateSupportNeed(dayOfWeek int, slot domain.TimeSlot, count int) {
	if count < 0 {
		count = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, n := range e.supportNeeds {
		if n.DayOfWeek == dayOfWeek && n.TimeSlot == slot {
			n.Count = count
			e.persist()
			return
		}
	}

	e.supportNeeds = append(e.supportNeeds, &domain.SupportNeed{
		DayOfWeek: dayOfWeek,
		TimeSlot:  slot,
		Count:     count,
	})
	e.persist()
}

func (e *Engine) supportNeedCountLocked(dayOfWeek int, slot domain.TimeSlot) int {
	for _, n := range e.supportNeeds {
		if n.DayOfWeek == dayOfWeek && n.TimeSlot == slot {
			return n.Count
		}
	}
	return 0
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
