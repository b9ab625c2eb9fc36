package roster

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/config"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/repository"
)

// Engine 是整个排班状态的唯一聚合：实体集合加上一组在一致性规则下修改它们
// 的操作。所有操作都在同一把锁下串行执行，每次变更后整体写回持久化存储；
// 写入失败只记日志，内存状态在本次会话内继续作为事实来源。
type Engine struct {
	mu   sync.Mutex
	cfg  *config.Config
	repo *repository.Repository

	pharmacists  []*domain.Pharmacist
	shifts       []*domain.Shift
	schedule     domain.MonthlySchedule
	leaves       []*domain.Leave
	supportNeeds []*domain.SupportNeed
	events       []*domain.ScheduleEvent
}

func NewEngine(cfg *config.Config, repo *repository.Repository, snapshot *repository.Snapshot) *Engine {
	e := &Engine{
		cfg:          cfg,
		repo:         repo,
		pharmacists:  snapshot.Pharmacists,
		shifts:       snapshot.Shifts,
		schedule:     snapshot.Schedule,
		leaves:       snapshot.Leaves,
		supportNeeds: snapshot.SupportNeeds,
		events:       snapshot.Events,
	}
	if e.schedule == nil {
		e.schedule = domain.MonthlySchedule{}
	}
	return e
}

// persist 在持锁状态下调用。
func (e *Engine) persist() {
	snapshot := &repository.Snapshot{
		Pharmacists:  e.pharmacists,
		Shifts:       e.shifts,
		Schedule:     e.schedule,
		Leaves:       e.leaves,
		SupportNeeds: e.supportNeeds,
		Events:       e.events,
	}

	if err := e.repo.Save(snapshot); err != nil {
		slog.Error("寫入持久化儲存失敗，以內存狀態繼續", "error", err)
	}
}

/**********************************************
 * 药师
 **********************************************/

func (e *Engine) Pharmacists() []domain.Pharmacist {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Pharmacist, 0, len(e.pharmacists))
	for _, p := range e.pharmacists {
		out = append(out, *p)
	}
	return out
}

func (e *Engine) PharmacistByID(id string) (domain.Pharmacist, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.findPharmacist(id)
	if p == nil {
		return domain.Pharmacist{}, false
	}
	return *p, true
}

func (e *Engine) AddPharmacist(name string, position domain.Position) domain.Pharmacist {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := &domain.Pharmacist{
		ID:       uuid.NewString(),
		Name:     name,
		Position: position,
	}
	e.pharmacists = append(e.pharmacists, p)
	e.persist()
	return *p
}

func (e *Engine) UpdatePharmacist(pharmacist domain.Pharmacist) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.findPharmacist(pharmacist.ID)
	if p == nil {
		return domain.ErrNotFound
	}
	*p = pharmacist
	e.persist()
	return nil
}

// DeletePharmacist 级联清理该药师的休假记录、班次指派与支援席位，
// 不允许悬挂引用留在持久化数据里。
func (e *Engine) DeletePharmacist(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.findPharmacist(id) == nil {
		return domain.ErrNotFound
	}

	pharmacists := e.pharmacists[:0]
	for _, p := range e.pharmacists {
		if p.ID != id {
			pharmacists = append(pharmacists, p)
		}
	}
	e.pharmacists = pharmacists

	leaves := e.leaves[:0]
	for _, l := range e.leaves {
		if l.PharmacistID != id {
			leaves = append(leaves, l)
		}
	}
	e.leaves = leaves

	for date, day := range e.schedule {
		for shiftID, pharmacistID := range day.Shifts {
			if pharmacistID == id {
				delete(day.Shifts, shiftID)
			}
		}
		if day.Support != nil {
			clearOccupant(day.Support.Morning, id)
			clearOccupant(day.Support.Afternoon, id)
		}
		e.cleanupDay(date)
	}

	e.persist()
	return nil
}

func (e *Engine) findPharmacist(id string) *domain.Pharmacist {
	for _, p := range e.pharmacists {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func clearOccupant(slots []*string, pharmacistID string) {
	for i, occupant := range slots {
		if occupant != nil && *occupant == pharmacistID {
			slots[i] = nil
		}
	}
}

/**********************************************
 * 班型模板
 **********************************************/

func (e *Engine) Shifts() []domain.Shift {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Shift, 0, len(e.shifts))
	for _, s := range e.shifts {
		out = append(out, *s)
	}
	return out
}

func (e *Engine) ShiftByID(id string) (domain.Shift, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.findShift(id)
	if s == nil {
		return domain.Shift{}, false
	}
	return *s, true
}

func (e *Engine) AddShift(name, startTime, endTime string) domain.Shift {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &domain.Shift{
		ID:        uuid.NewString(),
		Name:      name,
		StartTime: startTime,
		EndTime:   endTime,
	}
	e.shifts = append(e.shifts, s)
	e.persist()
	return *s
}

func (e *Engine) UpdateShift(shift domain.Shift) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.findShift(shift.ID)
	if s == nil {
		return domain.ErrNotFound
	}
	*s = shift
	e.persist()
	return nil
}

// DeleteShift 同时移除月表中所有引用该班型的指派。
func (e *Engine) DeleteShift(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.findShift(id) == nil {
		return domain.ErrNotFound
	}

	shifts := e.shifts[:0]
	for _, s := range e.shifts {
		if s.ID != id {
			shifts = append(shifts, s)
		}
	}
	e.shifts = shifts

	for date, day := range e.schedule {
		delete(day.Shifts, id)
		e.cleanupDay(date)
	}

	e.persist()
	return nil
}

func (e *Engine) findShift(id string) *domain.Shift {
	for _, s := range e.shifts {
		if s.ID == id {
			return s
		}
	}
	return nil
}

/**********************************************
 * 月表读取
 **********************************************/

// DaySchedule 返回某一天排班的副本，没有条目时返回 false。
func (e *Engine) DaySchedule(date string) (domain.DailySchedule, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	day, ok := e.schedule[date]
	if !ok {
		return domain.DailySchedule{}, false
	}
	return copyDay(day), true
}

// MonthSchedule 返回某个月（YYYY-MM）内所有已排班日期的副本。
func (e *Engine) MonthSchedule(month string) domain.MonthlySchedule {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := domain.MonthlySchedule{}
	for date, day := range e.schedule {
		if len(date) >= 7 && date[:7] == month {
			cp := copyDay(day)
			out[date] = &cp
		}
	}
	return out
}

func copyDay(day *domain.DailySchedule) domain.DailySchedule {
	cp := domain.DailySchedule{
		Shifts: make(map[string]string, len(day.Shifts)),
		Notes:  day.Notes,
	}
	for shiftID, pharmacistID := range day.Shifts {
		cp.Shifts[shiftID] = pharmacistID
	}
	if day.Support != nil {
		cp.Support = &domain.SupportSlots{
			Morning:   copySlots(day.Support.Morning),
			Afternoon: copySlots(day.Support.Afternoon),
		}
	}
	return cp
}

func copySlots(slots []*string) []*string {
	if slots == nil {
		return nil
	}
	cp := make([]*string, len(slots))
	for i, occupant := range slots {
		if occupant != nil {
			v := *occupant
			cp[i] = &v
		}
	}
	return cp
}

// cleanupDay 维护稀疏表示：全空的支援时段删键、空的支援结构删键、空的日期删条目。
// 在持锁状态下调用。
func (e *Engine) cleanupDay(date string) {
	day, ok := e.schedule[date]
	if !ok {
		return
	}

	if day.Support != nil {
		if allEmpty(day.Support.Morning) {
			day.Support.Morning = nil
		}
		if allEmpty(day.Support.Afternoon) {
			day.Support.Afternoon = nil
		}
		if day.Support.Morning == nil && day.Support.Afternoon == nil {
			day.Support = nil
		}
	}

	if day.IsEmpty() {
		delete(e.schedule, date)
	}
}

func allEmpty(slots []*string) bool {
	for _, occupant := range slots {
		if occupant != nil {
			return false
		}
	}
	return true
}

// ensureDay 在持锁状态下调用，按需创建日期条目。
func (e *Engine) ensureDay(date string) *domain.DailySchedule {
	day, ok := e.schedule[date]
	if !ok {
		day = &domain.DailySchedule{Shifts: map[string]string{}}
		e.schedule[date] = day
	}
	// 手工编辑过的数据可能缺少 shifts 键，解析出来是 nil map
	if day.Shifts == nil {
		day.Shifts = map[string]string{}
	}
	return day
}
