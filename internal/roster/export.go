package roster

import (
	"time"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/utils"
)

var weekdayNames = []string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// ExportRow 是排班表导出的一行，字段已经解析成显示用的名字。
type ExportRow struct {
	Date             string            `json:"date"`
	Weekday          string            `json:"weekday"`
	Assignments      map[string]string `json:"assignments"` // 班型名 -> 药师名
	SupportMorning   []string          `json:"supportMorning"`
	SupportAfternoon []string          `json:"supportAfternoon"`
	OnLeave          []string          `json:"onLeave"` // 按拼音排序
	Notes            string            `json:"notes"`
}

// ExportMonth 把一个月的排班展开成表格行，供外部的报表输出使用。
// 只读派生，不暴露内部表示。
func (e *Engine) ExportMonth(year int, month time.Month) []ExportRow {
	e.mu.Lock()
	defer e.mu.Unlock()

	days := daysInMonth(year, month)
	rows := make([]ExportRow, 0, days)

	for d := 1; d <= days; d++ {
		t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		date := t.Format("2006-01-02")

		row := ExportRow{
			Date:             date,
			Weekday:          weekdayNames[int(t.Weekday())],
			Assignments:      map[string]string{},
			SupportMorning:   []string{},
			SupportAfternoon: []string{},
			OnLeave:          []string{},
		}

		if day, ok := e.schedule[date]; ok {
			for _, shift := range e.shifts {
				if pharmacistID, assigned := day.Shifts[shift.ID]; assigned {
					row.Assignments[shift.Name] = e.pharmacistNameLocked(pharmacistID)
				}
			}
			if day.Support != nil {
				row.SupportMorning = e.occupantNamesLocked(day.Support.Morning)
				row.SupportAfternoon = e.occupantNamesLocked(day.Support.Afternoon)
			}
			row.Notes = day.Notes
		}

		for _, l := range e.leaves {
			if l.Date == date {
				row.OnLeave = append(row.OnLeave, e.pharmacistNameLocked(l.PharmacistID))
			}
		}
		utils.SortByPinyin(row.OnLeave)

		rows = append(rows, row)
	}

	return rows
}

// pharmacistNameLocked 在名字缺失时退回 id 本身。
func (e *Engine) pharmacistNameLocked(id string) string {
	if p := e.findPharmacist(id); p != nil {
		return p.Name
	}
	return id
}

// occupantNamesLocked 保持席位顺序，跳过空席。
func (e *Engine) occupantNamesLocked(slots []*string) []string {
	names := []string{}
	for _, occupant := range slots {
		if occupant != nil {
			names = append(names, e.pharmacistNameLocked(*occupant))
		}
	}
	return names
}
