package roster

import (
	"fmt"
	"time"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

// 周六至少需要的在场人数：正职（未休假）加上被排班的兼职支援
const saturdayRequiredStaff = 3

// ScheduleIssues 扫描一个月并派生排班问题清单。纯只读，随时可以重算。
// 周日固定公休，不产生任何问题。输出顺序确定：日期升序，同一天内依
// 未排班、周六人力、休假冲突的检查顺序，班次按模板的存储顺序遍历。
func (e *Engine) ScheduleIssues(year int, month time.Month) []domain.ScheduleIssue {
	e.mu.Lock()
	defer e.mu.Unlock()

	issues := []domain.ScheduleIssue{}
	days := daysInMonth(year, month)

	for d := 1; d <= days; d++ {
		t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		if t.Weekday() == time.Sunday {
			continue
		}
		date := t.Format("2006-01-02")
		day, scheduled := e.schedule[date]

		// 1. 完全没有排班条目
		if !scheduled {
			issues = append(issues, domain.ScheduleIssue{
				Date:        date,
				Type:        domain.IssueNoAssignment,
				Description: fmt.Sprintf("%s 尚未排班", t.Format("01/02")),
				Severity:    domain.SeverityHigh,
			})
		}

		// 2. 周六人力
		if t.Weekday() == time.Saturday {
			issues = append(issues, e.saturdayStaffingIssuesLocked(date, day)...)
		}

		// 3. 休假与指派冲突
		if scheduled {
			issues = append(issues, e.leaveConflictIssuesLocked(date, day)...)
		}
	}

	return issues
}

// saturdayStaffingIssuesLocked 统计周六的在场人力：未休假的正职人数，加上
// 当天被排进任一班次、职别为兼职的药师数（去重）。
func (e *Engine) saturdayStaffingIssuesLocked(date string, day *domain.DailySchedule) []domain.ScheduleIssue {
	workingFullTimers := 0
	for _, p := range e.pharmacists {
		if p.Position == domain.PositionFullTime && !e.isOnLeaveLocked(p.ID, date) {
			workingFullTimers++
		}
	}

	supportPharmacists := 0
	if day != nil {
		seen := map[string]bool{}
		for _, pharmacistID := range day.Shifts {
			if seen[pharmacistID] {
				continue
			}
			seen[pharmacistID] = true
			if p := e.findPharmacist(pharmacistID); p != nil && p.Position == domain.PositionPartTime {
				supportPharmacists++
			}
		}
	}

	total := workingFullTimers + supportPharmacists
	if total >= saturdayRequiredStaff {
		return nil
	}

	return []domain.ScheduleIssue{{
		Date:        date,
		Type:        domain.IssueUnderstaffed,
		Description: fmt.Sprintf("週六排班人力不足 (%d/%d)", total, saturdayRequiredStaff),
		Severity:    domain.SeverityHigh,
	}}
}

func (e *Engine) leaveConflictIssuesLocked(date string, day *domain.DailySchedule) []domain.ScheduleIssue {
	var issues []domain.ScheduleIssue

	// 按模板存储顺序遍历，保证输出确定
	for _, shift := range e.shifts {
		pharmacistID, ok := day.Shifts[shift.ID]
		if !ok || !e.isOnLeaveLocked(pharmacistID, date) {
			continue
		}

		name := pharmacistID
		if p := e.findPharmacist(pharmacistID); p != nil {
			name = p.Name
		}

		issues = append(issues, domain.ScheduleIssue{
			Date:        date,
			Type:        domain.IssueConflict,
			Description: fmt.Sprintf("%s 在休假日仍被排入「%s」", name, shift.Name),
			Severity:    domain.SeverityHigh,
		})
	}

	return issues
}
