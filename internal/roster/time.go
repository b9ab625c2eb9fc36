package roster

import (
	"time"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

// 支援时段的固定时间窗
type slotWindow struct {
	start int // 午夜起的分钟数
	end   int
}

var slotWindows = map[domain.TimeSlot]slotWindow{
	domain.TimeSlotMorning:   {start: 8 * 60, end: 12*60 + 30},  // 08:00-12:30
	domain.TimeSlotAfternoon: {start: 12*60 + 30, end: 18 * 60}, // 12:30-18:00
}

// toMinutes 把 HH:mm 解析为午夜起的分钟数，格式非法时返回 0。
func toMinutes(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// doTimesOverlap 判断班型与支援时段是否重叠。区间按半开 [start, end) 处理，
// 班型结束时间为 00:00 时视为 24:00（跨午夜班次）。
func doTimesOverlap(shift *domain.Shift, window slotWindow) bool {
	shiftStart := toMinutes(shift.StartTime)
	shiftEnd := toMinutes(shift.EndTime)

	effectiveShiftEnd := shiftEnd
	if effectiveShiftEnd == 0 {
		effectiveShiftEnd = 24 * 60
	}

	return shiftStart < window.end && effectiveShiftEnd > window.start
}

// weekdayOf 返回日期的星期（周日为 0，周一为 1，与 SupportNeed.DayOfWeek 对齐）。
func weekdayOf(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return -1
	}
	return int(t.Weekday())
}
