package roster

import (
	"testing"
	"time"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

func TestDoTimesOverlap(t *testing.T) {
	morning := slotWindows[domain.TimeSlotMorning]
	afternoon := slotWindows[domain.TimeSlotAfternoon]

	cases := []struct {
		name   string
		shift  *domain.Shift
		window slotWindow
		want   bool
	}{
		{"早班与上午重叠", &domain.Shift{StartTime: "08:30", EndTime: "12:00"}, morning, true},
		{"早班与下午不重叠", &domain.Shift{StartTime: "08:30", EndTime: "12:00"}, afternoon, false},
		{"午班与下午重叠", &domain.Shift{StartTime: "13:00", EndTime: "17:30"}, afternoon, true},
		{"晚班与两个时段都不重叠", &domain.Shift{StartTime: "18:00", EndTime: "22:00"}, morning, false},
		{"全日班跨两个时段", &domain.Shift{StartTime: "08:30", EndTime: "17:30"}, afternoon, true},
		// 半开区间：恰好在边界衔接不算重叠
		{"结束于时段开始处", &domain.Shift{StartTime: "06:00", EndTime: "08:00"}, morning, false},
		{"开始于时段结束处", &domain.Shift{StartTime: "12:30", EndTime: "15:00"}, morning, false},
		// 结束时间 00:00 视为次日零点（跨午夜班次）
		{"跨午夜班次与下午重叠", &domain.Shift{StartTime: "17:00", EndTime: "00:00"}, afternoon, true},
		{"跨午夜班次与上午不重叠", &domain.Shift{StartTime: "20:00", EndTime: "00:00"}, morning, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := doTimesOverlap(c.shift, c.window); got != c.want {
				t.Errorf("期望=%v，实际=%v", c.want, got)
			}
		})
	}
}

func TestToMinutes(t *testing.T) {
	if got := toMinutes("08:30"); got != 510 {
		t.Errorf("期望 510，实际=%d", got)
	}
	if got := toMinutes("00:00"); got != 0 {
		t.Errorf("期望 0，实际=%d", got)
	}
	if got := toMinutes("bad"); got != 0 {
		t.Errorf("非法格式应返回 0，实际=%d", got)
	}
}

func TestWeekdayOf(t *testing.T) {
	if got := weekdayOf("2026-03-01"); got != int(time.Sunday) {
		t.Errorf("2026-03-01 应为周日，实际=%d", got)
	}
	if got := weekdayOf("2026-03-07"); got != int(time.Saturday) {
		t.Errorf("2026-03-07 应为周六，实际=%d", got)
	}
	if got := weekdayOf("not-a-date"); got != -1 {
		t.Errorf("非法日期应返回 -1，实际=%d", got)
	}
}
