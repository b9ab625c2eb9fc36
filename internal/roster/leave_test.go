package roster

import (
	"errors"
	"testing"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

func TestEngine_AddLeave_Idempotent(t *testing.T) {
	e := newTestEngine(t)

	first, err := e.AddLeave("p-wang", "2026-03-02")
	if err != nil {
		t.Fatalf("AddLeave 应成功: %v", err)
	}
	second, err := e.AddLeave("p-wang", "2026-03-02")
	if err != nil {
		t.Fatalf("重复 AddLeave 应成功: %v", err)
	}

	if first.ID != second.ID {
		t.Error("同一 (药师, 日期) 重复新增应返回原记录")
	}
	if len(e.Leaves("p-wang")) != 1 {
		t.Error("重复新增不应产生第二条记录")
	}
}

func TestEngine_DeleteLeave(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.AddLeave("p-wang", "2026-03-02"); err != nil {
		t.Fatalf("AddLeave 应成功: %v", err)
	}
	e.DeleteLeave("p-wang", "2026-03-02")

	if e.IsOnLeave("p-wang", "2026-03-02") {
		t.Error("删除后不应再处于休假状态")
	}

	// 删除不存在的记录是无害的
	e.DeleteLeave("p-wang", "2026-03-02")
}

func TestEngine_AddLeave_DoesNotClearAssignments(t *testing.T) {
	e := newTestEngine(t)

	e.AssignShift("2026-03-02", "s-morning", "p-wang")
	if _, err := e.AddLeave("p-wang", "2026-03-02"); err != nil {
		t.Fatalf("AddLeave 应成功: %v", err)
	}

	day, ok := e.DaySchedule("2026-03-02")
	if !ok || day.Shifts["s-morning"] != "p-wang" {
		t.Error("请假不应级联清除既有指派")
	}
}

func TestEngine_Leaves_FilterByPharmacist(t *testing.T) {
	e := newTestEngine(t)

	e.AddLeave("p-wang", "2026-03-02")
	e.AddLeave("p-li", "2026-03-03")

	if got := len(e.Leaves("p-wang")); got != 1 {
		t.Errorf("按药师过滤期望 1 条，实际=%d", got)
	}
	if got := len(e.Leaves("")); got != 2 {
		t.Errorf("不过滤期望 2 条，实际=%d", got)
	}
}

// ── 周六休假上限策略 ──

func TestEngine_AddLeave_SaturdayLimitDisabled(t *testing.T) {
	e := newTestEngine(t)

	// 2026 年 3 月的周六：07、14、21、28。策略默认关闭，全部应成功。
	for _, date := range []string{"2026-03-07", "2026-03-14", "2026-03-21", "2026-03-28"} {
		if _, err := e.AddLeave("p-wang", date); err != nil {
			t.Fatalf("策略关闭时周六休假不应受限: %v", err)
		}
	}
}

func TestEngine_AddLeave_SaturdayLimitEnabled(t *testing.T) {
	e := newTestEngine(t)
	e.cfg.Roster.SaturdayLeaveLimitEnabled = true
	e.cfg.Roster.SaturdayLeaveLimit = 1

	if _, err := e.AddLeave("p-wang", "2026-03-07"); err != nil {
		t.Fatalf("第一次周六休假应成功: %v", err)
	}

	_, err := e.AddLeave("p-wang", "2026-03-14")
	if !errors.Is(err, domain.ErrSaturdayLeaveLimit) {
		t.Errorf("超出上限应返回 ErrSaturdayLeaveLimit，实际=%v", err)
	}

	// 上限按月计，下个月的周六不受影响
	if _, err := e.AddLeave("p-wang", "2026-04-04"); err != nil {
		t.Errorf("跨月的周六休假不应受限: %v", err)
	}

	// 只限制周六，平日不受影响
	if _, err := e.AddLeave("p-wang", "2026-03-09"); err != nil {
		t.Errorf("平日休假不应受限: %v", err)
	}

	// 其他药师各自计数
	if _, err := e.AddLeave("p-li", "2026-03-07"); err != nil {
		t.Errorf("其他药师的周六休假不应受限: %v", err)
	}
}
