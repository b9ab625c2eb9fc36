package roster

import (
	"testing"
	"time"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

func TestEngine_ExportMonth(t *testing.T) {
	e := newTestEngine(t)

	e.AssignShift("2026-03-02", "s-morning", "p-wang")
	e.AssignSupport("2026-03-02", domain.TimeSlotMorning, 0, "p-chen")
	e.UpdateNotes("2026-03-02", "盤點日")
	e.AddLeave("p-li", "2026-03-02")

	rows := e.ExportMonth(2026, time.March)
	if len(rows) != 31 {
		t.Fatalf("三月应导出 31 行，实际=%d", len(rows))
	}

	if rows[0].Date != "2026-03-01" || rows[0].Weekday != "週日" {
		t.Errorf("首行应为 2026-03-01 週日，实际=%s %s", rows[0].Date, rows[0].Weekday)
	}

	row := rows[1]
	if row.Weekday != "週一" {
		t.Errorf("2026-03-02 应为週一，实际=%s", row.Weekday)
	}
	if row.Assignments["早班"] != "王藥師" {
		t.Errorf("早班应解析为王藥師，实际=%s", row.Assignments["早班"])
	}
	if len(row.SupportMorning) != 1 || row.SupportMorning[0] != "陳藥師" {
		t.Errorf("上午支援应为陳藥師，实际=%v", row.SupportMorning)
	}
	if row.Notes != "盤點日" {
		t.Errorf("备注不符，实际=%s", row.Notes)
	}
	if len(row.OnLeave) != 1 || row.OnLeave[0] != "李藥師" {
		t.Errorf("休假名单应为李藥師，实际=%v", row.OnLeave)
	}
}

func TestEngine_ExportMonth_UnknownPharmacistFallsBackToID(t *testing.T) {
	e := newTestEngine(t)

	e.AssignShift("2026-03-02", "s-morning", "p-ghost")

	rows := e.ExportMonth(2026, time.March)
	if rows[1].Assignments["早班"] != "p-ghost" {
		t.Errorf("名字缺失时应退回 id，实际=%s", rows[1].Assignments["早班"])
	}
}

func TestEngine_ExportMonth_LeaveNamesSortedByPinyin(t *testing.T) {
	e := newTestEngine(t)

	// 拼音序：陳(chen) < 李(li) < 王(wang)
	e.AddLeave("p-wang", "2026-03-02")
	e.AddLeave("p-chen", "2026-03-02")
	e.AddLeave("p-li", "2026-03-02")

	rows := e.ExportMonth(2026, time.March)
	onLeave := rows[1].OnLeave
	if len(onLeave) != 3 {
		t.Fatalf("期望 3 位休假，实际=%d", len(onLeave))
	}
	if onLeave[0] != "陳藥師" || onLeave[1] != "李藥師" || onLeave[2] != "王藥師" {
		t.Errorf("休假名单应按拼音排序，实际=%v", onLeave)
	}
}
