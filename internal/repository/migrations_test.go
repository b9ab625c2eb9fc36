package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

func TestMigrateShifts_StripsSaturdayLeaveLimit(t *testing.T) {
	raw := []byte(`[{"id":"s-1","name":"早班","startTime":"08:30","endTime":"12:00","saturdayLeaveLimit":1}]`)

	migrated, changed := migrateShifts(raw)
	if !changed {
		t.Fatal("含废弃字段的数据应触发迁移")
	}

	var shifts []map[string]json.RawMessage
	if err := json.Unmarshal(migrated, &shifts); err != nil {
		t.Fatalf("迁移结果应是合法 JSON: %v", err)
	}
	if _, ok := shifts[0]["saturdayLeaveLimit"]; ok {
		t.Error("saturdayLeaveLimit 字段应被移除")
	}
	if _, ok := shifts[0]["startTime"]; !ok {
		t.Error("其余字段应保留")
	}
}

func TestMigrateShifts_NoChangeIsIdempotent(t *testing.T) {
	raw := []byte(`[{"id":"s-1","name":"早班","startTime":"08:30","endTime":"12:00"}]`)

	migrated, changed := migrateShifts(raw)
	if changed {
		t.Error("已是最终模式的数据不应触发迁移")
	}
	if string(migrated) != string(raw) {
		t.Error("未迁移时应原样返回")
	}
}

func TestMigrateSchedule_LegacyFlatDay(t *testing.T) {
	raw := []byte(`{"2026-03-02":{"s-morning":"p-wang","s-noon":"p-li"}}`)

	migrated, changed := migrateSchedule(raw)
	if !changed {
		t.Fatal("旧版扁平日排班应触发迁移")
	}

	var schedule domain.MonthlySchedule
	if err := json.Unmarshal(migrated, &schedule); err != nil {
		t.Fatalf("迁移结果应能解析为月表: %v", err)
	}
	day := schedule["2026-03-02"]
	if day == nil {
		t.Fatal("迁移后条目丢失")
	}
	if day.Shifts["s-morning"] != "p-wang" || day.Shifts["s-noon"] != "p-li" {
		t.Errorf("扁平指派应搬入 shifts 字段，实际=%+v", day.Shifts)
	}
}

func TestMigrateSchedule_EmptyLegacyDay(t *testing.T) {
	// 原应用的 assignShift 清空一天后会留下 {} 条目，必须迁移出 shifts 键，
	// 否则解析结果的 Shifts 是 nil map
	raw := []byte(`{"2026-03-02":{}}`)

	migrated, changed := migrateSchedule(raw)
	if !changed {
		t.Fatal("空的旧版日条目应触发迁移")
	}

	var schedule domain.MonthlySchedule
	if err := json.Unmarshal(migrated, &schedule); err != nil {
		t.Fatalf("迁移结果应能解析为月表: %v", err)
	}
	day := schedule["2026-03-02"]
	if day == nil {
		t.Fatal("迁移后条目丢失")
	}
	if day.Shifts == nil {
		t.Error("迁移后 shifts 应为空 map 而不是 nil")
	}
}

func TestMigrateSchedule_NewShapeUntouched(t *testing.T) {
	raw := []byte(`{"2026-03-02":{"shifts":{"s-morning":"p-wang"},"notes":"盤點日"}}`)

	_, changed := migrateSchedule(raw)
	if changed {
		t.Error("新模式的数据不应触发迁移")
	}
}

func TestMigrateSchedule_MixedShapes(t *testing.T) {
	raw := []byte(`{"2026-03-02":{"s-morning":"p-wang"},"2026-03-03":{"shifts":{"s-noon":"p-li"}}}`)

	migrated, changed := migrateSchedule(raw)
	if !changed {
		t.Fatal("混合形状应触发迁移")
	}

	var schedule domain.MonthlySchedule
	if err := json.Unmarshal(migrated, &schedule); err != nil {
		t.Fatalf("迁移结果应能解析为月表: %v", err)
	}
	if schedule["2026-03-02"].Shifts["s-morning"] != "p-wang" {
		t.Error("旧形状条目应被迁移")
	}
	if schedule["2026-03-03"].Shifts["s-noon"] != "p-li" {
		t.Error("新形状条目应保持原样")
	}
}

func TestRepository_Load_NormalizesEmptyDay(t *testing.T) {
	kv := NewMemoryKV()
	r := NewRepository(testConfig(), kv)

	if err := kv.Set(context.Background(), "test:monthlyRoster", []byte(`{"2026-03-02":{}}`)); err != nil {
		t.Fatalf("Set 应成功: %v", err)
	}

	loaded := r.Load(testDefaults())

	day := loaded.Schedule["2026-03-02"]
	if day == nil {
		t.Fatal("空的旧版日条目在加载后应保留")
	}
	if day.Shifts == nil {
		t.Error("加载后 Shifts 不应为 nil map")
	}
}

// 迁移应在加载时写回，下次加载不再触发
func TestRepository_Load_WritesBackMigratedData(t *testing.T) {
	kv := NewMemoryKV()
	r := NewRepository(testConfig(), kv)

	legacy := []byte(`{"2026-03-02":{"s-morning":"p-wang"}}`)
	if err := kv.Set(context.Background(), "test:monthlyRoster", legacy); err != nil {
		t.Fatalf("Set 应成功: %v", err)
	}

	r.Load(testDefaults())

	stored, err := kv.Get(context.Background(), "test:monthlyRoster")
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}

	_, changed := migrateSchedule(stored)
	if changed {
		t.Error("写回后的数据应已是最终模式")
	}

	var schedule domain.MonthlySchedule
	if err := json.Unmarshal(stored, &schedule); err != nil {
		t.Fatalf("写回的数据应能解析: %v", err)
	}
	if schedule["2026-03-02"].Shifts["s-morning"] != "p-wang" {
		t.Error("写回的数据应保留原指派")
	}
}
