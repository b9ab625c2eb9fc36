package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/minsheng-pharmacy/roster-manager/backend/internal/config"
	"github.com/minsheng-pharmacy/roster-manager/backend/internal/domain"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.KeyPrefix = "test:"
	cfg.Storage.Timeout = 5
	return cfg
}

func testDefaults() *Snapshot {
	return &Snapshot{
		Pharmacists: []*domain.Pharmacist{
			{ID: "p-default", Name: "王藥師", Position: domain.PositionFullTime},
		},
		Shifts: []*domain.Shift{
			{ID: "s-default", Name: "早班", StartTime: "08:30", EndTime: "12:00"},
		},
		Schedule:     domain.MonthlySchedule{},
		Leaves:       []*domain.Leave{},
		SupportNeeds: []*domain.SupportNeed{},
		Events:       []*domain.ScheduleEvent{},
	}
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	r := NewRepository(testConfig(), NewMemoryKV())

	occupant := "p-chen"
	saved := &Snapshot{
		Pharmacists: []*domain.Pharmacist{
			{ID: "p-wang", Name: "王藥師", Position: domain.PositionFullTime},
			{ID: "p-chen", Name: "陳藥師", Position: domain.PositionPartTime},
		},
		Shifts: []*domain.Shift{
			{ID: "s-morning", Name: "早班", StartTime: "08:30", EndTime: "12:00"},
		},
		Schedule: domain.MonthlySchedule{
			"2026-03-02": {
				Shifts:  map[string]string{"s-morning": "p-wang"},
				Support: &domain.SupportSlots{Morning: []*string{&occupant, nil}},
				Notes:   "盤點日",
			},
		},
		Leaves: []*domain.Leave{
			{ID: "l-1", PharmacistID: "p-wang", Date: "2026-03-04"},
		},
		SupportNeeds: []*domain.SupportNeed{
			{DayOfWeek: 1, TimeSlot: domain.TimeSlotMorning, Count: 2},
		},
		Events: []*domain.ScheduleEvent{
			{ID: "e-1", Name: "廠商拜訪", Date: "2026-03-05", Color: "#ff0000"},
		},
	}

	if err := r.Save(saved); err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}

	loaded := r.Load(testDefaults())

	if len(loaded.Pharmacists) != 2 || loaded.Pharmacists[1].Name != "陳藥師" {
		t.Errorf("药师集合往返不一致: %+v", loaded.Pharmacists)
	}
	if len(loaded.Shifts) != 1 || loaded.Shifts[0].EndTime != "12:00" {
		t.Errorf("班型集合往返不一致: %+v", loaded.Shifts)
	}

	day := loaded.Schedule["2026-03-02"]
	if day == nil {
		t.Fatal("月表条目丢失")
	}
	if day.Shifts["s-morning"] != "p-wang" || day.Notes != "盤點日" {
		t.Errorf("日排班往返不一致: %+v", day)
	}
	if day.Support == nil || len(day.Support.Morning) != 2 {
		t.Fatalf("支援席位往返不一致: %+v", day.Support)
	}
	if day.Support.Morning[0] == nil || *day.Support.Morning[0] != "p-chen" {
		t.Error("席位 0 应为 p-chen")
	}
	if day.Support.Morning[1] != nil {
		t.Error("席位 1 应保持空席")
	}

	if len(loaded.Leaves) != 1 || loaded.Leaves[0].Date != "2026-03-04" {
		t.Errorf("休假集合往返不一致: %+v", loaded.Leaves)
	}
	if len(loaded.SupportNeeds) != 1 || loaded.SupportNeeds[0].Count != 2 {
		t.Errorf("支援需求往返不一致: %+v", loaded.SupportNeeds)
	}
	if len(loaded.Events) != 1 || loaded.Events[0].Name != "廠商拜訪" {
		t.Errorf("事件集合往返不一致: %+v", loaded.Events)
	}
}

func TestRepository_Load_FallsBackToDefaults(t *testing.T) {
	r := NewRepository(testConfig(), NewMemoryKV())

	loaded := r.Load(testDefaults())

	if len(loaded.Pharmacists) != 1 || loaded.Pharmacists[0].ID != "p-default" {
		t.Errorf("存储为空时应使用默认药师，实际=%+v", loaded.Pharmacists)
	}
	if loaded.Schedule == nil {
		t.Error("月表不应为 nil")
	}
}

func TestRepository_Load_CorruptDataFallsBack(t *testing.T) {
	kv := NewMemoryKV()
	r := NewRepository(testConfig(), kv)

	if err := kv.Set(context.Background(), "test:staff", []byte("not json")); err != nil {
		t.Fatalf("Set 应成功: %v", err)
	}

	loaded := r.Load(testDefaults())
	if len(loaded.Pharmacists) != 1 || loaded.Pharmacists[0].ID != "p-default" {
		t.Errorf("数据损坏时应退回默认值，实际=%+v", loaded.Pharmacists)
	}
}

func TestRepository_Load_DeletesLegacySaturdayKey(t *testing.T) {
	kv := NewMemoryKV()
	r := NewRepository(testConfig(), kv)

	if err := kv.Set(context.Background(), "test:saturdayLeaveSetting", []byte(`{"limit":1}`)); err != nil {
		t.Fatalf("Set 应成功: %v", err)
	}

	r.Load(testDefaults())

	if _, err := kv.Get(context.Background(), "test:saturdayLeaveSetting"); !errors.Is(err, ErrKeyNotFound) {
		t.Error("旧版设置键应在加载时被删除")
	}
}

func TestMemoryKV_GetMissingKey(t *testing.T) {
	kv := NewMemoryKV()

	if _, err := kv.Get(context.Background(), "missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("缺失的键应返回 ErrKeyNotFound，实际=%v", err)
	}
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	kv := NewMemoryKV()

	val := []byte("abc")
	if err := kv.Set(context.Background(), "k", val); err != nil {
		t.Fatalf("Set 应成功: %v", err)
	}
	val[0] = 'x'

	got, err := kv.Get(context.Background(), "k")
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("存储的值不应随调用方的切片变动，实际=%s", got)
	}
}
